package model

import "testing"

// gridFromRows builds a grid from rows of '.' (dead) and '#' (alive)
func gridFromRows(t *testing.T, rows ...string) *Grid {
	t.Helper()
	g := NewGrid(len(rows), len(rows[0]))
	for r, line := range rows {
		if len(line) != g.Cols() {
			t.Fatalf("row %d has %d columns, want %d", r, len(line), g.Cols())
		}
		for c, ch := range line {
			g.Set(r, c, ch == '#')
		}
	}
	return g
}

func gridWithCells(rows, cols int, cells ...Cell) *Grid {
	g := NewGrid(rows, cols)
	for _, c := range cells {
		g.Set(c.Row, c.Col, true)
	}
	return g
}

func assertBorderDead(t *testing.T, g *Grid) {
	t.Helper()
	for row := range g.Rows() {
		for col := range g.Cols() {
			if g.IsBorder(row, col) && g.Get(row, col) {
				t.Fatalf("border cell (%d, %d) is alive", row, col)
			}
		}
	}
}

func stepN(g *Grid, n int) *Grid {
	current, next := g.Clone(), NewGrid(g.Rows(), g.Cols())
	for range n {
		Step(current, next)
		Swap(&current, &next)
	}
	return current
}
