package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"
)

// Cell addresses a single grid position by row and column
type Cell struct {
	Row int
	Col int
}

// Grid is a fixed-size rectangular matrix of cell states stored row-major
type Grid struct {
	rows  int
	cols  int
	cells []bool
}

// NewGrid creates an all-dead grid with the specified dimensions
func NewGrid(rows, cols int) *Grid {
	if rows < 1 || cols < 1 {
		panic(errors.Errorf("[NewGrid] invalid dimensions %dx%d", rows, cols))
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]bool, rows*cols),
	}
}

// Rows returns the number of rows of the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns of the grid
func (g *Grid) Cols() int {
	return g.cols
}

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// IsBorder reports whether (row, col) lies on the outer one-cell border
func (g *Grid) IsBorder(row, col int) bool {
	return row == 0 || row == g.rows-1 || col == 0 || col == g.cols-1
}

// Set sets a cell to alive (true) or dead (false)
func (g *Grid) Set(row, col int, alive bool) {
	if g.inBounds(row, col) {
		g.cells[row*g.cols+col] = alive
	}
}

// Get returns the state of a cell
func (g *Grid) Get(row, col int) bool {
	if !g.inBounds(row, col) {
		return false
	}
	return g.cells[row*g.cols+col]
}

// Fill sets every cell to the given state
func (g *Grid) Fill(alive bool) {
	for i := range g.cells {
		g.cells[i] = alive
	}
}

// Clear clears all cells
func (g *Grid) Clear() {
	g.Fill(false)
}

// ClearBorder forces every border cell dead
func (g *Grid) ClearBorder() {
	for col := range g.cols {
		g.Set(0, col, false)
		g.Set(g.rows-1, col, false)
	}
	for row := range g.rows {
		g.Set(row, 0, false)
		g.Set(row, g.cols-1, false)
	}
}

// SameShape reports whether both grids have identical dimensions
func (g *Grid) SameShape(other *Grid) bool {
	return other != nil && g.rows == other.rows && g.cols == other.cols
}

// Equal reports whether both grids have identical dimensions and cell states
func (g *Grid) Equal(other *Grid) bool {
	if !g.SameShape(other) {
		return false
	}
	for i, alive := range g.cells {
		if other.cells[i] != alive {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the grid
func (g *Grid) Clone() *Grid {
	cells := make([]bool, len(g.cells))
	copy(cells, g.cells)
	return &Grid{rows: g.rows, cols: g.cols, cells: cells}
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, alive := range g.cells {
		if alive {
			count++
		}
	}
	return
}

// LiveCells returns the coordinates of every living cell in row-major order
func (g *Grid) LiveCells() []Cell {
	var live []Cell
	for i, alive := range g.cells {
		if alive {
			live = append(live, Cell{Row: i / g.cols, Col: i % g.cols})
		}
	}
	return live
}

// Hash returns an MD5 hash of the current grid state
func (g *Grid) Hash() string {
	h := md5.New()
	buf := make([]byte, len(g.cells))
	for i, alive := range g.cells {
		if alive {
			buf[i] = 1
		}
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}
