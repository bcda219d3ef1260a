package model

import (
	"github.com/pkg/errors"

	"github.com/danielewski/Game-Of-Life/rules"
)

// MinDimension is the smallest row or column count the engine can step.
// Anything smaller leaves no interior cell.
const MinDimension = 3

var neighborOffsets = [8]Cell{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// checkStepShape panics when current and next cannot be stepped together
func checkStepShape(current, next *Grid) {
	if current == nil || next == nil {
		panic(errors.New("[Step] nil grid"))
	}
	if current == next {
		panic(errors.New("[Step] current and next must be distinct buffers"))
	}
	if !current.SameShape(next) {
		panic(errors.Errorf("[Step] dimension mismatch: current %dx%d, next %dx%d",
			current.rows, current.cols, next.rows, next.cols))
	}
	if current.rows < MinDimension || current.cols < MinDimension {
		panic(errors.Errorf("[Step] grid %dx%d is smaller than %dx%d",
			current.rows, current.cols, MinDimension, MinDimension))
	}
}

// CountNeighbors counts the living cells among the 8 neighbors of an interior cell
func CountNeighbors(g *Grid, row, col int) int {
	count := 0
	for _, off := range neighborOffsets {
		if g.cells[(row+off.Row)*g.cols+col+off.Col] {
			count++
		}
	}
	return count
}

// Transition returns the next state of the interior cell at (row, col)
func Transition(g *Grid, row, col int) bool {
	return rules.ApplyConwayRules(CountNeighbors(g, row, col), g.cells[row*g.cols+col])
}

/*
Step writes the generation following current into next.

next is cleared in full, then every interior cell is evaluated against current.
Border cells of next are never evaluated and stay dead, so nothing can come alive
by reaching past an edge. current is only read.
*/
func Step(current, next *Grid) {
	checkStepShape(current, next)

	next.Clear()
	for row := 1; row < current.rows-1; row++ {
		for col := 1; col < current.cols-1; col++ {
			next.cells[row*next.cols+col] = Transition(current, row, col)
		}
	}
}
