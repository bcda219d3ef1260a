package model

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Pattern is a named set of initially living cells relative to a seeding offset
type Pattern struct {
	Name   string
	Period int
	Cells  []Cell
}

// Placement positions a named pattern on a grid
type Placement struct {
	Name string
	Row  int
	Col  int
}

// Blinker is the three-cell horizontal period 2 oscillator centred on its offset
var Blinker = Pattern{
	Name:   "blinker",
	Period: 2,
	Cells:  []Cell{{0, -1}, {0, 0}, {0, 1}},
}

// Toad is the six-cell period 2 oscillator
var Toad = Pattern{
	Name:   "toad",
	Period: 2,
	Cells: []Cell{
		{2, 2}, {2, 3}, {2, 4},
		{3, 1}, {3, 2}, {3, 3},
	},
}

// Pentadecathlon is the vertical period 15 oscillator
var Pentadecathlon = Pattern{
	Name:   "pentadecathlon",
	Period: 15,
	Cells: []Cell{
		{4, 5}, {5, 5},
		{6, 4}, {6, 6},
		{7, 5}, {8, 5}, {9, 5}, {10, 5},
		{11, 4}, {11, 6},
		{12, 5}, {13, 5},
	},
}

// Pulsar is the 48-cell period 3 oscillator
var Pulsar = Pattern{
	Name:   "pulsar",
	Period: 3,
	Cells:  pulsarCells(),
}

// GosperGliderGun is the 36-cell period 30 glider generator.
// Seeded at offset (0, 0) it occupies rows 2-10 and columns 1-36.
var GosperGliderGun = Pattern{
	Name:   "gosper_glider_gun",
	Period: 30,
	Cells: []Cell{
		// left block
		{6, 1}, {7, 1}, {6, 2}, {7, 2},
		// right block
		{4, 35}, {5, 35}, {4, 36}, {5, 36},

		{4, 13}, {4, 14},
		{5, 12}, {5, 16},
		{6, 11}, {6, 17},
		{7, 11}, {7, 15}, {7, 17}, {7, 18},
		{8, 11}, {8, 17},
		{9, 12}, {9, 16},
		{10, 13}, {10, 14},

		{2, 25},
		{3, 23}, {3, 25},
		{4, 21}, {4, 22},
		{5, 21}, {5, 22},
		{6, 21}, {6, 22},
		{7, 23}, {7, 25},
		{8, 25},
	},
}

// pulsarCells builds the pulsar from its four-fold symmetric bars
func pulsarCells() []Cell {
	var cells []Cell
	for _, row := range []int{2, 7, 9, 14} {
		for _, col := range []int{4, 5, 6, 10, 11, 12} {
			cells = append(cells, Cell{row, col})
		}
	}
	for _, col := range []int{2, 7, 9, 14} {
		for _, row := range []int{4, 5, 6, 10, 11, 12} {
			cells = append(cells, Cell{row, col})
		}
	}
	return cells
}

var patterns = map[string]Pattern{
	Blinker.Name:         Blinker,
	Toad.Name:            Toad,
	Pentadecathlon.Name:  Pentadecathlon,
	Pulsar.Name:          Pulsar,
	GosperGliderGun.Name: GosperGliderGun,
}

// LookupPattern returns the preset pattern registered under name
func LookupPattern(name string) (Pattern, error) {
	p, ok := patterns[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Pattern{}, errors.Errorf("[LookupPattern] unknown pattern %q (known: %s)",
			name, strings.Join(PatternNames(), ", "))
	}
	return p, nil
}

// PatternNames returns the names of every preset pattern, sorted
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultLayout returns the placements seeded when no patterns are configured
func DefaultLayout() []Placement {
	return []Placement{
		{Name: Blinker.Name, Row: 8, Col: 40},
		{Name: Toad.Name, Row: 12, Col: 38},
		{Name: Pulsar.Name, Row: 16, Col: 13},
		{Name: Pentadecathlon.Name, Row: 13, Col: 0},
		{Name: GosperGliderGun.Name, Row: 0, Col: 0},
	}
}

// Seed brings the pattern to life on g at the given offset.
// Every cell must land in the interior of g, otherwise nothing is written.
func (p Pattern) Seed(g *Grid, rowOff, colOff int) error {
	for _, c := range p.Cells {
		row, col := c.Row+rowOff, c.Col+colOff
		if !g.inBounds(row, col) || g.IsBorder(row, col) {
			return errors.Errorf("[Seed] pattern %q at (%d, %d) puts cell (%d, %d) outside the %dx%d interior",
				p.Name, rowOff, colOff, row, col, g.rows, g.cols)
		}
	}
	for _, c := range p.Cells {
		g.Set(c.Row+rowOff, c.Col+colOff, true)
	}
	return nil
}

// SeedLayout seeds every placement onto g in order
func SeedLayout(g *Grid, layout []Placement) error {
	for _, pl := range layout {
		p, err := LookupPattern(pl.Name)
		if err != nil {
			return errors.Wrap(err, "[SeedLayout] failed to resolve placement")
		}
		if err = p.Seed(g, pl.Row, pl.Col); err != nil {
			return errors.Wrap(err, "[SeedLayout] failed to seed placement")
		}
	}
	return nil
}
