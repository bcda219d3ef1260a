package model

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

const (
	// inverse video space, a solid block in the terminal's foreground colour
	gridPosBlock = "\033[7m \033[0m"
	gridPosEmpty = " "

	clearScreen = "\033[2J\033[1;1H"
)

// TerminalRenderer draws grids as text on an ANSI terminal
type TerminalRenderer struct {
	Out io.Writer
}

// NewTerminalRenderer creates a renderer writing to out
func NewTerminalRenderer(out io.Writer) *TerminalRenderer {
	return &TerminalRenderer{Out: out}
}

// Display renders the grid, one line per row
func (r *TerminalRenderer) Display(g *Grid) error {
	w := bufio.NewWriter(r.Out)
	for row := range g.rows {
		for col := range g.cols {
			if g.Get(row, col) {
				w.WriteString(gridPosBlock)
			} else {
				w.WriteString(gridPosEmpty)
			}
		}
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		return errors.Wrap(err, "[Display] failed to write grid")
	}
	return nil
}

// Clear clears the terminal screen and homes the cursor
func (r *TerminalRenderer) Clear() error {
	if _, err := io.WriteString(r.Out, clearScreen); err != nil {
		return errors.Wrap(err, "[Clear] failed to clear terminal")
	}
	return nil
}
