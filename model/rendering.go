package model

import (
	"fmt"
	"io"
	"strings"
)

// TextRenderer prints grids as rows of space-separated 0/1 tokens
type TextRenderer struct {
	Out io.Writer
}

// Display renders the grid, one line per row
func (r *TextRenderer) Display(g Grid) {
	for _, row := range g {
		for _, cell := range row {
			fmt.Fprintf(r.Out, "%d ", cell)
		}
		fmt.Fprintln(r.Out)
	}
}

// String renders the grid the same way Display does
func (g Grid) String() string {
	var sb strings.Builder
	(&TextRenderer{Out: &sb}).Display(g)
	return sb.String()
}
