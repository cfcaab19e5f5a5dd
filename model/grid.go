package model

import "github.com/sheikhrachel/go-gol-step/rules"

// Grid represents one generation of the board as rows of cell states (0 dead, 1 live)
type Grid [][]uint8

// NewGrid creates an all-dead grid with the specified dimensions
func NewGrid(rows, cols int) Grid {
	cells := make(Grid, rows)
	for i := range cells {
		cells[i] = make([]uint8, cols)
	}
	return cells
}

// Rows returns the number of rows in the grid
func (g Grid) Rows() int {
	return len(g)
}

// Columns returns the length of the first row, or 0 for an empty grid
func (g Grid) Columns() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// IsRectangular reports whether every row has the same length as the first one
func (g Grid) IsRectangular() bool {
	cols := g.Columns()
	for _, row := range g {
		if len(row) != cols {
			return false
		}
	}
	return true
}

// InBounds reports whether (row, col) addresses a cell of the grid
func (g Grid) InBounds(row, col int) bool {
	return row >= 0 && row < len(g) && col >= 0 && col < len(g[row])
}

// Get returns the state of a cell, out-of-range coordinates read as dead
func (g Grid) Get(row, col int) uint8 {
	if !g.InBounds(row, col) {
		return rules.Dead
	}
	return g[row][col]
}

// Set sets a cell state, out-of-range coordinates are ignored
func (g Grid) Set(row, col int, state uint8) {
	if g.InBounds(row, col) {
		g[row][col] = state
	}
}

// Clone returns a deep copy that shares no row storage with g
func (g Grid) Clone() Grid {
	if g == nil {
		return nil
	}
	out := make(Grid, len(g))
	for i, row := range g {
		out[i] = append([]uint8(nil), row...)
	}
	return out
}

// Equal reports whether both grids have the same shape and cell states
func (g Grid) Equal(other Grid) bool {
	if len(g) != len(other) {
		return false
	}
	for i := range g {
		if len(g[i]) != len(other[i]) {
			return false
		}
		for j := range g[i] {
			if g[i][j] != other[i][j] {
				return false
			}
		}
	}
	return true
}

// CountLivingCells returns the total number of living cells
func (g Grid) CountLivingCells() (count int) {
	for _, row := range g {
		for _, cell := range row {
			if cell != rules.Dead {
				count++
			}
		}
	}
	return
}
