package model

import "github.com/sheikhrachel/go-gol-step/rules"

// Offset is a relative (row, col) step from a cell to one of its neighbors
type Offset struct {
	DRow, DCol int
}

// NeighborOffsets lists every direction around a cell except the cell itself
var NeighborOffsets = [8]Offset{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// CountLiveNeighbors counts live cells among the in-bounds neighbors of (row, col).
// Cells on an edge see 5 candidates and corners 3; there is no wraparound.
func CountLiveNeighbors(g Grid, row, col int) int {
	count := 0
	for _, o := range NeighborOffsets {
		r, c := row+o.DRow, col+o.DCol
		if !g.InBounds(r, c) {
			continue
		}
		if g[r][c] != rules.Dead {
			count++
		}
	}
	return count
}

// CountNeighborCandidates returns how many of the 8 offsets land inside the grid
func CountNeighborCandidates(g Grid, row, col int) int {
	count := 0
	for _, o := range NeighborOffsets {
		if g.InBounds(row+o.DRow, col+o.DCol) {
			count++
		}
	}
	return count
}
