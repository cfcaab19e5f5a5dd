package model

import (
	"math/rand"

	"github.com/sheikhrachel/go-gol-step/rules"
)

// AddGlider adds a glider pattern with its top-left corner at (startRow, startCol)
func (g Grid) AddGlider(startRow, startCol int) {
	pattern := [][]uint8{
		{0, 1, 0},
		{0, 0, 1},
		{1, 1, 1},
	}

	for r, row := range pattern {
		for c, cell := range row {
			g.Set(startRow+r, startCol+c, cell)
		}
	}
}

// AddBlinker adds a horizontal blinker oscillator
func (g Grid) AddBlinker(startRow, startCol int) {
	g.Set(startRow, startCol, rules.Live)
	g.Set(startRow, startCol+1, rules.Live)
	g.Set(startRow, startCol+2, rules.Live)
}

// AddBlock adds a 2x2 still life
func (g Grid) AddBlock(startRow, startCol int) {
	g.Set(startRow, startCol, rules.Live)
	g.Set(startRow, startCol+1, rules.Live)
	g.Set(startRow+1, startCol, rules.Live)
	g.Set(startRow+1, startCol+1, rules.Live)
}

// Randomize fills the grid with living cells at the given density
func (g Grid) Randomize(rng *rand.Rand, density float64) {
	for r := range g {
		for c := range g[r] {
			state := rules.Dead
			if rng.Float64() < density {
				state = rules.Live
			}
			g[r][c] = state
		}
	}
}
