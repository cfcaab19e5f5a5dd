package model

import "github.com/sheikhrachel/go-gol-step/rules"

// Transition summarises what happened to the cells between two generations
type Transition struct {
	Births    int
	Deaths    int
	Survivors int
}

// Compare counts births, deaths and survivors from prev to next.
// Both grids must have the same shape; cells outside next read as dead.
func Compare(prev, next Grid) Transition {
	var t Transition
	for r, row := range prev {
		for c, cell := range row {
			wasLive := cell != rules.Dead
			isLive := next.Get(r, c) != rules.Dead
			switch {
			case wasLive && isLive:
				t.Survivors++
			case wasLive:
				t.Deaths++
			case isLive:
				t.Births++
			}
		}
	}
	return t
}
