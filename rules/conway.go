package rules

// Cell states
const (
	Dead uint8 = 0
	Live uint8 = 1
)

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// NextCellState returns the state a cell takes in the next generation given its
// current state and the number of live cells around it. Any non-zero state counts as live.
func NextCellState(state uint8, liveNeighbors int) uint8 {
	if ApplyConwayRules(liveNeighbors, state != Dead) {
		return Live
	}
	return Dead
}
