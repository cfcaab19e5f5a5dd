package model

// Sample is a named literal grid used by the demo driver
type Sample struct {
	Name string
	Grid Grid
}

// Samples returns fresh copies of the five 6x8 demo grids
func Samples() []Sample {
	allLive := NewGrid(6, 8)
	for r := range allLive {
		for c := range allLive[r] {
			allLive[r][c] = 1
		}
	}

	return []Sample{
		{Name: "all dead", Grid: NewGrid(6, 8)},
		{Name: "all live", Grid: allLive},
		{Name: "sparse", Grid: Grid{
			{0, 0, 0, 0, 0, 0, 1, 0},
			{1, 1, 1, 0, 0, 0, 1, 0},
			{0, 0, 0, 0, 0, 0, 1, 0},
			{0, 0, 0, 0, 0, 0, 0, 0},
			{0, 0, 0, 1, 1, 0, 0, 0},
			{0, 0, 0, 1, 1, 0, 0, 0},
		}},
		{Name: "dense", Grid: Grid{
			{1, 1, 1, 1, 1, 1, 0, 1},
			{0, 0, 0, 1, 1, 1, 0, 1},
			{1, 1, 1, 1, 1, 1, 0, 1},
			{1, 1, 1, 1, 1, 1, 1, 1},
			{1, 1, 1, 0, 0, 1, 1, 1},
			{1, 1, 1, 0, 0, 1, 1, 1},
		}},
		{Name: "ring", Grid: Grid{
			{0, 1, 1, 1, 1, 1, 1, 0},
			{1, 1, 1, 1, 1, 1, 1, 1},
			{1, 1, 1, 1, 1, 1, 1, 1},
			{1, 1, 1, 1, 1, 1, 1, 1},
			{1, 1, 1, 1, 1, 1, 1, 1},
			{0, 1, 1, 1, 1, 1, 1, 0},
		}},
	}
}
