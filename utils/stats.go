package utils

import "time"

// Stats accumulates counters over a run of the demo driver
type Stats struct {
	Evaluated int
	Rejected  int
	Births    int
	Deaths    int
	Survivors int
	StartTime time.Time
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one successful transition
func (s *Stats) Update(births, deaths, survivors int) {
	s.Evaluated++
	s.Births += births
	s.Deaths += deaths
	s.Survivors += survivors
}

// Reject records a grid the engine refused
func (s *Stats) Reject() {
	s.Rejected++
}

// Elapsed returns the time since the stats were created
func (s *Stats) Elapsed() time.Duration {
	return time.Since(s.StartTime)
}
