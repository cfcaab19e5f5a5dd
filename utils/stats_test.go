package utils

import "testing"

func TestStats(t *testing.T) {
	t.Parallel()

	s := NewStats()
	s.Update(2, 1, 4)
	s.Update(1, 0, 0)
	s.Reject()

	if s.Evaluated != 2 || s.Rejected != 1 || s.Births != 3 || s.Deaths != 1 || s.Survivors != 4 {
		t.Errorf("unexpected stats: %+v", s)
	}
	if s.Elapsed() < 0 {
		t.Error("negative elapsed time")
	}
}
