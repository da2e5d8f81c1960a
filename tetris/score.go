package tetris

import "github.com/kamstrup/intmap"

// maxClear is the most rows a single lock can complete.
const maxClear = 4

// Score accumulates cleared lines and points. The zero value is ready to
// use.
type Score struct {
	Lines  int
	Points int
	// Locks counts lock events, including those that cleared nothing.
	Locks int

	clears *intmap.Map[int, int]
}

// PointsFor returns the points awarded for clearing n rows in one lock.
func PointsFor(n int) int {
	return n * n * 100
}

// Record adds one lock event that cleared n rows and returns the points it
// awarded.
func (s *Score) Record(n int) int {
	s.Locks++
	if n == 0 {
		return 0
	}
	if s.clears == nil {
		s.clears = intmap.New[int, int](maxClear)
	}
	prev, _ := s.clears.Get(n)
	s.clears.Put(n, prev+1)

	points := PointsFor(n)
	s.Lines += n
	s.Points += points
	return points
}

// Clears returns how many lock events cleared exactly n rows.
func (s *Score) Clears(n int) int {
	if s.clears == nil {
		return 0
	}
	v, _ := s.clears.Get(n)
	return v
}

// Clone returns a copy that shares no state with s.
func (s *Score) Clone() Score {
	out := Score{Lines: s.Lines, Points: s.Points, Locks: s.Locks}
	if s.clears != nil {
		out.clears = intmap.New[int, int](maxClear)
		for n := 1; n <= maxClear; n++ {
			if v, ok := s.clears.Get(n); ok {
				out.clears.Put(n, v)
			}
		}
	}
	return out
}
