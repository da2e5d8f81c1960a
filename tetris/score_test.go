package tetris_test

import (
	"fmt"
	"testing"

	"github.com/plus3/tetrus/tetris"
	"github.com/stretchr/testify/assert"
)

func TestScoreRecord(t *testing.T) {
	tests := []struct {
		cleared    int
		wantPoints int
	}{
		{0, 0},
		{1, 100},
		{2, 400},
		{3, 900},
		{4, 1600},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("cleared=%d", tt.cleared), func(t *testing.T) {
			s := tetris.Score{Lines: 3, Points: 500, Locks: 2}

			got := s.Record(tt.cleared)

			assert.Equal(t, tt.wantPoints, got)
			assert.Equal(t, tetris.PointsFor(tt.cleared), got)
			assert.Equal(t, 3+tt.cleared, s.Lines)
			assert.Equal(t, 500+tt.wantPoints, s.Points)
			assert.Equal(t, 3, s.Locks)
		})
	}
}

func TestScoreClearTally(t *testing.T) {
	var s tetris.Score
	assert.Equal(t, 0, s.Clears(1))

	for _, n := range []int{1, 0, 4, 1, 2, 1} {
		s.Record(n)
	}

	assert.Equal(t, 3, s.Clears(1))
	assert.Equal(t, 1, s.Clears(2))
	assert.Equal(t, 0, s.Clears(3))
	assert.Equal(t, 1, s.Clears(4))
	assert.Equal(t, 6, s.Locks)
	assert.Equal(t, 9, s.Lines)
	assert.Equal(t, 3*100+400+1600, s.Points)
}

func TestScoreCloneIsIndependent(t *testing.T) {
	var s tetris.Score
	s.Record(2)

	c := s.Clone()
	s.Record(2)
	s.Record(3)

	assert.Equal(t, 1, c.Clears(2))
	assert.Equal(t, 0, c.Clears(3))
	assert.Equal(t, 2, c.Lines)
	assert.Equal(t, 2, s.Clears(2))
}
