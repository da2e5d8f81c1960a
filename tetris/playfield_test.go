package tetris_test

import (
	"fmt"
	"testing"

	"github.com/plus3/tetrus/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillRow(f *tetris.Playfield, row int, k tetris.Kind, except ...int) {
	skip := make(map[int]bool)
	for _, c := range except {
		skip[c] = true
	}
	for c := 0; c < tetris.Columns; c++ {
		if !skip[c] {
			f.Set(c, row, k)
		}
	}
}

func TestPlayfieldSetAndRead(t *testing.T) {
	var f tetris.Playfield

	assert.True(t, f.IsEmpty(3, 5))
	f.Set(3, 5, tetris.Z)

	assert.False(t, f.IsEmpty(3, 5))
	k, ok := f.At(3, 5).Kind()
	assert.True(t, ok)
	assert.Equal(t, tetris.Z, k)

	cells := f.Cells()
	require.Len(t, cells, tetris.Columns*tetris.Rows)
	assert.Equal(t, tetris.Occupied(tetris.Z), cells[5*tetris.Columns+3])
	assert.Equal(t, 1, f.Filled())
}

func TestPlayfieldOutOfRangePanics(t *testing.T) {
	var f tetris.Playfield

	for _, pos := range []tetris.Position{{-1, 0}, {tetris.Columns, 0}, {0, -1}, {0, tetris.Rows}} {
		t.Run(fmt.Sprintf("%d,%d", pos.X, pos.Y), func(t *testing.T) {
			assert.False(t, tetris.InBounds(pos.X, pos.Y))
			assert.Panics(t, func() { f.IsEmpty(pos.X, pos.Y) })
			assert.Panics(t, func() { f.Set(pos.X, pos.Y, tetris.T) })
		})
	}
}

func TestPlayfieldRowIsFull(t *testing.T) {
	var f tetris.Playfield

	fillRow(&f, 19, tetris.I, 9)
	assert.False(t, f.RowIsFull(19))
	assert.Empty(t, f.FullRows())

	f.Set(9, 19, tetris.J)
	assert.True(t, f.RowIsFull(19))
	assert.False(t, f.RowIsFull(18))

	fillRow(&f, 4, tetris.S)
	assert.Equal(t, []int{4, 19}, f.FullRows())
}

func TestPlayfieldCollapse(t *testing.T) {
	for _, row := range []int{0, 1, 10, tetris.Rows - 1} {
		t.Run(fmt.Sprintf("row=%d", row), func(t *testing.T) {
			var f tetris.Playfield
			// A staircase so every row is distinguishable.
			for r := 0; r < tetris.Rows; r++ {
				for c := 0; c <= r%tetris.Columns; c++ {
					f.Set(c, r, tetris.KindFromIndex(r))
				}
			}
			before := f

			f.Collapse(row)

			for c := 0; c < tetris.Columns; c++ {
				assert.True(t, f.IsEmpty(c, 0), "row 0 column %d", c)
			}
			for r := 1; r <= row; r++ {
				for c := 0; c < tetris.Columns; c++ {
					assert.Equal(t, before.At(c, r-1), f.At(c, r), "cell (%d,%d)", c, r)
				}
			}
			for r := row + 1; r < tetris.Rows; r++ {
				for c := 0; c < tetris.Columns; c++ {
					assert.Equal(t, before.At(c, r), f.At(c, r), "cell (%d,%d) below collapse", c, r)
				}
			}
		})
	}
}

func TestPlayfieldCollapseMultiple(t *testing.T) {
	var f tetris.Playfield
	f.Set(2, 15, tetris.T)
	fillRow(&f, 16, tetris.I)
	f.Set(5, 17, tetris.O)
	fillRow(&f, 18, tetris.I)
	f.Set(7, 19, tetris.L)

	for _, r := range f.FullRows() {
		f.Collapse(r)
	}

	assert.Equal(t, 3, f.Filled())
	assert.False(t, f.IsEmpty(2, 17))
	assert.False(t, f.IsEmpty(5, 18))
	assert.False(t, f.IsEmpty(7, 19))
}

func TestPlayfieldReset(t *testing.T) {
	var f tetris.Playfield
	fillRow(&f, 3, tetris.T)
	f.Reset()
	assert.Equal(t, 0, f.Filled())
}

func TestPlayfieldString(t *testing.T) {
	var f tetris.Playfield
	f.Set(0, 0, tetris.I)
	f.Set(9, 19, tetris.O)

	s := f.String()
	assert.Equal(t, (tetris.Columns+1)*tetris.Rows, len(s))
	assert.Equal(t, "I.........\n", s[:tetris.Columns+1])
	assert.Equal(t, ".........O\n", s[len(s)-tetris.Columns-1:])
}
