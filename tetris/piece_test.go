package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPieceSpawn(t *testing.T) {
	p := NewPiece(L, DefaultSpawnColumn)
	p.Rotate(Columns)
	p.row = 7

	p.Spawn(T, 3)

	assert.Equal(t, T, p.Kind())
	assert.Equal(t, 0, p.Rotation())
	assert.Equal(t, Position{X: 3, Y: 0}, p.Anchor())
}

func TestPieceAbsoluteCells(t *testing.T) {
	p := NewPiece(T, 4)
	p.row = 2

	assert.ElementsMatch(t, []Position{{4, 2}, {5, 2}, {6, 2}, {5, 3}}, p.AbsoluteCells())
}

func TestPieceFullRotationCycle(t *testing.T) {
	for _, k := range []Kind{T, S, Z, L, J, I} {
		t.Run(k.String(), func(t *testing.T) {
			p := NewPiece(k, DefaultSpawnColumn)
			start := p

			for i := 0; i < 4; i++ {
				p.Rotate(Columns)
			}

			assert.Equal(t, start, p)
			assert.Equal(t, start.Cells(), p.Cells())
		})
	}
}

func TestPieceRotateSquareKeepsPattern(t *testing.T) {
	p := NewPiece(O, DefaultSpawnColumn)
	cells := p.Cells()

	for i := 0; i < 5; i++ {
		p.Rotate(Columns)
		assert.Equal(t, 0, p.Rotation())
		assert.Equal(t, cells, p.Cells())
		assert.Equal(t, DefaultSpawnColumn, p.Column())
	}
}

func TestPieceRotateClamp(t *testing.T) {
	tests := []struct {
		name       string
		piece      Piece
		wantColumn int
	}{
		{"vertical I on right wall", Piece{kind: I, rotation: 1, column: 9}, 6},
		{"vertical I in range", Piece{kind: I, rotation: 1, column: 3}, 3},
		{"vertical T on right wall", Piece{kind: T, rotation: 1, column: 8}, 7},
		{"negative column", Piece{kind: T, rotation: 0, column: -1}, 0},
		{"square past right wall", Piece{kind: O, column: 9}, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.piece
			p.Rotate(Columns)
			assert.Equal(t, tt.wantColumn, p.Column())

			for _, c := range p.AbsoluteCells() {
				assert.GreaterOrEqual(t, c.X, 0)
				assert.Less(t, c.X, Columns)
			}
		})
	}
}

func TestPieceStaysInsideWallsWhileRotating(t *testing.T) {
	for i := 0; i < KindCount; i++ {
		k := KindFromIndex(i)
		for _, column := range []int{0, Columns - 1} {
			p := NewPiece(k, column)
			for r := 0; r < 2*ShapeOf(k).StateCount(); r++ {
				p.Rotate(Columns)
				assert.GreaterOrEqual(t, p.Column(), 0, "%s at column %d", k, column)
				for _, c := range p.AbsoluteCells() {
					assert.True(t, c.X >= 0 && c.X < Columns, "%s cell %v", k, c)
				}
			}
		}
	}
}
