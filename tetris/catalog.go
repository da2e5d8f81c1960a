// Package tetris implements a falling-block puzzle engine: a fixed 10x20
// playfield, the active and next tetromino, gravity and rotation timing,
// collision resolution, locking, line clears and scoring.
//
// The package does not draw, poll devices or pace frames. A frontend feeds
// a decoded Intent and the elapsed time into Session.Step once per frame and
// reads the playfield, pieces and score back for display.
package tetris

import (
	"fmt"
	"image/color"
	"strings"
)

// Kind identifies one of the seven tetrominoes.
type Kind uint8

const (
	T Kind = iota
	O
	S
	Z
	L
	J
	I
)

// KindCount is the number of distinct tetromino kinds.
const KindCount = 7

// KindFromIndex maps any integer onto a Kind, modulo KindCount.
func KindFromIndex(i int) Kind {
	i %= KindCount
	if i < 0 {
		i += KindCount
	}
	return Kind(i)
}

func (k Kind) String() string {
	if int(k) >= KindCount {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// Color returns the display color of the kind.
func (k Kind) Color() color.RGBA {
	return ShapeOf(k).color
}

var kindNames = [KindCount]string{"T", "O", "S", "Z", "L", "J", "I"}

// Position is a column/row pair. Depending on context it is either an
// offset inside a rotation state or an absolute playfield cell.
type Position struct {
	X, Y int
}

// Shape is the immutable catalog entry for a kind: its color, its rotation
// states and the footprint width for each rotation parity.
type Shape struct {
	color  color.RGBA
	states []state
	widths [2]int
}

type state struct {
	size  int
	cells []Position
}

// Color returns the shape's display color.
func (s Shape) Color() color.RGBA { return s.color }

// StateCount returns the number of distinct rotation states.
func (s Shape) StateCount() int { return len(s.states) }

// Size returns the side length of the square grid the states are drawn in.
func (s Shape) Size() int { return s.states[0].size }

// Width returns the footprint width for the parity of rotation.
func (s Shape) Width(rotation int) int { return s.widths[rotation&1] }

// Cells returns the occupied offsets of the given rotation state.
// Unoccupied sub-cells are never included.
func (s Shape) Cells(rotation int) []Position {
	st := s.states[rotation%len(s.states)]
	out := make([]Position, len(st.cells))
	copy(out, st.cells)
	return out
}

// ShapeOf returns the catalog entry for k. It panics if k is not one of the
// seven kinds.
func ShapeOf(k Kind) Shape {
	if int(k) >= KindCount {
		panic(fmt.Sprintf("tetris: unknown kind %d", uint8(k)))
	}
	return catalog[k]
}

// States are drawn clockwise and packed into the top-left corner of their
// grid, so the footprint of a state starts at column offset 0.
var catalog = [KindCount]Shape{
	T: newShape(color.RGBA{135, 60, 190, 255}, [2]int{3, 2},
		"###/.#./...",
		".#./##./.#.",
		".#./###/...",
		"#../##./#..",
	),
	O: newShape(color.RGBA{255, 203, 0, 255}, [2]int{2, 2},
		"##/##",
	),
	S: newShape(color.RGBA{0, 158, 47, 255}, [2]int{3, 2},
		".##/##./...",
		"#../##./.#.",
		".##/##./...",
		"#../##./.#.",
	),
	Z: newShape(color.RGBA{255, 109, 194, 255}, [2]int{3, 2},
		"##./.##/...",
		".#./##./#..",
		"##./.##/...",
		".#./##./#..",
	),
	L: newShape(color.RGBA{255, 161, 0, 255}, [2]int{3, 2},
		"..#/###/...",
		"#../#../##.",
		"###/#../...",
		"##./.#./.#.",
	),
	J: newShape(color.RGBA{0, 121, 241, 255}, [2]int{3, 2},
		"#../###/...",
		"##./#../#..",
		"###/..#/...",
		".#./.#./##.",
	),
	I: newShape(color.RGBA{102, 191, 255, 255}, [2]int{4, 1},
		"####/..../..../....",
		"#.../#.../#.../#...",
		"####/..../..../....",
		"#.../#.../#.../#...",
	),
}

func newShape(c color.RGBA, widths [2]int, states ...string) Shape {
	s := Shape{color: c, widths: widths}
	for _, src := range states {
		s.states = append(s.states, parseState(src))
	}
	return s
}

// parseState reads a square grid written as '/'-separated rows of '#'
// (occupied) and '.' (empty).
func parseState(src string) state {
	rows := strings.Split(src, "/")
	st := state{size: len(rows)}
	for y, row := range rows {
		if len(row) != len(rows) {
			panic("tetris: rotation state is not square: " + src)
		}
		for x, ch := range row {
			if ch == '#' {
				st.cells = append(st.cells, Position{X: x, Y: y})
			}
		}
	}
	return st
}
