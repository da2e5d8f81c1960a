package tetris

import "fmt"

const (
	Columns = 10
	Rows    = 20
)

// Cell is one playfield slot: either empty or occupied by a kind.
type Cell uint8

// Empty is the zero Cell.
const Empty Cell = 0

// Occupied returns the cell value for a slot filled by kind k.
func Occupied(k Kind) Cell { return Cell(k) + 1 }

func (c Cell) IsEmpty() bool { return c == Empty }

// Kind returns the kind that filled the cell; ok is false for empty cells.
func (c Cell) Kind() (k Kind, ok bool) {
	if c == Empty {
		return 0, false
	}
	return Kind(c - 1), true
}

// Playfield is the Columns x Rows grid of settled cells, stored row-major
// with row 0 at the top.
//
// Addressing a cell outside the grid is a caller bug and panics; callers
// check InBounds before probing neighbors.
type Playfield struct {
	cells [Columns * Rows]Cell
}

// InBounds reports whether (column, row) addresses a cell of the grid.
func InBounds(column, row int) bool {
	return column >= 0 && column < Columns && row >= 0 && row < Rows
}

func index(column, row int) int {
	if !InBounds(column, row) {
		panic(fmt.Sprintf("tetris: cell (%d,%d) outside %dx%d playfield", column, row, Columns, Rows))
	}
	return row*Columns + column
}

func (f Playfield) At(column, row int) Cell {
	return f.cells[index(column, row)]
}

// IsEmpty reports whether the cell has not been filled since the last
// clear or collapse.
func (f Playfield) IsEmpty(column, row int) bool {
	return f.At(column, row).IsEmpty()
}

// Set marks the cell occupied by kind k.
func (f *Playfield) Set(column, row int, k Kind) {
	f.cells[index(column, row)] = Occupied(k)
}

// RowIsFull reports whether every column of row is occupied.
func (f Playfield) RowIsFull(row int) bool {
	start := index(0, row)
	for _, c := range f.cells[start : start+Columns] {
		if c.IsEmpty() {
			return false
		}
	}
	return true
}

// FullRows scans top to bottom once and returns every full row in
// ascending order.
func (f Playfield) FullRows() []int {
	var rows []int
	for r := 0; r < Rows; r++ {
		if f.RowIsFull(r) {
			rows = append(rows, r)
		}
	}
	return rows
}

// Collapse deletes row and shifts every row above it down by one, leaving
// row 0 empty. Rows below are untouched.
func (f *Playfield) Collapse(row int) {
	end := index(Columns-1, row) + 1
	copy(f.cells[Columns:end], f.cells[:end-Columns])
	clear(f.cells[:Columns])
}

// Reset empties every cell.
func (f *Playfield) Reset() {
	clear(f.cells[:])
}

// Cells returns a copy of the grid in row-major order.
func (f Playfield) Cells() []Cell {
	out := make([]Cell, len(f.cells))
	copy(out, f.cells[:])
	return out
}

// Filled returns the number of occupied cells.
func (f Playfield) Filled() int {
	n := 0
	for _, c := range f.cells {
		if !c.IsEmpty() {
			n++
		}
	}
	return n
}

// String renders the grid one row per line, '.' for empty cells and the
// kind letter otherwise.
func (f Playfield) String() string {
	b := make([]byte, 0, (Columns+1)*Rows)
	for r := 0; r < Rows; r++ {
		for c := 0; c < Columns; c++ {
			if k, ok := f.At(c, r).Kind(); ok {
				b = append(b, k.String()[0])
			} else {
				b = append(b, '.')
			}
		}
		b = append(b, '\n')
	}
	return string(b)
}
