package tetris

// Piece is a tetromino placed on the playfield. The anchor is the top-left
// corner of the piece's rotation grid.
type Piece struct {
	kind     Kind
	rotation int
	column   int
	row      int
}

// NewPiece returns a piece of the given kind at rotation 0, anchored at
// (column, 0).
func NewPiece(kind Kind, column int) Piece {
	var p Piece
	p.Spawn(kind, column)
	return p
}

// Spawn resets p to a fresh piece of kind at rotation 0 and row 0.
func (p *Piece) Spawn(kind Kind, column int) {
	*p = Piece{kind: kind, column: column}
}

func (p Piece) Kind() Kind { return p.kind }
func (p Piece) Rotation() int { return p.rotation }
func (p Piece) Column() int { return p.column }
func (p Piece) Row() int { return p.row }
func (p Piece) Anchor() Position { return Position{X: p.column, Y: p.row} }

// Width returns the footprint width of the current rotation.
func (p Piece) Width() int {
	return ShapeOf(p.kind).Width(p.rotation)
}

// Cells returns the occupied offsets of the current rotation state. This is
// the only way to enumerate a piece's shape.
func (p Piece) Cells() []Position {
	return ShapeOf(p.kind).Cells(p.rotation)
}

// AbsoluteCells returns the playfield cells the piece covers.
func (p Piece) AbsoluteCells() []Position {
	cells := p.Cells()
	for i := range cells {
		cells[i].X += p.column
		cells[i].Y += p.row
	}
	return cells
}

// Rotate advances to the next rotation state and clamps the anchor column
// so the new footprint lies within [0, columns). The clamp runs even when
// the piece was already in range; there is no wall-kick search.
func (p *Piece) Rotate(columns int) {
	p.rotation = (p.rotation + 1) % ShapeOf(p.kind).StateCount()
	p.column = max(0, min(p.column, columns-p.Width()))
}

func (p Piece) translated(dx, dy int) Piece {
	p.column += dx
	p.row += dy
	return p
}
