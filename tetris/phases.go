package tetris

// A tick runs these phases in order: gravity, rotation, horizontal veto,
// horizontal move, landing test and lock. Movement is applied before the
// landing test, so a piece that has just come to rest can still be slid
// sideways during that one tick before it locks.

// gravityPhase drops the piece one row when the gravity interval has
// elapsed, or else when Down is held. The two never stack in one tick.
type gravityPhase struct{}

func (gravityPhase) execute(t *tick) {
	s := t.session
	s.sinceGravity += t.elapsed

	switch {
	case s.sinceGravity >= s.cfg.GravityInterval:
		s.sinceGravity = 0
		s.fall()
	case t.intent.Down:
		s.fall()
	}
}

// rotationPhase rotates on Up, at most once per debounce interval.
type rotationPhase struct{}

func (rotationPhase) execute(t *tick) {
	s := t.session
	if s.sinceRotate < s.cfg.RotateDebounce {
		s.sinceRotate += t.elapsed
	}
	if !t.intent.Up || s.sinceRotate < s.cfg.RotateDebounce {
		return
	}

	rotated := s.active
	rotated.Rotate(Columns)
	// A rotation that would bury the piece in the stack or the floor is
	// dropped and does not consume the debounce.
	if !s.fits(rotated) {
		return
	}
	s.active = rotated
	s.sinceRotate = 0
}

// horizontalVetoPhase withdraws Left/Right when the piece is against a
// wall or a settled cell, judged at its current position.
type horizontalVetoPhase struct{}

func (horizontalVetoPhase) execute(t *tick) {
	s := t.session
	t.intent.Left, t.intent.Right = vetoHorizontal(&s.field, s.active.AbsoluteCells(), t.intent.Left, t.intent.Right)
}

// vetoHorizontal only ever clears permissions. A cell on the wall column
// vetoes that direction and still has its inner neighbor checked, so a
// vertical bar against the left wall cannot slide right into the stack.
func vetoHorizontal(f *Playfield, cells []Position, left, right bool) (bool, bool) {
	for _, c := range cells {
		if left && (c.X <= 0 || !InBounds(c.X-1, c.Y) || !f.IsEmpty(c.X-1, c.Y)) {
			left = false
		}
		if right && (c.X >= Columns-1 || !InBounds(c.X+1, c.Y) || !f.IsEmpty(c.X+1, c.Y)) {
			right = false
		}
	}
	return left, right
}

// movePhase applies the surviving horizontal request. Left wins when both
// are set.
type movePhase struct{}

func (movePhase) execute(t *tick) {
	s := t.session
	switch {
	case t.intent.Left:
		s.active.column--
	case t.intent.Right:
		s.active.column++
	}
}

// lockPhase settles the piece once it has landed, clears full rows, scores
// and promotes the next piece.
type lockPhase struct{}

func (lockPhase) execute(t *tick) {
	s := t.session
	cells := s.active.AbsoluteCells()
	if !landed(&s.field, cells) {
		return
	}
	s.lock(t, cells)
}

// landed reports whether any cell rests on the floor or on a settled cell.
// The first such cell decides: the whole piece locks and the remaining
// cells are not examined.
func landed(f *Playfield, cells []Position) bool {
	for _, c := range cells {
		below := c.Y + 1
		if below >= Rows || !f.IsEmpty(c.X, below) {
			return true
		}
	}
	return false
}

func (s *Session) lock(t *tick, cells []Position) {
	kind := s.active.kind
	for _, c := range cells {
		s.field.Set(c.X, c.Y, kind)
	}

	// Rows are collected in one pass before any collapse. Collapsing in
	// ascending order keeps the remaining row numbers valid because each
	// collapse only moves rows above it.
	rows := s.field.FullRows()
	for _, r := range rows {
		s.field.Collapse(r)
	}
	points := s.score.Record(len(rows))

	s.active = s.next
	s.next = s.spawn()
	s.toppedOut = !s.fits(s.active)

	t.emit(LockEvent{
		Kind:        kind,
		Cells:       cells,
		ClearedRows: rows,
		Points:      points,
		Score:       s.score.Clone(),
		ToppedOut:   s.toppedOut,
	})
}
