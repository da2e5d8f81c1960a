package tetris

import (
	"time"
)

// Session is one game: the playfield, the active and next pieces, the
// score and the gravity and rotation timers. All state is owned by the
// session and mutated only through Step and Reset. A Session is not safe
// for concurrent use.
type Session struct {
	cfg        Config
	randomizer Randomizer

	field  Playfield
	active Piece
	next   Piece
	score  Score

	sinceGravity time.Duration
	sinceRotate  time.Duration
	toppedOut    bool

	pipeline  *pipeline
	listeners []LockListener
}

// NewSession validates cfg and starts a game with a fresh active and next
// piece.
func NewSession(cfg Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		cfg:        cfg,
		randomizer: cfg.Randomizer,
		pipeline: newPipeline(
			&gravityPhase{},
			&rotationPhase{},
			&horizontalVetoPhase{},
			&movePhase{},
			&lockPhase{},
		),
	}
	if s.randomizer == nil {
		s.randomizer = NewUniformRandomizer(uint64(time.Now().UnixNano()))
	}
	s.Reset()
	return s, nil
}

// Reset clears the playfield, score and timers and deals a new active and
// next piece. Registered listeners and pipeline statistics are kept.
func (s *Session) Reset() {
	s.field.Reset()
	s.score = Score{}
	s.sinceGravity = 0
	s.sinceRotate = s.cfg.RotateDebounce
	s.toppedOut = false
	s.active = s.spawn()
	s.next = s.spawn()
}

// OnLock registers fn to be called after every tick that locked a piece.
func (s *Session) OnLock(fn LockListener) {
	s.listeners = append(s.listeners, fn)
}

// Step advances the game by one tick. elapsed is the wall-clock time since
// the previous Step. Once the stack has topped out Step does nothing until
// Reset.
func (s *Session) Step(in Intent, elapsed time.Duration) {
	if s.toppedOut {
		return
	}

	t := &tick{session: s, elapsed: elapsed, intent: in}
	s.pipeline.once(t)

	for _, ev := range t.events {
		for _, fn := range s.listeners {
			fn(ev)
		}
	}
}

func (s *Session) Config() Config { return s.cfg }

// Playfield returns a copy of the settled cells.
func (s *Session) Playfield() Playfield { return s.field }

func (s *Session) Active() Piece { return s.active }
func (s *Session) Next() Piece { return s.next }

// Score returns a snapshot of the score.
func (s *Session) Score() Score { return s.score.Clone() }

// ToppedOut reports whether a promoted piece overlapped the stack.
func (s *Session) ToppedOut() bool { return s.toppedOut }

// Stats returns execution statistics for the tick pipeline.
func (s *Session) Stats() *PipelineStats { return s.pipeline.stats() }

func (s *Session) spawn() Piece {
	return NewPiece(s.randomizer.Next(), s.cfg.SpawnColumn)
}

// fits reports whether every cell of p lies inside the grid on an empty
// cell.
func (s *Session) fits(p Piece) bool {
	for _, c := range p.AbsoluteCells() {
		if !InBounds(c.X, c.Y) || !s.field.IsEmpty(c.X, c.Y) {
			return false
		}
	}
	return true
}

// fall moves the active piece down one row if the row below is free.
func (s *Session) fall() {
	if below := s.active.translated(0, 1); s.fits(below) {
		s.active = below
	}
}
