package tetris

// LockEvent describes one lock: the piece that settled, the rows it
// completed and the score after the clear.
type LockEvent struct {
	Kind  Kind
	Cells []Position
	// ClearedRows lists the completed rows top to bottom, as they were
	// numbered before collapsing.
	ClearedRows []int
	Points      int
	Score       Score
	// ToppedOut is set when the promoted piece overlapped the stack.
	ToppedOut bool
}

// Cleared returns the number of rows the lock completed.
func (e LockEvent) Cleared() int { return len(e.ClearedRows) }

// LockListener receives lock events after the tick that produced them has
// fully completed.
type LockListener func(LockEvent)
