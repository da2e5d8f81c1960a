package tetris

// Intent is the decoded player input for one tick: which directions are
// currently requested. Up rotates, Down drops one row.
type Intent struct {
	Left, Right, Up, Down bool
}

func (in Intent) IsZero() bool {
	return in == Intent{}
}
