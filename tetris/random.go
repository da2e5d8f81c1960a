package tetris

import "math/rand/v2"

// Randomizer yields the kind of each newly generated piece.
type Randomizer interface {
	Next() Kind
}

// UniformRandomizer picks every kind with equal probability, independently
// of previous picks.
type UniformRandomizer struct {
	rng *rand.Rand
}

func NewUniformRandomizer(seed uint64) *UniformRandomizer {
	return &UniformRandomizer{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (u *UniformRandomizer) Next() Kind {
	return KindFromIndex(u.rng.IntN(KindCount))
}

// BagRandomizer deals the seven kinds in shuffled batches, so every kind
// appears exactly once per seven pieces.
type BagRandomizer struct {
	rng *rand.Rand
	bag []Kind
}

func NewBagRandomizer(seed uint64) *BagRandomizer {
	return &BagRandomizer{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (b *BagRandomizer) Next() Kind {
	if len(b.bag) == 0 {
		b.bag = []Kind{T, O, S, Z, L, J, I}
		b.rng.Shuffle(len(b.bag), func(i, j int) {
			b.bag[i], b.bag[j] = b.bag[j], b.bag[i]
		})
	}
	k := b.bag[0]
	b.bag = b.bag[1:]
	return k
}

// SequenceRandomizer replays a fixed list of kinds, wrapping around at the
// end.
type SequenceRandomizer struct {
	kinds []Kind
	pos   int
}

// NewSequenceRandomizer panics if kinds is empty.
func NewSequenceRandomizer(kinds ...Kind) *SequenceRandomizer {
	if len(kinds) == 0 {
		panic("tetris: empty kind sequence")
	}
	return &SequenceRandomizer{kinds: kinds}
}

func (s *SequenceRandomizer) Next() Kind {
	k := s.kinds[s.pos]
	s.pos = (s.pos + 1) % len(s.kinds)
	return k
}
