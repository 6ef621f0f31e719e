package strategy

import (
	"github.com/pkg/errors"

	"github.com/twoturn/game"
)

// Sampler draws an integer uniformly from [0, n). *rand.Rand from math/rand/v2 satisfies it.
type Sampler interface {
	IntN(n int) int
}

// Random picks uniformly among the legal moves. Not safe for concurrent use
// unless the Sampler is.
type Random struct {
	rng Sampler
}

func NewRandom(rng Sampler) *Random {
	return &Random{rng: rng}
}

func (s *Random) Choose(v game.Variant) (game.Move, error) {
	moves := v.State().PossibleMoves()
	if len(moves) == 0 {
		return "", errors.WithStack(ErrNoMoves)
	}
	m := moves[s.rng.IntN(len(moves))]
	return v.NormalizeMove(string(m)), nil
}
