// Package strategy holds the move-selection policies that drive a game.Variant.
package strategy

import (
	"github.com/pkg/errors"

	"github.com/twoturn/game"
)

// Strategy picks a move for the player to move in v. The returned move has
// already been through v.NormalizeMove but is not guaranteed to be legal.
type Strategy interface {
	Choose(v game.Variant) (game.Move, error)
}

// Func adapts an ordinary function to a Strategy.
type Func func(v game.Variant) (game.Move, error)

func (f Func) Choose(v game.Variant) (game.Move, error) { return f(v) }

var (
	// ErrNoMoves is returned when asked to choose in a position without legal moves.
	ErrNoMoves   = errors.New("no moves available")

	ErrExhausted = errors.New("no scripted moves left")
)

// Sequence plays back a fixed list of raw moves, one per call.
type Sequence struct {
	raw  []string
	next int
}

// NewSequence returns a Strategy that answers with raw[0], raw[1], ...
func NewSequence(raw ...string) *Sequence {
	return &Sequence{raw: raw}
}

func (s *Sequence) Choose(v game.Variant) (game.Move, error) {
	if s.next >= len(s.raw) {
		return "", errors.WithStack(ErrExhausted)
	}
	m := v.NormalizeMove(s.raw[s.next])
	s.next++
	return m, nil
}
