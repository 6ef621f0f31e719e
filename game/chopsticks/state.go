package chopsticks

import (
	"github.com/pkg/errors"

	"github.com/twoturn/game"
)

// moves is every label in the order PossibleMoves lists them.
// The first letter is the mover's hand, the second the opponent's.
var moves = [...]struct {
	label    game.Move
	from, to side
}{
	{"ll", left, left},
	{"lr", left, right},
	{"rl", right, left},
	{"rr", right, right},
}

// State is a chopsticks position. The zero value is not usable; build one
// with NewState or Initial.
type State struct {
	hands  Hands
	p1Turn bool

	// candidate positions, indexed like moves
	next     [len(moves)]Hands
	possible [len(moves)]bool
}

var _ game.State = State{}

// Initial returns the starting position with one finger on every hand.
func Initial(p1Turn bool) State {
	return newState(p1Turn, StartingHands)
}

// NewState returns the position with the given hands and player to move.
// Every hand must hold 0 to MaxFingers fingers.
func NewState(p1Turn bool, h Hands) (State, error) {
	if err := h.validate(); err != nil {
		return State{}, err
	}
	return newState(p1Turn, h), nil
}

func newState(p1Turn bool, h Hands) State {
	s := State{hands: h, p1Turn: p1Turn}
	if h.Dead(game.P1) || h.Dead(game.P2) {
		return s
	}
	mover := s.CurrentPlayer()
	for i, m := range moves {
		s.next[i], s.possible[i] = h.strike(mover, m.from, m.to)
	}
	return s
}

// Hands returns the finger counts.
func (s State) Hands() Hands { return s.hands }

func (s State) IsP1Turn() bool { return s.p1Turn }

func (s State) CurrentPlayer() game.Player { return game.PlayerFor(s.p1Turn) }

func (s State) String() string { return s.hands.String() }

func (s State) PossibleMoves() []game.Move {
	retVal := make([]game.Move, 0, len(moves))
	for i, m := range moves {
		if s.possible[i] {
			retVal = append(retVal, m.label)
		}
	}
	return retVal
}

func (s State) IsValidMove(m game.Move) bool {
	return game.ContainsMove(s.PossibleMoves(), m)
}

// MakeMove returns the position after m. The turn always passes to the opponent.
func (s State) MakeMove(m game.Move) (game.State, error) {
	for i, candidate := range moves {
		if candidate.label == m && s.possible[i] {
			return newState(!s.p1Turn, s.next[i]), nil
		}
	}
	return nil, errors.Wrapf(game.ErrInvalidMove, "chopsticks: %q not in %v", string(m), s.PossibleMoves())
}

// Over reports whether one player has lost both hands.
func (s State) Over() bool {
	return s.hands.Dead(game.P1) || s.hands.Dead(game.P2)
}

// Winner returns the player with a living hand once the game is over.
func (s State) Winner() (game.Player, bool) {
	p1Dead, p2Dead := s.hands.Dead(game.P1), s.hands.Dead(game.P2)
	switch {
	case p1Dead && !p2Dead:
		return game.P2, true
	case p2Dead && !p1Dead:
		return game.P1, true
	}
	return 0, false
}
