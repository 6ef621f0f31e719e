package subsquare

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"

	"github.com/twoturn/game"
)

// State is a subtract-square position: a value and the player to move.
type State struct {
	value  int
	p1Turn bool
	moves  []int // ascending squares <= value
}

var _ game.State = State{}

// NewState returns the position with the given value. value must not be negative.
func NewState(p1Turn bool, value int) (State, error) {
	if value < 0 {
		return State{}, errors.Errorf("subtract square: negative value %d", value)
	}
	return newState(p1Turn, value), nil
}

func newState(p1Turn bool, value int) State {
	return State{value: value, p1Turn: p1Turn, moves: squaresUpTo(value)}
}

// squaresUpTo lists 1, 4, 9, ... up to n. Consecutive squares differ by the odd numbers 3, 5, 7, ...
func squaresUpTo(n int) []int {
	var retVal []int
	for sq, step := 1, 3; sq <= n; sq, step = sq+step, step+2 {
		retVal = append(retVal, sq)
	}
	return retVal
}

// Value is the number left to subtract from.
func (s State) Value() int { return s.value }

func (s State) IsP1Turn() bool { return s.p1Turn }

func (s State) CurrentPlayer() game.Player { return game.PlayerFor(s.p1Turn) }

func (s State) String() string {
	return fmt.Sprintf("The current value of the game is: %d", s.value)
}

func (s State) PossibleMoves() []game.Move {
	retVal := make([]game.Move, 0, len(s.moves))
	for _, m := range s.moves {
		retVal = append(retVal, game.Move(strconv.Itoa(m)))
	}
	return retVal
}

func (s State) IsValidMove(m game.Move) bool {
	return game.ContainsMove(s.PossibleMoves(), m)
}

// MakeMove subtracts m from the value. The turn passes to the opponent unless
// the value reaches zero, in which case the mover stays recorded as the player
// to move and so as the winner.
func (s State) MakeMove(m game.Move) (game.State, error) {
	if !s.IsValidMove(m) {
		return nil, errors.Wrapf(game.ErrInvalidMove, "subtract square: %q not in %v", string(m), s.PossibleMoves())
	}
	k, err := strconv.Atoi(string(m))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	next := s.value - k
	if next == 0 {
		return newState(s.p1Turn, next), nil
	}
	return newState(!s.p1Turn, next), nil
}

// Over reports whether no square can be subtracted any more.
func (s State) Over() bool { return len(s.moves) == 0 }

// Winner returns the recorded player once the game is over.
func (s State) Winner() (game.Player, bool) {
	if !s.Over() {
		return 0, false
	}
	return s.CurrentPlayer(), true
}
