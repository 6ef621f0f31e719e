package game

import (
	"fmt"
	"reflect"
)

// Move is a move token as listed by State.PossibleMoves.
type Move string

// State is any game position that implements these and is able to report back.
// A State is never modified after construction: MakeMove returns a new one.
type State interface {
	fmt.Stringer

	IsP1Turn() bool        // whether player 1 moves next.
	CurrentPlayer() Player // the player to move next.

	// interactions
	PossibleMoves() []Move          // all legal moves, in a fixed order. Empty if there are none.
	IsValidMove(m Move) bool        // check if the move is in PossibleMoves.
	MakeMove(m Move) (State, error) // returns the position after m. Fails with ErrInvalidMove.
}

// Variant is a playable game: a State plus the rules around it.
type Variant interface {
	fmt.Stringer

	Name() string
	Instructions() string

	State() State       // the current position.
	Apply(m Move) error // replaces the current position with State().MakeMove(m).

	// Meta-game stuff
	NormalizeMove(raw string) Move // turns raw user input into a move token.
	IsOver(s State) bool           // has the game ended in s?
	IsWinner(player string) bool   // is the game over with player ("p1" or "p2") as the winner?
}

// Equal reports whether a and b are the same kind of state with the same
// textual representation.
func Equal(a, b State) bool {
	if a == nil || b == nil {
		return a == b
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	return a.String() == b.String()
}

// ContainsMove reports whether m is one of moves.
func ContainsMove(moves []Move, m Move) bool {
	for _, candidate := range moves {
		if candidate == m {
			return true
		}
	}
	return false
}
