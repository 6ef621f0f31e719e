package chopsticks

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/twoturn/game"
)

// MaxFingers is the largest count a living hand can hold.
const MaxFingers = 4

// Hands is the number of fingers raised on each of the four hands.
// A hand holding 0 is dead.
type Hands struct {
	P1Left  int
	P1Right int
	P2Left  int
	P2Right int
}

// StartingHands is one finger on every hand.
var StartingHands = Hands{P1Left: 1, P1Right: 1, P2Left: 1, P2Right: 1}

// Correct maps the raw sum of two hands (0..9) back into 0..4.
// Exactly five kills the hand; above five wraps around.
func Correct(n int) int {
	switch {
	case n > 5:
		return n - 5
	case n == 5:
		return 0
	default:
		return n
	}
}

// Dead reports whether both of p's hands are empty.
func (h Hands) Dead(p game.Player) bool {
	return h.get(p, left) == 0 && h.get(p, right) == 0
}

func (h Hands) String() string {
	return fmt.Sprintf("Player 1: %d-%d; Player 2: %d-%d", h.P1Left, h.P1Right, h.P2Left, h.P2Right)
}

func (h Hands) validate() error {
	for _, n := range []int{h.P1Left, h.P1Right, h.P2Left, h.P2Right} {
		if n < 0 || n > MaxFingers {
			return errors.Errorf("chopsticks: hand value %d outside [0,%d] in %v", n, MaxFingers, h)
		}
	}
	return nil
}

type side int

const (
	left side = iota
	right
)

func (h Hands) get(p game.Player, s side) int {
	switch {
	case p == game.P1 && s == left:
		return h.P1Left
	case p == game.P1:
		return h.P1Right
	case s == left:
		return h.P2Left
	default:
		return h.P2Right
	}
}

func (h Hands) with(p game.Player, s side, n int) Hands {
	switch {
	case p == game.P1 && s == left:
		h.P1Left = n
	case p == game.P1:
		h.P1Right = n
	case s == left:
		h.P2Left = n
	default:
		h.P2Right = n
	}
	return h
}

// strike adds the mover's hand to the opponent's hand. ok is false if either is dead.
func (h Hands) strike(mover game.Player, from, to side) (next Hands, ok bool) {
	opponent := mover.Other()
	attack, target := h.get(mover, from), h.get(opponent, to)
	if attack == 0 || target == 0 {
		return h, false
	}
	return h.with(opponent, to, Correct(attack+target)), true
}
