package chopsticks

import (
	"fmt"
	"strings"

	"github.com/twoturn/game"
)

// Name of the variant.
const Name = "Chopsticks"

// Instructions explains the rules to a human player.
const Instructions = "How to play Chopsticks: Each player starts with 1 finger up on each hand. " +
	"On your turn, touch one of your hands to one of your opponent's hands (ll, lr, rl or rr: " +
	"your hand first, then theirs). This adds the value of your hand to the hand you touched. " +
	"When a hand reaches EXACTLY 5 that hand is dead. If the sum exceeds 5, subtract 5 from it. " +
	"Dead hands can neither strike nor be struck. When both hands are dead, that player loses!"

// Game is a game of chopsticks.
type Game struct {
	state State
}

var _ game.Variant = (*Game)(nil)

// NewGame starts a game from the usual opening position.
func NewGame(p1Turn bool) *Game {
	return &Game{state: Initial(p1Turn)}
}

// NewGameFrom starts a game from s.
func NewGameFrom(s State) *Game {
	return &Game{state: s}
}

func (g *Game) Name() string { return Name }

func (g *Game) Instructions() string { return Instructions }

func (g *Game) State() game.State { return g.state }

func (g *Game) Apply(m game.Move) error {
	next, err := g.state.MakeMove(m)
	if err != nil {
		return err
	}
	g.state = next.(State)
	return nil
}

// NormalizeMove trims and lower-cases raw input, so " RL" becomes "rl".
func (g *Game) NormalizeMove(raw string) game.Move {
	return game.Move(strings.ToLower(strings.TrimSpace(raw)))
}

func (g *Game) IsOver(s game.State) bool {
	if cs, ok := s.(State); ok {
		return cs.Over()
	}
	return len(s.PossibleMoves()) == 0
}

// IsWinner reports whether the game is over and player still has a living hand.
func (g *Game) IsWinner(player string) bool {
	p, err := game.ParsePlayer(player)
	if err != nil {
		return false
	}
	winner, ok := g.state.Winner()
	return ok && winner == p
}

func (g *Game) String() string {
	h := g.state.Hands()
	return fmt.Sprintf("Current Game: %s, Current Value: [%d, %d, %d, %d]",
		Name, h.P1Left, h.P1Right, h.P2Left, h.P2Right)
}
