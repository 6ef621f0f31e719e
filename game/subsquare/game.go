package subsquare

import (
	"fmt"
	"strings"

	"github.com/twoturn/game"
)

const Name = "Subtract Square"

const Instructions = "How to play Subtract Square: Each player selects the square of a positive whole " +
	"number and subtracts it from the current value. Players take turns until no moves are possible. " +
	"Whoever brings the value to exactly 0 wins; whoever is left to move at 0 loses!"

// Game is a game of subtract square.
type Game struct {
	start int
	state State
}

var _ game.Variant = (*Game)(nil)

// NewGame starts a game at start, which must not be negative.
func NewGame(p1Turn bool, start int) (*Game, error) {
	s, err := NewState(p1Turn, start)
	if err != nil {
		return nil, err
	}
	return &Game{start: start, state: s}, nil
}

func (g *Game) Name() string { return Name }

func (g *Game) Instructions() string { return Instructions }

func (g *Game) State() game.State { return g.state }

// Start is the value the game began with.
func (g *Game) Start() int { return g.start }

func (g *Game) Apply(m game.Move) error {
	next, err := g.state.MakeMove(m)
	if err != nil {
		return err
	}
	g.state = next.(State)
	return nil
}

// NormalizeMove trims surrounding whitespace.
func (g *Game) NormalizeMove(raw string) game.Move {
	return game.Move(strings.TrimSpace(raw))
}

func (g *Game) IsOver(s game.State) bool {
	return len(s.PossibleMoves()) == 0
}

func (g *Game) IsWinner(player string) bool {
	p, err := game.ParsePlayer(player)
	if err != nil {
		return false
	}
	return g.IsOver(g.state) && g.state.CurrentPlayer() == p
}

func (g *Game) String() string {
	return fmt.Sprintf("Current Game: %s, Current Value: %d", Name, g.state.Value())
}
