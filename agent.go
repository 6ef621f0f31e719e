package twoturn

import (
	"io"
	"sync"

	"github.com/pkg/errors"

	"github.com/twoturn/game"
	"github.com/twoturn/strategy"
)

// An Agent is a player, human or random, sitting in one seat of an Arena.
type Agent struct {
	Strategy strategy.Strategy
	Player   game.Player

	// Statistics
	Wins int
	Loss int
	Draw int
	sync.Mutex

	name string
}

// NewAgent returns an agent called name that plays with s.
func NewAgent(name string, s strategy.Strategy) *Agent {
	return &Agent{Strategy: s, name: name}
}

func (a *Agent) Name() string { return a.name }

// Choose asks the agent's strategy for a move in v.
func (a *Agent) Choose(v game.Variant) (game.Move, error) {
	if a.Strategy == nil {
		return "", errors.Errorf("agent %s has no strategy", a.name)
	}
	return a.Strategy.Choose(v)
}

// Stats returns a snapshot of the agent's record.
func (a *Agent) Stats() (wins, loss, draw int) {
	a.Lock()
	defer a.Unlock()
	return a.Wins, a.Loss, a.Draw
}

// Close releases the strategy if it holds anything, such as an input stream.
func (a *Agent) Close() error {
	if c, ok := a.Strategy.(io.Closer); ok {
		return errors.WithMessagef(c.Close(), "closing agent %s", a.name)
	}
	return nil
}

func (a *Agent) record(winner game.Player, draw bool) {
	a.Lock()
	defer a.Unlock()
	switch {
	case draw:
		a.Draw++
	case winner == a.Player:
		a.Wins++
	default:
		a.Loss++
	}
}

func (a *Agent) resetStats() {
	a.Lock()
	a.Wins = 0
	a.Loss = 0
	a.Draw = 0
	a.Unlock()
}
