package twoturn

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/twoturn/game"
)

// ErrMoveLimit is returned by Arena.Play when a game is stopped as a draw after too many moves.
var ErrMoveLimit = errors.New("move limit reached")

// Arena represents a game arena: one variant and the two agents playing it.
type Arena struct {
	game   game.Variant
	p1, p2 *Agent

	clock    quartz.Clock
	logger   *log.Logger
	observer Observer

	maxMoves   int
	maxInvalid int
}

// ArenaOption configures an Arena.
type ArenaOption func(*Arena)

// WithClock sets the clock used to time games.
func WithClock(c quartz.Clock) ArenaOption {
	return func(a *Arena) { a.clock = c }
}

func WithLogger(l *log.Logger) ArenaOption {
	return func(a *Arena) { a.logger = l }
}

// WithLimits caps the number of moves in a game and the number of illegal
// answers accepted from a strategy in a row. Zero keeps the default.
func WithLimits(maxMoves, maxInvalid int) ArenaOption {
	return func(a *Arena) {
		if maxMoves > 0 {
			a.maxMoves = maxMoves
		}
		if maxInvalid > 0 {
			a.maxInvalid = maxInvalid
		}
	}
}

// WithObserver registers a callback run after every applied move.
func WithObserver(o Observer) ArenaOption {
	return func(a *Arena) { a.observer = o }
}

// MakeArena seats p1 and p2 at g.
func MakeArena(g game.Variant, p1, p2 *Agent, opts ...ArenaOption) *Arena {
	defaults := DefaultConfig()
	a := &Arena{
		game:       g,
		p1:         p1,
		p2:         p2,
		clock:      quartz.NewReal(),
		logger:     log.Default(),
		maxMoves:   defaults.MaxMoves,
		maxInvalid: defaults.MaxInvalid,
	}
	for _, opt := range opts {
		opt(a)
	}
	p1.Player = game.P1
	p2.Player = game.P2
	return a
}

// Play plays the game to the end and records the outcome on both agents.
// If the move limit is hit, the result is a draw and the error wraps ErrMoveLimit.
func (a *Arena) Play(ctx context.Context) (Result, error) {
	start := a.clock.Now()
	res := Result{
		MatchID: uuid.New(),
		Variant: a.game.Name(),
	}
	logger := a.logger.With("match", res.MatchID.String())
	logger.Debug("game started", "variant", res.Variant, "state", a.game.State(), "first", a.game.State().CurrentPlayer())

	for !a.game.IsOver(a.game.State()) {
		if err := ctx.Err(); err != nil {
			return res, errors.WithStack(err)
		}
		if len(res.History) >= a.maxMoves {
			res.Draw = true
			res.Moves = len(res.History)
			res.Elapsed = a.clock.Since(start)
			a.record(res)
			logger.Warn("move limit reached, calling it a draw", "moves", res.Moves)
			return res, errors.Wrapf(ErrMoveLimit, "after %d moves", res.Moves)
		}

		mover := a.game.State().CurrentPlayer()
		m, err := a.nextMove(logger)
		if err != nil {
			return res, err
		}
		if err := a.game.Apply(m); err != nil {
			return res, err
		}
		res.History = append(res.History, m)
		logger.Debug("move", "player", mover, "move", m, "state", a.game.State())
		if a.observer != nil {
			a.observer(mover, m, a.game.State())
		}
	}

	res.Moves = len(res.History)
	res.Elapsed = a.clock.Since(start)
	switch {
	case a.game.IsWinner(game.P1.String()):
		res.Winner = game.P1
	case a.game.IsWinner(game.P2.String()):
		res.Winner = game.P2
	default:
		res.Draw = true
	}
	a.record(res)
	logger.Info("game over", "winner", res.Winner, "draw", res.Draw, "moves", res.Moves, "elapsed", res.Elapsed)
	return res, nil
}

// Close closes both agents.
func (a *Arena) Close() error {
	var errs error
	for _, agent := range []*Agent{a.p1, a.p2} {
		if err := agent.Close(); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	return errs
}

// State of the game
func (a *Arena) State() game.State { return a.game.State() }

// Variant being played
func (a *Arena) Variant() game.Variant { return a.game }

// nextMove asks the agent to move until it answers with a legal move or runs
// out of attempts.
func (a *Arena) nextMove(logger *log.Logger) (game.Move, error) {
	s := a.game.State()
	agent := a.agentFor(s.CurrentPlayer())
	for attempt := 1; ; attempt++ {
		m, err := agent.Choose(a.game)
		if err != nil {
			return "", errors.WithMessagef(err, "agent %s", agent.Name())
		}
		if s.IsValidMove(m) {
			return m, nil
		}
		logger.Warn("invalid move", "agent", agent.Name(), "move", m, "possible", s.PossibleMoves(), "attempt", attempt)
		if attempt >= a.maxInvalid {
			return "", errors.Wrapf(game.ErrInvalidMove, "agent %s: %d illegal moves in a row, last %q", agent.Name(), attempt, string(m))
		}
	}
}

func (a *Arena) agentFor(p game.Player) *Agent {
	if p == game.P1 {
		return a.p1
	}
	return a.p2
}

func (a *Arena) record(res Result) {
	a.p1.record(res.Winner, res.Draw)
	a.p2.record(res.Winner, res.Draw)
}
