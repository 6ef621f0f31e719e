// Package twoturn plays two-player, turn-based games between agents and
// collects the results.
package twoturn

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/twoturn/game"
	"github.com/twoturn/internal/randutil"
	"github.com/twoturn/strategy"
)

// Series is the top level structure and the entry point of the API.
// It plays a configured number of independent games, in parallel when allowed.
type Series struct {
	conf   Config
	logger *log.Logger
	clock  quartz.Clock

	in  io.Reader
	out io.Writer

	// running record of each seat across the series
	standings [2]*Agent
}

// SeriesOption configures a Series.
type SeriesOption func(*Series)

func WithSeriesLogger(l *log.Logger) SeriesOption {
	return func(s *Series) { s.logger = l }
}

func WithSeriesClock(c quartz.Clock) SeriesOption {
	return func(s *Series) { s.clock = c }
}

// WithIO sets where interactive strategies read moves and write prompts.
func WithIO(in io.Reader, out io.Writer) SeriesOption {
	return func(s *Series) { s.in, s.out = in, out }
}

// New validates conf and prepares a series. A zero seed is replaced by a time-based one.
func New(conf Config, opts ...SeriesOption) (*Series, error) {
	if err := conf.Validate(); err != nil {
		return nil, errors.WithMessage(err, "invalid config")
	}
	conf.Seed = randutil.Seed(conf.Seed)

	s := &Series{
		conf:   conf,
		logger: log.Default(),
		clock:  quartz.NewReal(),
		in:     os.Stdin,
		out:    os.Stdout,
		standings: [2]*Agent{
			NewAgent(game.P1.String()+"/"+conf.P1Strategy, nil),
			NewAgent(game.P2.String()+"/"+conf.P2Strategy, nil),
		},
	}
	s.standings[0].Player, s.standings[1].Player = game.P1, game.P2
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Config returns the configuration in use, with the seed resolved.
func (s *Series) Config() Config { return s.conf }

// Standings returns the agents holding each seat's record.
func (s *Series) Standings() (p1, p2 *Agent) { return s.standings[0], s.standings[1] }

// Run plays every game of the series and summarizes them.
// Games that hit the move limit count as draws; any other failure stops the series.
func (s *Series) Run(ctx context.Context) (*Summary, error) {
	for _, a := range s.standings {
		a.resetStats()
	}
	s.logger.Info("series started", "name", s.conf.Name, "variant", s.conf.Variant,
		"games", s.conf.Games, "seed", s.conf.Seed, "concurrency", s.conf.Concurrency)

	results := make([]Result, s.conf.Games)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.conf.Concurrency)
	for i := range s.conf.Games {
		g.Go(func() error {
			res, err := s.playOne(ctx, i)
			if err != nil && !errors.Is(err, ErrMoveLimit) {
				return errors.WithMessagef(err, "game %d", i)
			}
			results[i] = res
			for _, a := range s.standings {
				a.record(res.Winner, res.Draw)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := Summarize(results)
	s.logger.Info("series finished", "p1_wins", summary.P1Wins, "p2_wins", summary.P2Wins,
		"draws", summary.Draws, "mean_moves", summary.MeanMoves)
	return summary, nil
}

func (s *Series) playOne(ctx context.Context, i int) (Result, error) {
	v, err := NewVariant(s.conf)
	if err != nil {
		return Result{}, err
	}

	rng := randutil.New(s.conf.Seed + int64(i))
	var human *strategy.Interactive
	if s.conf.P1Strategy == StrategyInteractive || s.conf.P2Strategy == StrategyInteractive {
		human = strategy.NewInteractive(s.in, s.out)
	}
	p1, err := NewStrategy(s.conf.P1Strategy, rng, human)
	if err != nil {
		return Result{}, err
	}
	p2, err := NewStrategy(s.conf.P2Strategy, rng, human)
	if err != nil {
		return Result{}, err
	}

	arena := MakeArena(v,
		NewAgent(s.standings[0].Name(), p1),
		NewAgent(s.standings[1].Name(), p2),
		WithClock(s.clock),
		WithLogger(s.logger.With("game", i)),
		WithLimits(s.conf.MaxMoves, s.conf.MaxInvalid),
	)
	return arena.Play(ctx)
}

// Summarize tallies results. Move-count statistics are zero for an empty slice,
// and the standard deviation is zero for a single game.
func Summarize(results []Result) *Summary {
	summary := &Summary{Games: len(results)}
	if len(results) == 0 {
		return summary
	}

	moves := make([]float64, 0, len(results))
	for _, r := range results {
		switch {
		case r.Draw:
			summary.Draws++
		case r.Winner == game.P1:
			summary.P1Wins++
		case r.Winner == game.P2:
			summary.P2Wins++
		}
		moves = append(moves, float64(r.Moves))
		summary.Elapsed += r.Elapsed
	}

	summary.P1WinRate = float64(summary.P1Wins) / float64(summary.Games)
	if len(moves) < 2 {
		summary.MeanMoves = stat.Mean(moves, nil)
		return summary
	}
	summary.MeanMoves, summary.StdDevMoves = stat.MeanStdDev(moves, nil)
	return summary
}
