// Command play runs one game on the terminal, against a random opponent or
// between two humans sharing the keyboard.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/pkg/errors"

	"github.com/twoturn"
	"github.com/twoturn/game"
	"github.com/twoturn/internal/logging"
	"github.com/twoturn/internal/randutil"
	"github.com/twoturn/strategy"
)

type CLI struct {
	Variant    string `default:"chopsticks" enum:"chopsticks,subtract-square" help:"Game to play: chopsticks or subtract-square"`
	Start      int    `default:"-1" help:"Starting value for subtract-square (asked for when negative)"`
	First      string `default:"p1" help:"Player to move first: p1 or p2"`
	P1         string `default:"interactive" enum:"interactive,random" help:"Strategy for player 1"`
	P2         string `default:"random" enum:"interactive,random" help:"Strategy for player 2"`
	Seed       int64  `default:"0" help:"RNG seed for random players (0 for random)"`
	MaxMoves   int    `default:"500" help:"Call the game a draw after this many moves"`
	MaxInvalid int    `default:"5" help:"Give up after this many illegal moves in a row"`
	LogLevel   string `default:"warn" enum:"debug,info,warn,error" help:"Log level"`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("play"),
		kong.Description("Play Chopsticks or Subtract Square on the terminal"),
		kong.UsageOnError(),
	)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	kctx.FatalIfErrorf(cli.Run(ctx, os.Stdin, os.Stdout, os.Stderr))
}

func (c *CLI) Run(ctx context.Context, in io.Reader, out, errOut io.Writer) error {
	logger, err := logging.New(errOut, c.LogLevel)
	if err != nil {
		return err
	}
	human := strategy.NewInteractive(in, out)

	conf := twoturn.DefaultConfig()
	conf.Variant = c.Variant
	conf.FirstPlayer = c.First
	conf.P1Strategy = c.P1
	conf.P2Strategy = c.P2
	conf.Seed = randutil.Seed(c.Seed)
	conf.MaxMoves = c.MaxMoves
	conf.MaxInvalid = c.MaxInvalid
	if conf.Variant == twoturn.VariantSubtractSquare {
		conf.StartValue = c.Start
		if conf.StartValue < 0 {
			if conf.StartValue, err = askStartValue(human); err != nil {
				return err
			}
		}
	}
	if err := conf.Validate(); err != nil {
		return err
	}

	v, err := twoturn.NewVariant(*conf)
	if err != nil {
		return err
	}
	rng := randutil.New(conf.Seed)
	p1, err := twoturn.NewStrategy(conf.P1Strategy, rng, human)
	if err != nil {
		return err
	}
	p2, err := twoturn.NewStrategy(conf.P2Strategy, rng, human)
	if err != nil {
		return err
	}
	logger.Debug("starting game", "variant", v.Name(), "seed", conf.Seed)

	fmt.Fprintln(out, v.Instructions())
	fmt.Fprintln(out, v.State())
	showMoves(out, v, v.State())

	arena := twoturn.MakeArena(v,
		twoturn.NewAgent("Player 1", p1),
		twoturn.NewAgent("Player 2", p2),
		twoturn.WithLogger(logger),
		twoturn.WithLimits(conf.MaxMoves, conf.MaxInvalid),
		twoturn.WithObserver(func(mover game.Player, m game.Move, after game.State) {
			fmt.Fprintf(out, "%s plays %s. %s\n", mover, m, after)
			showMoves(out, v, after)
		}),
	)
	defer func() {
		if err := arena.Close(); err != nil {
			logger.Warn("closing players", "err", err)
		}
	}()

	res, err := arena.Play(ctx)
	switch {
	case errors.Is(err, twoturn.ErrMoveLimit):
		fmt.Fprintf(out, "No winner after %d moves, it's a draw.\n", res.Moves)
		return nil
	case err != nil:
		return err
	case res.Draw:
		fmt.Fprintln(out, "The game is over without a winner.")
	default:
		fmt.Fprintf(out, "%s wins after %d moves!\n", res.Winner, res.Moves)
	}
	return nil
}

func showMoves(out io.Writer, v game.Variant, s game.State) {
	if v.IsOver(s) {
		return
	}
	moves := make([]string, 0, len(s.PossibleMoves()))
	for _, m := range s.PossibleMoves() {
		moves = append(moves, string(m))
	}
	fmt.Fprintf(out, "Possible moves for %s: %s\n", s.CurrentPlayer(), strings.Join(moves, ", "))
}

// askStartValue keeps asking until it reads a non-negative whole number.
func askStartValue(human *strategy.Interactive) (int, error) {
	prompt := "Please select a starting value: "
	for {
		line, err := human.ReadLine(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		switch {
		case err != nil:
			prompt = "Please enter a whole number: "
		case n < 0:
			prompt = "No negative numbers! Please select another value: "
		default:
			return n, nil
		}
	}
}
