// Command simulate plays a series of random games and reports who won how often.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"

	"github.com/twoturn"
	"github.com/twoturn/internal/logging"
)

type CLI struct {
	Config      string `short:"c" default:"twoturn.hcl" help:"HCL config file (defaults are used if it does not exist)"`
	Variant     string `enum:",chopsticks,subtract-square" default:"" help:"Override the configured variant"`
	Start       int    `default:"-1" help:"Override the subtract-square starting value (ignored when negative)"`
	Games       int    `help:"Override the number of games"`
	Seed        int64  `help:"Override the RNG seed"`
	Concurrency int    `help:"Override how many games run at once"`
	LogLevel    string `default:"info" enum:"debug,info,warn,error" help:"Log level"`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("simulate"),
		kong.Description("Play many games between random players"),
		kong.UsageOnError(),
	)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	kctx.FatalIfErrorf(cli.Run(ctx, os.Stdout, os.Stderr))
}

// Run loads the config, applies the overrides and plays the series.
func (c *CLI) Run(ctx context.Context, out, errOut io.Writer) error {
	logger, err := logging.New(errOut, c.LogLevel)
	if err != nil {
		return err
	}
	conf, err := twoturn.LoadConfig(c.Config)
	if err != nil {
		return err
	}
	c.override(conf)

	series, err := twoturn.New(*conf, twoturn.WithSeriesLogger(logger))
	if err != nil {
		return err
	}
	summary, err := series.Run(ctx)
	if err != nil {
		return err
	}

	resolved := series.Config()
	fmt.Fprintf(out, "%s: %d games of %s (seed %d)\n", resolved.Name, summary.Games, resolved.Variant, resolved.Seed)
	fmt.Fprintf(out, "p1 (%s) wins: %d (%.1f%%)\n", resolved.P1Strategy, summary.P1Wins, 100*summary.P1WinRate)
	fmt.Fprintf(out, "p2 (%s) wins: %d\n", resolved.P2Strategy, summary.P2Wins)
	fmt.Fprintf(out, "draws: %d\n", summary.Draws)
	fmt.Fprintf(out, "moves per game: %.2f ± %.2f\n", summary.MeanMoves, summary.StdDevMoves)
	return nil
}

func (c *CLI) override(conf *twoturn.Config) {
	if c.Variant != "" {
		conf.Variant = c.Variant
	}
	if c.Start >= 0 {
		conf.StartValue = c.Start
	}
	if c.Games > 0 {
		conf.Games = c.Games
	}
	if c.Seed != 0 {
		conf.Seed = c.Seed
	}
	if c.Concurrency > 0 {
		conf.Concurrency = c.Concurrency
	}
}
