// Command statespace lists every position reachable in a game, either as
// plain text or as a Graphviz graph.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/pkg/errors"

	"github.com/twoturn"
	"github.com/twoturn/internal/logging"
	"github.com/twoturn/statespace"
)

type CLI struct {
	Variant  string `default:"chopsticks" enum:"chopsticks,subtract-square" help:"Game to explore"`
	Start    int    `default:"20" help:"Starting value for subtract-square"`
	First    string `default:"p1" help:"Player to move first: p1 or p2"`
	Format   string `default:"list" enum:"list,dot" help:"Output format: list or dot"`
	Output   string `short:"o" default:"-" help:"File to write to, - for stdout"`
	Limit    int    `default:"100000" help:"Give up after this many positions"`
	LogLevel string `default:"info" enum:"debug,info,warn,error" help:"Log level"`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("statespace"),
		kong.Description("Enumerate the positions reachable in a game"),
		kong.UsageOnError(),
	)
	kctx.FatalIfErrorf(cli.Run(os.Stdout, os.Stderr))
}

func (c *CLI) Run(stdout, errOut io.Writer) (err error) {
	logger, err := logging.New(errOut, c.LogLevel)
	if err != nil {
		return err
	}

	conf := twoturn.DefaultConfig()
	conf.Variant = c.Variant
	conf.StartValue = c.Start
	conf.FirstPlayer = c.First
	if err := conf.Validate(); err != nil {
		return err
	}
	v, err := twoturn.NewVariant(*conf)
	if err != nil {
		return err
	}

	g, err := statespace.Explore(v.State(), c.Limit)
	if err != nil {
		return err
	}
	logger.Info("explored", "variant", v.Name(), "positions", g.Len(), "moves", len(g.Edges()), "terminal", len(g.Terminals()))

	out := stdout
	if c.Output != "-" {
		f, err := os.Create(c.Output)
		if err != nil {
			return errors.WithStack(err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = errors.WithStack(cerr)
			}
		}()
		out = f
	}

	switch c.Format {
	case "dot":
		dot, err := g.DOT(v.Name())
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(out, dot)
		return errors.WithStack(err)
	default:
		return g.WriteList(out)
	}
}
