package twoturn

import (
	"os"
	"runtime"

	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/pkg/errors"

	"github.com/twoturn/game"
)

// DefaultConfig is a single random-vs-random game of chopsticks.
func DefaultConfig() *Config {
	return &Config{
		Name:        "twoturn",
		Variant:     VariantChopsticks,
		StartValue:  20,
		FirstPlayer: game.P1.String(),
		P1Strategy:  StrategyRandom,
		P2Strategy:  StrategyRandom,
		Games:       1,
		Concurrency: runtime.NumCPU(),
		MaxMoves:    500,
		MaxInvalid:  3,
	}
}

// LoadConfig reads an HCL file on top of DefaultConfig. A missing file yields the defaults.
func LoadConfig(filename string) (*Config, error) {
	config := DefaultConfig()
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return config, nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, errors.Errorf("failed to parse HCL file: %s", diags.Error())
	}
	if diags := gohcl.DecodeBody(file.Body, nil, config); diags.HasErrors() {
		return nil, errors.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if config.Concurrency <= 0 {
		config.Concurrency = runtime.NumCPU()
	}
	return config, nil
}

// Validate reports every problem with the configuration at once.
func (c *Config) Validate() error {
	var errs error
	switch c.Variant {
	case VariantChopsticks:
	case VariantSubtractSquare:
		if c.StartValue < 0 {
			errs = multierror.Append(errs, errors.Errorf("start_value must not be negative, got %d", c.StartValue))
		}
	default:
		errs = multierror.Append(errs, errors.Errorf("unknown variant %q", c.Variant))
	}
	if _, err := game.ParsePlayer(c.FirstPlayer); err != nil {
		errs = multierror.Append(errs, errors.WithMessage(err, "first_player"))
	}

	interactive := false
	for _, s := range []string{c.P1Strategy, c.P2Strategy} {
		switch s {
		case StrategyRandom:
		case StrategyInteractive:
			interactive = true
		default:
			errs = multierror.Append(errs, errors.Errorf("unknown strategy %q", s))
		}
	}

	if c.Games < 1 {
		errs = multierror.Append(errs, errors.Errorf("games must be at least 1, got %d", c.Games))
	}
	if interactive && c.Games > 1 {
		errs = multierror.Append(errs, errors.New("interactive play is limited to a single game"))
	}
	if c.Concurrency < 1 {
		errs = multierror.Append(errs, errors.Errorf("concurrency must be at least 1, got %d", c.Concurrency))
	}
	if c.MaxMoves < 1 {
		errs = multierror.Append(errs, errors.Errorf("max_moves must be at least 1, got %d", c.MaxMoves))
	}
	if c.MaxInvalid < 1 {
		errs = multierror.Append(errs, errors.Errorf("max_invalid must be at least 1, got %d", c.MaxInvalid))
	}
	return errs
}

func (c *Config) IsValid() bool { return c.Validate() == nil }
