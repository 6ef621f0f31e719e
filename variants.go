package twoturn

import (
	"github.com/pkg/errors"

	"github.com/twoturn/game"
	"github.com/twoturn/game/chopsticks"
	"github.com/twoturn/game/subsquare"
	"github.com/twoturn/strategy"
)

// NewVariant builds a fresh game as described by conf.
func NewVariant(conf Config) (game.Variant, error) {
	first, err := game.ParsePlayer(conf.FirstPlayer)
	if err != nil {
		return nil, errors.WithMessage(err, "first player")
	}
	p1Turn := first == game.P1

	switch conf.Variant {
	case VariantChopsticks:
		return chopsticks.NewGame(p1Turn), nil
	case VariantSubtractSquare:
		return subsquare.NewGame(p1Turn, conf.StartValue)
	}
	return nil, errors.Errorf("unknown variant %q", conf.Variant)
}

// NewStrategy builds the named strategy. rng feeds random strategies; human
// feeds interactive ones and may be nil if none is needed.
func NewStrategy(name string, rng strategy.Sampler, human *strategy.Interactive) (strategy.Strategy, error) {
	switch name {
	case StrategyRandom:
		return strategy.NewRandom(rng), nil
	case StrategyInteractive:
		if human == nil {
			return nil, errors.New("interactive strategy needs an input source")
		}
		return human, nil
	}
	return nil, errors.Errorf("unknown strategy %q", name)
}
