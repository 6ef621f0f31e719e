package twoturn

import (
	"time"

	"github.com/google/uuid"

	"github.com/twoturn/game"
)

const (
	VariantChopsticks     = "chopsticks"
	VariantSubtractSquare = "subtract-square"

	StrategyRandom      = "random"
	StrategyInteractive = "interactive"
)

// Config for a series of games.
// It can be loaded from an HCL file with LoadConfig.
type Config struct {
	Name        string `json:"name" hcl:"name,optional"`
	Variant     string `json:"variant" hcl:"variant,optional"`         // chopsticks or subtract-square
	StartValue  int    `json:"start_value" hcl:"start_value,optional"` // subtract-square only
	FirstPlayer string `json:"first_player" hcl:"first_player,optional"`
	P1Strategy  string `json:"p1_strategy" hcl:"p1_strategy,optional"`
	P2Strategy  string `json:"p2_strategy" hcl:"p2_strategy,optional"`

	Games       int   `json:"games" hcl:"games,optional"`
	Seed        int64 `json:"seed" hcl:"seed,optional"` // 0 picks a time-based seed
	Concurrency int   `json:"concurrency" hcl:"concurrency,optional"`

	// a game still running after MaxMoves moves is called a draw
	MaxMoves int `json:"max_moves" hcl:"max_moves,optional"`
	// how many illegal answers a strategy may give in a row before the game fails
	MaxInvalid int `json:"max_invalid" hcl:"max_invalid,optional"`
}

// Result is the outcome of one game.
type Result struct {
	MatchID uuid.UUID
	Variant string
	Winner  game.Player // zero on a draw
	Draw    bool
	Moves   int
	History []game.Move
	Elapsed time.Duration
}

// Summary aggregates the results of a series.
type Summary struct {
	Games       int
	P1Wins      int
	P2Wins      int
	Draws       int
	P1WinRate   float64
	MeanMoves   float64
	StdDevMoves float64
	Elapsed     time.Duration // sum over all games
}

// Observer is told about every move an Arena applies.
type Observer func(mover game.Player, m game.Move, after game.State)
