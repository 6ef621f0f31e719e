package game

import "github.com/pkg/errors"

var (
	// ErrInvalidMove is returned by State.MakeMove for a move outside PossibleMoves.
	ErrInvalidMove = errors.New("invalid move")

	ErrUnknownPlayer = errors.New("unknown player")
)
