package game

import (
	"strings"

	"github.com/pkg/errors"
)

// Player is one of the two seats in a game.
type Player int

const (
	P1 Player = iota + 1
	P2
)

// PlayerFor returns P1 if isP1Turn, P2 otherwise.
func PlayerFor(isP1Turn bool) Player {
	if isP1Turn {
		return P1
	}
	return P2
}

// Other returns the opponent of p.
func (p Player) Other() Player {
	if p == P1 {
		return P2
	}
	return P1
}

func (p Player) String() string {
	switch p {
	case P1:
		return "p1"
	case P2:
		return "p2"
	}
	return "unknown"
}

// ParsePlayer accepts "p1" or "p2", ignoring case and surrounding whitespace.
func ParsePlayer(label string) (Player, error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "p1":
		return P1, nil
	case "p2":
		return P2, nil
	}
	return 0, errors.Wrapf(ErrUnknownPlayer, "%q", label)
}
