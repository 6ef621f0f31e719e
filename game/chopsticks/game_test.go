package chopsticks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twoturn/game"
)

func TestGameNormalizeMove(t *testing.T) {
	g := NewGame(true)
	assert.Equal(t, game.Move("ll"), g.NormalizeMove("     ll"))
	assert.Equal(t, game.Move("rr"), g.NormalizeMove("rr     "))
	assert.Equal(t, game.Move("rl"), g.NormalizeMove("RL"))
	assert.Equal(t, game.Move("lr"), g.NormalizeMove("\tLr\n"))
}

func TestGameOpening(t *testing.T) {
	g := NewGame(true)
	assert.Equal(t, Name, g.Name())
	assert.Contains(t, g.Instructions(), "How to play Chopsticks")
	assert.Equal(t, "Current Game: Chopsticks, Current Value: [1, 1, 1, 1]", g.String())
	assert.False(t, g.IsOver(g.State()))
	assert.False(t, g.IsWinner("p1"))
	assert.False(t, NewGame(false).IsWinner("P2   "))
	assert.Equal(t, game.P2, NewGame(false).State().CurrentPlayer())
}

func TestGamePlayToElimination(t *testing.T) {
	g := NewGame(true)
	for _, m := range moveList("ll", "ll", "ll", "rr", "rr") {
		require.False(t, g.IsOver(g.State()))
		require.NoError(t, g.Apply(m), "move %s in %v", m, g.State())
	}
	assert.Equal(t, Hands{P1Left: 3, P1Right: 2, P2Left: 0, P2Right: 3}, g.State().(State).Hands())
	assert.Equal(t, game.P2, g.State().CurrentPlayer())

	require.NoError(t, g.Apply(g.NormalizeMove(" RR ")))
	assert.Equal(t, Hands{P1Left: 3, P1Right: 0, P2Left: 0, P2Right: 3}, g.State().(State).Hands())

	for _, m := range moveList("lr", "rl", "lr") {
		require.False(t, g.IsOver(g.State()))
		require.NoError(t, g.Apply(m), "move %s in %v", m, g.State())
	}
	assert.Equal(t, Hands{P1Left: 4, P1Right: 0, P2Left: 0, P2Right: 0}, g.State().(State).Hands())
	assert.True(t, g.IsOver(g.State()))
	assert.Equal(t, game.P2, g.State().CurrentPlayer())
	assert.True(t, g.IsWinner("p1"))
	assert.True(t, g.IsWinner("  P1 "))
	assert.False(t, g.IsWinner("p2"))
	assert.False(t, g.IsWinner("player one"))
}

func TestGameApplyInvalidKeepsState(t *testing.T) {
	s := mustState(t, true, 1, 1, 0, 1)
	g := NewGameFrom(s)
	err := g.Apply("ll")
	assert.ErrorIs(t, err, game.ErrInvalidMove)
	assert.True(t, game.Equal(s, g.State()))
	assert.True(t, g.State().IsP1Turn())
}

func TestGameWinnerInTerminalPosition(t *testing.T) {
	g := NewGameFrom(mustState(t, false, 0, 0, 2, 0))
	assert.True(t, g.IsOver(g.State()))
	assert.True(t, g.IsWinner("p2"))
	assert.False(t, g.IsWinner("p1"))

	g = NewGameFrom(mustState(t, true, 0, 0, 2, 0))
	assert.True(t, g.IsWinner("P2"))
}
