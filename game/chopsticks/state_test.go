package chopsticks

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twoturn/game"
)

func mustState(t *testing.T, p1Turn bool, p1l, p1r, p2l, p2r int) State {
	t.Helper()
	s, err := NewState(p1Turn, Hands{P1Left: p1l, P1Right: p1r, P2Left: p2l, P2Right: p2r})
	require.NoError(t, err)
	return s
}

func moveList(labels ...string) []game.Move {
	retVal := make([]game.Move, 0, len(labels))
	for _, l := range labels {
		retVal = append(retVal, game.Move(l))
	}
	return retVal
}

func TestCorrect(t *testing.T) {
	want := []int{0, 1, 2, 3, 4, 0, 1, 2, 3, 4}
	for n := 0; n <= 9; n++ {
		got := Correct(n)
		assert.Equal(t, want[n], got, "Correct(%d)", n)
		assert.GreaterOrEqual(t, got, 0)
		assert.LessOrEqual(t, got, MaxFingers)
	}
}

func TestNewStateRejectsOutOfRangeHands(t *testing.T) {
	for _, h := range []Hands{
		{P1Left: 5, P1Right: 1, P2Left: 1, P2Right: 1},
		{P1Left: 1, P1Right: -1, P2Left: 1, P2Right: 1},
		{P1Left: 1, P1Right: 1, P2Left: 9, P2Right: 1},
		{P1Left: 1, P1Right: 1, P2Left: 1, P2Right: 6},
	} {
		_, err := NewState(true, h)
		assert.Error(t, err, "%v", h)
	}
}

func TestPossibleMoves(t *testing.T) {
	tests := []struct {
		name   string
		state  State
		expect []game.Move
	}{
		{"opening p1", Initial(true), moveList("ll", "lr", "rl", "rr")},
		{"opening p2", Initial(false), moveList("ll", "lr", "rl", "rr")},
		{"p1 left hand dead", mustState(t, true, 0, 1, 2, 4), moveList("rl", "rr")},
		{"p2 only left hand alive", mustState(t, false, 0, 1, 2, 0), moveList("lr")},
		{"p1 eliminated, p2 to move", mustState(t, false, 0, 0, 2, 0), moveList()},
		{"p1 eliminated, p1 to move", mustState(t, true, 0, 0, 2, 0), moveList()},
		{"p2 eliminated", mustState(t, true, 3, 1, 0, 0), moveList()},
		{"target left dead", mustState(t, true, 1, 1, 0, 1), moveList("lr", "rr")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, tt.state.PossibleMoves())
		})
	}
}

func TestIsValidMoveMatchesPossibleMoves(t *testing.T) {
	tokens := moveList("ll", "lr", "rl", "rr", "", "l", "LL", " ll", "xx", "llr", "rl\n", "16")
	states := []State{
		Initial(true),
		Initial(false),
		mustState(t, true, 1, 1, 0, 1),
		mustState(t, false, 0, 1, 1, 0),
		mustState(t, true, 0, 1, 1, 0),
		mustState(t, true, 0, 0, 2, 0),
		mustState(t, false, 4, 3, 2, 1),
	}
	for _, s := range states {
		moves := s.PossibleMoves()
		for _, tok := range tokens {
			assert.Equal(t, game.ContainsMove(moves, tok), s.IsValidMove(tok), "%v %q", s, tok)
		}
	}

	assert.False(t, mustState(t, true, 1, 1, 0, 1).IsValidMove("ll"))
	assert.False(t, mustState(t, false, 0, 1, 1, 0).IsValidMove("rl"))
	assert.True(t, mustState(t, true, 0, 1, 1, 0).IsValidMove("rl"))
	assert.True(t, mustState(t, true, 0, 1, 0, 1).IsValidMove("rr"))
	assert.False(t, mustState(t, true, 0, 1, 0, 1).IsValidMove("ll"))
}

func TestMakeMove(t *testing.T) {
	tests := []struct {
		name   string
		from   State
		move   game.Move
		expect Hands
		p1Turn bool
		over   bool
		winner game.Player
	}{
		{
			name:   "p1 right strikes p2 left",
			from:   mustState(t, true, 0, 1, 1, 0),
			move:   "rl",
			expect: Hands{P1Left: 0, P1Right: 1, P2Left: 2, P2Right: 0},
			p1Turn: false,
		},
		{
			name:   "p2 left strikes p1 right",
			from:   mustState(t, false, 1, 2, 3, 1),
			move:   "lr",
			expect: Hands{P1Left: 1, P1Right: 0, P2Left: 3, P2Right: 1},
			p1Turn: true,
		},
		{
			name:   "sum above five wraps",
			from:   mustState(t, true, 3, 1, 4, 1),
			move:   "ll",
			expect: Hands{P1Left: 3, P1Right: 1, P2Left: 2, P2Right: 1},
			p1Turn: false,
		},
		{
			name:   "p1 eliminates p2",
			from:   mustState(t, true, 1, 4, 0, 1),
			move:   "rr",
			expect: Hands{P1Left: 1, P1Right: 4, P2Left: 0, P2Right: 0},
			p1Turn: false,
			over:   true,
			winner: game.P1,
		},
		{
			name:   "p2 eliminates p1",
			from:   mustState(t, false, 0, 2, 3, 0),
			move:   "lr",
			expect: Hands{P1Left: 0, P1Right: 0, P2Left: 3, P2Right: 0},
			p1Turn: true,
			over:   true,
			winner: game.P2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.from.Hands()
			next, err := tt.from.MakeMove(tt.move)
			require.NoError(t, err)

			cs, ok := next.(State)
			require.True(t, ok)
			assert.Equal(t, tt.expect, cs.Hands())
			assert.Equal(t, tt.p1Turn, cs.IsP1Turn())
			assert.NotEqual(t, tt.from.IsP1Turn(), cs.IsP1Turn(), "turn must alternate")
			assert.Equal(t, tt.over, cs.Over())
			assert.Equal(t, before, tt.from.Hands(), "source state must not change")

			winner, ok := cs.Winner()
			assert.Equal(t, tt.over, ok)
			assert.Equal(t, tt.winner, winner)
			if tt.over {
				assert.Empty(t, cs.PossibleMoves())
			}
		})
	}
}

func TestMakeMoveInvalid(t *testing.T) {
	s := mustState(t, true, 1, 1, 0, 1)
	for _, m := range moveList("ll", "rl", "", "x", "RR") {
		next, err := s.MakeMove(m)
		assert.Nil(t, next)
		require.Error(t, err)
		assert.True(t, errors.Is(err, game.ErrInvalidMove), "%v", err)
		assert.Equal(t, game.ErrInvalidMove, errors.Cause(err))
	}

	_, err := mustState(t, true, 0, 0, 2, 0).MakeMove("rl")
	assert.ErrorIs(t, err, game.ErrInvalidMove)
}

func TestStateStringAndEquality(t *testing.T) {
	assert.Equal(t, "Player 1: 1-1; Player 2: 1-1", Initial(true).String())
	assert.Equal(t, "Player 1: 3-0; Player 2: 0-3", mustState(t, true, 3, 0, 0, 3).String())
	assert.Equal(t, "Player 1: 0-4; Player 2: 1-0", mustState(t, false, 0, 4, 1, 0).String())

	assert.True(t, game.Equal(Initial(true), mustState(t, true, 1, 1, 1, 1)))
	assert.False(t, game.Equal(Initial(true), mustState(t, true, 1, 2, 1, 1)))
}

func TestNeverBothPlayersEliminated(t *testing.T) {
	var walk func(s State)
	seen := map[State]bool{}
	walk = func(s State) {
		if seen[s] {
			return
		}
		seen[s] = true
		h := s.Hands()
		require.False(t, h.Dead(game.P1) && h.Dead(game.P2), "both players eliminated in %v", s)
		for _, m := range s.PossibleMoves() {
			next, err := s.MakeMove(m)
			require.NoError(t, err)
			walk(next.(State))
		}
	}
	walk(Initial(true))
	walk(Initial(false))
	assert.NotEmpty(t, seen)
}
