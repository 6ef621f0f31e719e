// Package statespace enumerates every position reachable from a starting
// position. It does not evaluate positions.
package statespace

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/twoturn/game"
)

// ErrTooLarge is returned by Explore when the limit is exceeded.
var ErrTooLarge = errors.New("state space too large")

// Node is one reachable position.
type Node struct {
	ID       int
	State    game.State
	Terminal bool // no legal moves
}

// Edge is a legal move from one position to another.
type Edge struct {
	From, To int
	Move     game.Move
}

// Graph of positions reachable from a start position, in breadth-first order.
// Node 0 is the start.
type Graph struct {
	nodes []Node
	edges []Edge
	index map[string]int
}

// Key identifies a position by the player to move and its textual form.
func Key(s game.State) string {
	return s.CurrentPlayer().String() + "|" + s.String()
}

// Explore walks every legal move breadth-first from start.
// It fails with ErrTooLarge once more than limit positions are found; limit <= 0 means no limit.
func Explore(start game.State, limit int) (*Graph, error) {
	g := &Graph{index: make(map[string]int)}
	g.add(start)

	for i := 0; i < len(g.nodes); i++ {
		from := g.nodes[i]
		for _, m := range from.State.PossibleMoves() {
			next, err := from.State.MakeMove(m)
			if err != nil {
				return nil, errors.WithMessagef(err, "exploring %s", Key(from.State))
			}
			to, ok := g.index[Key(next)]
			if !ok {
				if limit > 0 && len(g.nodes) >= limit {
					return nil, errors.Wrapf(ErrTooLarge, "more than %d positions", limit)
				}
				to = g.add(next)
			}
			g.edges = append(g.edges, Edge{From: from.ID, To: to, Move: m})
		}
	}
	return g, nil
}

func (g *Graph) add(s game.State) int {
	id := len(g.nodes)
	g.nodes = append(g.nodes, Node{ID: id, State: s, Terminal: len(s.PossibleMoves()) == 0})
	g.index[Key(s)] = id
	return id
}

func (g *Graph) Len() int { return len(g.nodes) }

func (g *Graph) Nodes() []Node { return g.nodes }

func (g *Graph) Edges() []Edge { return g.edges }

// Lookup finds the node for s.
func (g *Graph) Lookup(s game.State) (Node, bool) {
	id, ok := g.index[Key(s)]
	if !ok {
		return Node{}, false
	}
	return g.nodes[id], true
}

// Terminals returns the positions without legal moves.
func (g *Graph) Terminals() []Node {
	var retVal []Node
	for _, n := range g.nodes {
		if n.Terminal {
			retVal = append(retVal, n)
		}
	}
	return retVal
}

// WriteList writes one line per position, sorted by key: the key, the number
// of moves out of it, and "terminal" where it applies.
func (g *Graph) WriteList(w io.Writer) error {
	out := make(map[int]int, len(g.nodes))
	for _, e := range g.edges {
		out[e.From]++
	}

	keys := maps.Keys(g.index)
	slices.Sort(keys)
	for _, k := range keys {
		n := g.nodes[g.index[k]]
		line := fmt.Sprintf("%s\t%d", k, out[n.ID])
		if n.Terminal {
			line += "\tterminal"
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}
