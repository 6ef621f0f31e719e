package statespace

import (
	"fmt"
	"strconv"

	"github.com/awalterschulze/gographviz"
	"github.com/pkg/errors"
)

// DOT renders the graph in Graphviz DOT format. Terminal positions are drawn
// with a double border.
func (g *Graph) DOT(name string) (string, error) {
	graphName := strconv.Quote(name)
	dot := gographviz.NewGraph()
	if err := dot.SetName(graphName); err != nil {
		return "", errors.WithStack(err)
	}
	if err := dot.SetDir(true); err != nil {
		return "", errors.WithStack(err)
	}

	for _, n := range g.nodes {
		attrs := map[string]string{
			"label": strconv.Quote(Key(n.State)),
		}
		if n.Terminal {
			attrs["peripheries"] = "2"
		}
		if err := dot.AddNode(graphName, nodeName(n.ID), attrs); err != nil {
			return "", errors.WithStack(err)
		}
	}
	for _, e := range g.edges {
		attrs := map[string]string{"label": strconv.Quote(string(e.Move))}
		if err := dot.AddEdge(nodeName(e.From), nodeName(e.To), true, attrs); err != nil {
			return "", errors.WithStack(err)
		}
	}
	return dot.String(), nil
}

func nodeName(id int) string { return fmt.Sprintf("n%d", id) }
