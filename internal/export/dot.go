package export

import (
	"errors"
	"fmt"
	"io"

	graphlib "github.com/dominikbraun/graph"
	"github.com/dominikbraun/graph/draw"

	"github.com/vkbaba/code-modernizer/internal/graph"
)

// DOT writes a Graphviz representation of the edge list to w, for piping
// into dot/neato.
func DOT(edges []graph.Edge, w io.Writer, showPath bool) error {
	g := graphlib.New(graphlib.StringHash, graphlib.Directed())

	deps := Adjacency(edges)
	for _, node := range allNodes(deps) {
		err := g.AddVertex(node, graphlib.VertexAttribute("label", formatNode(node, showPath)))
		if err != nil && !errors.Is(err, graphlib.ErrVertexAlreadyExists) {
			return fmt.Errorf("add vertex %s: %w", node, err)
		}
	}

	for _, src := range sortedKeys(keySet(deps)) {
		for _, target := range sortedKeys(deps[src]) {
			err := g.AddEdge(src, target)
			if err != nil && !errors.Is(err, graphlib.ErrEdgeAlreadyExists) {
				return fmt.Errorf("add edge %s -> %s: %w", src, target, err)
			}
		}
	}

	return draw.DOT(g, w)
}
