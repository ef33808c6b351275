package export

import (
	"fmt"
	"strings"

	"github.com/vkbaba/code-modernizer/internal/graph"
)

// Mermaid produces a Mermaid graph TD diagram from the edge list. With
// showPath false (the usual mode) node labels are bare file names;
// otherwise full paths. Each edge is followed by the label definitions of
// its endpoints so the diagram is self-contained.
func Mermaid(edges []graph.Edge, root string, showPath bool) string {
	deps := Adjacency(edges)

	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, src := range sortedKeys(keySet(deps)) {
		srcID := nodeID(src, root)
		srcLabel := formatNode(src, showPath)
		for _, target := range sortedKeys(deps[src]) {
			tgtID := nodeID(target, root)
			sb.WriteString(fmt.Sprintf("%s --> %s\n", srcID, tgtID))
			sb.WriteString(fmt.Sprintf("%s[%s]\n", srcID, srcLabel))
			sb.WriteString(fmt.Sprintf("%s[%s]\n", tgtID, formatNode(target, showPath)))
		}
	}

	return sb.String()
}

// keySet lifts map keys into a set for sortedKeys.
func keySet(deps map[string]map[string]bool) map[string]bool {
	out := make(map[string]bool, len(deps))
	for k := range deps {
		out[k] = true
	}
	return out
}
