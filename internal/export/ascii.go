package export

import (
	"strings"

	"github.com/vkbaba/code-modernizer/internal/graph"
)

// ASCIITree renders the dependency graph as an indented tree, one branch
// per root node (nodes with no incoming edge). A node already present on
// the current branch is printed with a circular-reference marker instead of
// being descended into, so cyclic graphs render finitely.
func ASCIITree(edges []graph.Edge, showPath bool) string {
	deps := Adjacency(edges)

	var sb strings.Builder
	visited := make(map[string]bool)
	roots := rootNodes(deps)
	if len(roots) == 0 {
		// Fully cyclic graph: fall back to every source node so the
		// cycle is still shown once.
		roots = sortedKeys(keySet(deps))
	}
	for _, root := range roots {
		writeTree(&sb, deps, root, "", true, visited, showPath)
	}
	return sb.String()
}

func writeTree(sb *strings.Builder, deps map[string]map[string]bool, node, prefix string, isLast bool, visited map[string]bool, showPath bool) {
	connector := "├── "
	if isLast {
		connector = "└── "
	}

	if visited[node] {
		sb.WriteString(prefix + connector + formatNode(node, showPath) + " (circular reference)\n")
		return
	}

	visited[node] = true
	sb.WriteString(prefix + connector + formatNode(node, showPath) + "\n")

	children := sortedKeys(deps[node])
	for i, child := range children {
		extension := "│   "
		if isLast {
			extension = "    "
		}
		writeTree(sb, deps, child, prefix+extension, i == len(children)-1, visited, showPath)
	}

	// Unmark on the way out: only revisits within one branch are circular.
	delete(visited, node)
}
