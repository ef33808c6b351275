// Package export renders a dependency edge list in textual and interactive
// formats: Mermaid, PlantUML, ASCII tree, DOT, a vis-network HTML page, and
// JSON. Every renderer works off the adjacency mapping derived here and
// tolerates cycles, multiple roots, and duplicate edges.
package export

import (
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/vkbaba/code-modernizer/internal/graph"
)

// Adjacency converts an edge list into a source -> target-set mapping,
// discarding edge order and root metadata. Duplicate edges collapse.
func Adjacency(edges []graph.Edge) map[string]map[string]bool {
	deps := make(map[string]map[string]bool)
	for _, e := range edges {
		if deps[e.Source] == nil {
			deps[e.Source] = make(map[string]bool)
		}
		deps[e.Source][e.Target] = true
	}
	return deps
}

// allNodes returns every node mentioned in the adjacency, as a sorted slice.
func allNodes(deps map[string]map[string]bool) []string {
	set := make(map[string]bool, len(deps))
	for src, targets := range deps {
		set[src] = true
		for t := range targets {
			set[t] = true
		}
	}
	return sortedKeys(set)
}

// rootNodes returns the nodes with no incoming edge, sorted. In a fully
// cyclic graph there are none.
func rootNodes(deps map[string]map[string]bool) []string {
	referenced := make(map[string]bool)
	for _, targets := range deps {
		for t := range targets {
			referenced[t] = true
		}
	}
	var roots []string
	for _, n := range allNodes(deps) {
		if !referenced[n] {
			roots = append(roots, n)
		}
	}
	return roots
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// formatNode renders a node label: the full path or just the file name.
func formatNode(node string, showPath bool) string {
	if showPath {
		return node
	}
	return filepath.Base(node)
}

var nonAlnum = regexp.MustCompile(`[^a-zA-Z0-9]`)

// nodeID produces a diagram-safe identifier for a file path, relative to
// the project root with every non-alphanumeric rune replaced.
func nodeID(path, root string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	return nonAlnum.ReplaceAllString(rel, "_")
}

// extOf returns the lowercased extension of a path, with dot.
func extOf(path string) string {
	return strings.ToLower(filepath.Ext(path))
}
