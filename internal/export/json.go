package export

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/vkbaba/code-modernizer/internal/graph"
)

// GraphExport is the top-level JSON export structure.
type GraphExport struct {
	GeneratedAt string       `json:"generatedAt"`
	Root        string       `json:"root"`
	Edges       []graph.Edge `json:"edges"`
	NodeCount   int          `json:"nodeCount"`
	EdgeCount   int          `json:"edgeCount"`
}

// JSON serializes the edge list with a small header for downstream tooling.
func JSON(edges []graph.Edge, root string) ([]byte, error) {
	deps := Adjacency(edges)
	export := GraphExport{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Root:        root,
		Edges:       edges,
		NodeCount:   len(allNodes(deps)),
		EdgeCount:   len(edges),
	}

	out, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal graph export: %w", err)
	}
	return append(out, '\n'), nil
}
