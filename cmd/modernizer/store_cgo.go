//go:build cgo

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vkbaba/code-modernizer/internal/graph"
)

// newServerStore backs the MCP server with an in-memory KuzuDB graph.
func newServerStore() (graph.Store, error) {
	return graph.NewKuzuStore()
}

// persistAnalysis writes the analysis result to a file-based KuzuDB under
// the project root so later impact/deps runs can query it without
// re-analyzing. The old graph is removed first to avoid stale data.
func persistAnalysis(ctx context.Context, root string, candidates []string, edges []graph.Edge) error {
	persistPath := filepath.Join(root, ".modernizer", "graph")
	os.RemoveAll(persistPath)

	store, err := graph.NewKuzuFileStore(persistPath)
	if err != nil {
		return fmt.Errorf("open file store: %w", err)
	}
	defer store.Close()

	if err := store.InitSchema(ctx); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return graph.PopulateStore(ctx, store, root, candidates, edges)
}

// openProjectStore opens the persisted graph under root, or returns nil
// when no analysis has been persisted yet.
func openProjectStore(root string) (graph.Store, error) {
	persistPath := filepath.Join(root, ".modernizer", "graph")
	if _, err := os.Stat(persistPath); err != nil {
		return nil, nil
	}
	return graph.NewKuzuFileStore(persistPath)
}
