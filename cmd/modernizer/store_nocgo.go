//go:build !cgo

package main

import (
	"context"

	"github.com/vkbaba/code-modernizer/internal/graph"
)

// newServerStore falls back to the pure-Go store when KuzuDB (cgo) is unavailable.
func newServerStore() (graph.Store, error) {
	return graph.NewMemStore(), nil
}

// persistAnalysis is a no-op without KuzuDB; queries re-analyze instead.
func persistAnalysis(context.Context, string, []string, []graph.Edge) error {
	return nil
}

// openProjectStore reports no persisted graph; callers fall back to a
// fresh in-memory analysis.
func openProjectStore(string) (graph.Store, error) {
	return nil, nil
}
