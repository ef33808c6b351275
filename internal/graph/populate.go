package graph

import (
	"context"
	"fmt"
	"os"
)

// PopulateStore loads an analysis result into a store: one File node per
// candidate, placeholder File nodes for edge endpoints that are not
// candidates (missing files, pseudo-paths), then every edge. Placeholder
// nodes keep unresolved targets queryable and let relationship inserts find
// both endpoints.
func PopulateStore(ctx context.Context, store Store, root string, candidates []string, edges []Edge) error {
	known := make(map[string]bool, len(candidates))

	for _, f := range candidates {
		display := DisplayPath(root, f)
		if known[display] {
			continue
		}
		known[display] = true

		var size int64
		if info, err := os.Stat(f); err == nil {
			size = info.Size()
		}
		node := FileNode{Path: display, Category: CategoryFor(f), Size: size}
		if err := store.AddFile(ctx, node); err != nil {
			return fmt.Errorf("add file %s: %w", display, err)
		}
	}

	for _, e := range edges {
		for _, p := range []string{e.Source, e.Target} {
			if known[p] {
				continue
			}
			known[p] = true
			if err := store.AddFile(ctx, FileNode{Path: p, Category: CategoryFor(p)}); err != nil {
				return fmt.Errorf("add file %s: %w", p, err)
			}
		}
		if err := store.AddEdge(ctx, e); err != nil {
			return fmt.Errorf("add edge %s -> %s: %w", e.Source, e.Target, err)
		}
	}

	return nil
}
