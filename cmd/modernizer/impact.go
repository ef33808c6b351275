package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/vkbaba/code-modernizer/internal/graph"
)

// queryStore returns a store for one-shot graph queries: the graph
// persisted by a previous analyze run when one exists, otherwise a fresh
// in-memory analysis.
func queryStore(ctx context.Context, flags cliFlags) (graph.Store, error) {
	if store, err := openProjectStore(flags.ProjectRoot); err != nil {
		return nil, err
	} else if store != nil {
		return store, nil
	}

	edges, candidates, err := buildEdges(flags)
	if err != nil {
		return nil, err
	}

	store := graph.NewMemStore()
	if err := store.InitSchema(ctx); err != nil {
		return nil, err
	}
	if err := graph.PopulateStore(ctx, store, flags.ProjectRoot, candidates, edges); err != nil {
		return nil, err
	}
	return store, nil
}

func runImpact(flags cliFlags, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: modernizer impact <file> [<file>...]")
	}

	ctx := context.Background()
	store, err := queryStore(ctx, flags)
	if err != nil {
		return err
	}
	defer store.Close()

	impact, err := store.AssessImpact(ctx, args)
	if err != nil {
		return fmt.Errorf("assess impact: %w", err)
	}

	return printJSON(impact)
}

func runDeps(flags cliFlags, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: modernizer deps <file> [upstream|downstream] [depth]")
	}
	path := args[0]

	direction := graph.DirectionDownstream
	if len(args) > 1 && strings.EqualFold(args[1], "upstream") {
		direction = graph.DirectionUpstream
	}

	maxDepth := 5
	if len(args) > 2 {
		if _, err := fmt.Sscanf(args[2], "%d", &maxDepth); err != nil || maxDepth <= 0 {
			return fmt.Errorf("invalid depth: %s", args[2])
		}
	}

	ctx := context.Background()
	store, err := queryStore(ctx, flags)
	if err != nil {
		return err
	}
	defer store.Close()

	chains, err := store.GetDependencies(ctx, path, direction, maxDepth)
	if err != nil {
		return fmt.Errorf("get dependencies: %w", err)
	}

	return printJSON(chains)
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	_, err = os.Stdout.Write(append(out, '\n'))
	return err
}
