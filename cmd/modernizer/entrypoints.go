package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/vkbaba/code-modernizer/internal/graph"
	"github.com/vkbaba/code-modernizer/internal/scan"
)

func runEntryPoints(flags cliFlags) error {
	scanner := scan.NewScanner(flags.ProjectRoot)
	scanner.ExcludeDirs = splitList(flags.ExcludeDirs)

	files, err := scanner.Scan()
	if err != nil {
		return err
	}

	for _, e := range scan.EntryPoints(files) {
		fmt.Println(graph.DisplayPath(flags.ProjectRoot, e))
	}
	return nil
}

func runEndpoints(flags cliFlags) error {
	scanner := scan.NewScanner(flags.ProjectRoot)
	scanner.ExcludeDirs = splitList(flags.ExcludeDirs)

	files, err := scanner.Scan()
	if err != nil {
		return err
	}

	endpoints, err := scan.Endpoints(context.Background(), files)
	if err != nil {
		return err
	}

	paths := make([]string, 0, len(endpoints))
	for path := range endpoints {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		fmt.Printf("%s\n", graph.DisplayPath(flags.ProjectRoot, path))
		for _, fn := range endpoints[path] {
			fmt.Printf("  %s\n", fn)
		}
	}
	return nil
}
