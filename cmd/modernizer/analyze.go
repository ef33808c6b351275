package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vkbaba/code-modernizer/internal/export"
	"github.com/vkbaba/code-modernizer/internal/graph"
	"github.com/vkbaba/code-modernizer/internal/scan"
)

// buildEdges runs the scan and dependency resolution pipeline for the
// project named by the flags and returns the resulting edge list.
func buildEdges(flags cliFlags) ([]graph.Edge, []string, error) {
	scanner := scan.NewScanner(flags.ProjectRoot)
	scanner.ExcludeDirs = splitList(flags.ExcludeDirs)
	if cfg := flags.cfg; cfg != nil {
		if cfg.ExcludeLibraries != nil {
			scanner.ExcludeLibraries = *cfg.ExcludeLibraries
		}
		if cfg.ExcludeMinimized != nil {
			scanner.ExcludeMinimized = *cfg.ExcludeMinimized
		}
		if cfg.MaxFileSize > 0 {
			scanner.MaxFileSize = cfg.MaxFileSize
		}
	}

	var (
		candidates []string
		err        error
	)
	if names := splitList(flags.Files); len(names) > 0 {
		candidates, err = scanner.Find(names)
	} else {
		candidates, err = scanner.Scan()
	}
	if err != nil {
		return nil, nil, err
	}

	analyzer := graph.NewAnalyzer(flags.ProjectRoot, candidates, analyzerOptions(flags))
	return analyzer.AnalyzeDependencies(), candidates, nil
}

func runAnalyze(flags cliFlags) error {
	edges, candidates, err := buildEdges(flags)
	if err != nil {
		return err
	}

	fmt.Printf("analyzed %d files, found %d dependencies\n\n", len(candidates), len(edges))
	for _, e := range edges {
		fmt.Printf("  %s -> %s\n", e.Source, e.Target)
	}

	if err := persistAnalysis(context.Background(), flags.ProjectRoot, candidates, edges); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to persist graph: %v\n", err)
	}

	if flags.OutputDir == "" {
		return nil
	}
	if err := os.MkdirAll(flags.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	return writeDiagrams(flags, edges)
}

// writeDiagrams renders the edge list in every supported format and writes
// one file per format into the output directory.
func writeDiagrams(flags cliFlags, edges []graph.Edge) error {
	page, err := export.HTML(edges, flags.ShowPath)
	if err != nil {
		return fmt.Errorf("render html: %w", err)
	}

	outputs := map[string]string{
		"dependencies.mmd":  export.Mermaid(edges, flags.ProjectRoot, flags.ShowPath),
		"dependencies.puml": export.PlantUML(edges, flags.ShowPath),
		"dependencies.txt":  export.ASCIITree(edges, flags.ShowPath),
		"dependencies.html": page,
	}

	for name, content := range outputs {
		path := filepath.Join(flags.OutputDir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
	}

	dotPath := filepath.Join(flags.OutputDir, "dependencies.dot")
	f, err := os.Create(dotPath)
	if err != nil {
		return fmt.Errorf("write dependencies.dot: %w", err)
	}
	defer f.Close()
	if err := export.DOT(edges, f, flags.ShowPath); err != nil {
		return fmt.Errorf("render dot: %w", err)
	}

	jsonPath := filepath.Join(flags.OutputDir, "dependencies.json")
	data, err := export.JSON(edges, flags.ProjectRoot)
	if err != nil {
		return fmt.Errorf("render json: %w", err)
	}
	if err := os.WriteFile(jsonPath, data, 0o644); err != nil {
		return fmt.Errorf("write dependencies.json: %w", err)
	}

	fmt.Printf("\nwrote diagrams to %s\n", flags.OutputDir)
	return nil
}
