package main

import (
	"fmt"
	"os"

	"github.com/vkbaba/code-modernizer/internal/export"
)

func runDiagram(flags cliFlags) error {
	edges, _, err := buildEdges(flags)
	if err != nil {
		return err
	}

	switch flags.Format {
	case "mermaid":
		fmt.Print(export.Mermaid(edges, flags.ProjectRoot, flags.ShowPath))
	case "plantuml":
		fmt.Print(export.PlantUML(edges, flags.ShowPath))
	case "ascii":
		fmt.Print(export.ASCIITree(edges, flags.ShowPath))
	case "dot":
		return export.DOT(edges, os.Stdout, flags.ShowPath)
	case "html":
		page, err := export.HTML(edges, flags.ShowPath)
		if err != nil {
			return err
		}
		fmt.Print(page)
	default:
		return fmt.Errorf("unknown format: %s (want mermaid, plantuml, ascii, dot, or html)", flags.Format)
	}
	return nil
}
