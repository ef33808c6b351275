package main

import (
	"fmt"
	"os"

	"github.com/vkbaba/code-modernizer/internal/export"
)

func runExport(flags cliFlags) error {
	edges, _, err := buildEdges(flags)
	if err != nil {
		return err
	}

	data, err := export.JSON(edges, flags.ProjectRoot)
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}

	_, err = os.Stdout.Write(data)
	return err
}
