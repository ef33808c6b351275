package scan

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

// functionPattern matches PHP function declarations. Function names double
// as the endpoint inventory of a page-per-script project.
var functionPattern = regexp.MustCompile(`function\s+(\w+)\s*\(`)

// endpointReaders caps concurrent file reads during an endpoint scan.
const endpointReaders = 8

// Endpoints scans the given server-script files for function declarations
// and returns a map of file path to declared function names. Files are read
// concurrently; unreadable files are logged and skipped, never fatal.
func Endpoints(ctx context.Context, files []string) (map[string][]string, error) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(endpointReaders)

	var mu sync.Mutex
	endpoints := make(map[string][]string)

	for _, f := range files {
		if strings.ToLower(filepath.Ext(f)) != ".php" {
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			content, err := os.ReadFile(f)
			if err != nil {
				log.Printf("error reading file %s: %v", f, err)
				return nil
			}
			var names []string
			for _, m := range functionPattern.FindAllStringSubmatch(string(content), -1) {
				names = append(names, m[1])
			}
			if len(names) == 0 {
				return nil
			}
			mu.Lock()
			endpoints[f] = names
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return endpoints, nil
}
