package graph

import (
	"context"
	"strings"
)

// ComputeClusters finds connected components in the file dependency graph
// and stores them as ClusterNodes. A cluster is a group of pages, scripts,
// and stylesheets that reference each other and therefore have to be
// modernized together.
//
// Algorithm:
//  1. Build an undirected adjacency list from DEPENDS_ON edges among the given files.
//  2. Find connected components via BFS.
//  3. For each component with >= 2 files, compute a cohesion score and store the cluster.
func ComputeClusters(ctx context.Context, store Store, files []FileNode) ([]ClusterNode, error) {
	filePaths := make(map[string]bool, len(files))
	for _, f := range files {
		filePaths[f.Path] = true
	}

	adj := buildAdjacency(ctx, store, files)

	// BFS to find connected components.
	visited := make(map[string]bool, len(files))
	var clusters []ClusterNode

	for _, f := range files {
		if visited[f.Path] {
			continue
		}
		component := bfsComponent(f.Path, adj, visited)
		if len(component) < 2 {
			continue
		}
		cohesion := computeCohesion(component, adj, filePaths)
		name := longestCommonPrefix(component)
		if name == "" {
			name = component[0]
		}
		cluster := ClusterNode{
			Name:          name,
			CohesionScore: cohesion,
			Members:       component,
		}
		if err := store.AddCluster(ctx, cluster); err != nil {
			return nil, err
		}
		clusters = append(clusters, cluster)
	}

	return clusters, nil
}

// buildAdjacency constructs a bidirectional adjacency list from DEPENDS_ON
// edges using a single pass over all edges.
func buildAdjacency(ctx context.Context, store Store, files []FileNode) map[string]map[string]bool {
	adj := make(map[string]map[string]bool, len(files))
	for _, f := range files {
		adj[f.Path] = make(map[string]bool)
	}

	edges, err := store.GetAllEdges(ctx)
	if err != nil {
		return adj
	}
	for _, e := range edges {
		// Only include edges between known files; unresolved targets
		// (missing files, pseudo-paths from use statements) stay out.
		if adj[e.Source] != nil && adj[e.Target] != nil {
			adj[e.Source][e.Target] = true
			adj[e.Target][e.Source] = true
		}
	}

	return adj
}

// bfsComponent performs BFS from start on the adjacency list and returns
// all reachable nodes. It marks visited nodes as it goes.
func bfsComponent(start string, adj map[string]map[string]bool, visited map[string]bool) []string {
	var component []string
	queue := []string{start}
	visited[start] = true

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		component = append(component, node)
		for neighbor := range adj[node] {
			if !visited[neighbor] {
				visited[neighbor] = true
				queue = append(queue, neighbor)
			}
		}
	}

	return component
}

// computeCohesion calculates internal_edges / (internal_edges + external_edges)
// for a connected component. Internal edges connect two members; external edges
// connect a member to a non-member.
func computeCohesion(component []string, adj map[string]map[string]bool, allFiles map[string]bool) float64 {
	memberSet := make(map[string]bool, len(component))
	for _, m := range component {
		memberSet[m] = true
	}

	internalEdges := 0
	externalEdges := 0

	for _, m := range component {
		for neighbor := range adj[m] {
			if memberSet[neighbor] {
				// Count each internal edge once (when m < neighbor alphabetically).
				if m < neighbor {
					internalEdges++
				}
			} else if allFiles[neighbor] {
				externalEdges++
			}
		}
	}

	total := internalEdges + externalEdges
	if total == 0 {
		return 0
	}
	return float64(internalEdges) / float64(total)
}

// longestCommonPrefix finds the longest common path prefix among a set of
// file paths. Returns an empty string if no common prefix is found.
func longestCommonPrefix(paths []string) string {
	if len(paths) == 0 {
		return ""
	}
	if len(paths) == 1 {
		return paths[0]
	}

	prefix := paths[0]
	for _, p := range paths[1:] {
		for !strings.HasPrefix(p, prefix) {
			// Trim to the last path separator (excluding any trailing slash).
			trimmed := strings.TrimRight(prefix, "/")
			idx := strings.LastIndex(trimmed, "/")
			if idx < 0 {
				return ""
			}
			prefix = trimmed[:idx+1] // keep the trailing slash
			if prefix == "/" || prefix == "" {
				return prefix
			}
		}
	}

	// Ensure prefix ends at a directory boundary.
	if !strings.HasSuffix(prefix, "/") {
		idx := strings.LastIndex(prefix, "/")
		if idx >= 0 {
			prefix = prefix[:idx+1]
		}
	}

	return prefix
}
