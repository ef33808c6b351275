package graph

import (
	"context"
	"sync"
)

// Compile-time assertion: *MemStore satisfies Store.
var _ Store = (*MemStore)(nil)

// MemStore implements Store using Go maps. Thread-safe via sync.RWMutex.
type MemStore struct {
	mu       sync.RWMutex
	files    map[string]FileNode
	edges    []Edge
	clusters []ClusterNode
}

// NewMemStore returns an initialized MemStore ready for use.
func NewMemStore() *MemStore {
	return &MemStore{
		files: make(map[string]FileNode),
	}
}

// InitSchema is a no-op for the in-memory store.
func (m *MemStore) InitSchema(_ context.Context) error {
	return nil
}

// AddFile stores a file node keyed by its path.
func (m *MemStore) AddFile(_ context.Context, node FileNode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[node.Path] = node
	return nil
}

// AddEdge appends an edge to the internal slice.
func (m *MemStore) AddEdge(_ context.Context, edge Edge) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.edges = append(m.edges, edge)
	return nil
}

// AddCluster appends a cluster to the internal slice.
func (m *MemStore) AddCluster(_ context.Context, node ClusterNode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clusters = append(m.clusters, node)
	return nil
}

// GetFile returns the file node for the given path, or nil if not found.
func (m *MemStore) GetFile(_ context.Context, path string) (*FileNode, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	f, ok := m.files[path]
	if !ok {
		return nil, nil
	}
	return &f, nil
}

// GetAllFiles returns every stored file node.
func (m *MemStore) GetAllFiles(_ context.Context) ([]FileNode, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]FileNode, 0, len(m.files))
	for _, f := range m.files {
		out = append(out, f)
	}
	return out, nil
}

// GetAllEdges returns a copy of all edges in the store, in insertion order.
func (m *MemStore) GetAllEdges(_ context.Context) ([]Edge, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Edge, len(m.edges))
	copy(out, m.edges)
	return out, nil
}

// GetClusters returns all stored clusters.
func (m *MemStore) GetClusters(_ context.Context) ([]ClusterNode, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]ClusterNode, len(m.clusters))
	copy(out, m.clusters)
	return out, nil
}

// GetDependencies performs a BFS over edges from path in the given
// direction, up to maxDepth hops. It returns one DependencyChain per
// reachable file.
func (m *MemStore) GetDependencies(_ context.Context, path string, direction Direction, maxDepth int) ([]DependencyChain, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if maxDepth <= 0 {
		return nil, nil
	}

	// BFS state: each entry tracks the path from the origin to the
	// current file.
	type bfsEntry struct {
		id   string
		path []string
	}

	visited := map[string]bool{path: true}
	queue := []bfsEntry{{id: path, path: []string{path}}}
	var chains []DependencyChain

	for depth := 0; depth < maxDepth && len(queue) > 0; depth++ {
		var nextQueue []bfsEntry
		for _, entry := range queue {
			for _, nb := range m.neighbors(entry.id, direction) {
				if visited[nb] {
					continue
				}
				visited[nb] = true
				newPath := make([]string, len(entry.path), len(entry.path)+1)
				copy(newPath, entry.path)
				newPath = append(newPath, nb)
				chains = append(chains, DependencyChain{
					Nodes: newPath,
					Depth: len(newPath) - 1,
				})
				nextQueue = append(nextQueue, bfsEntry{id: nb, path: newPath})
			}
		}
		queue = nextQueue
	}

	return chains, nil
}

// neighbors returns files reachable from path in one hop along the given
// direction.
func (m *MemStore) neighbors(path string, direction Direction) []string {
	var result []string
	for _, e := range m.edges {
		switch direction {
		case DirectionUpstream:
			// upstream: what does path reference?
			if e.Source == path {
				result = append(result, e.Target)
			}
		case DirectionDownstream:
			// downstream: what references path?
			if e.Target == path {
				result = append(result, e.Source)
			}
		}
	}
	return result
}

// AssessImpact computes the blast radius of changing the given files: every
// file that directly or transitively references one of them.
func (m *MemStore) AssessImpact(_ context.Context, changedFiles []string) (*ImpactResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	changedSet := make(map[string]bool, len(changedFiles))
	for _, f := range changedFiles {
		changedSet[f] = true
	}

	// DirectlyAffected: files with an edge into a changed file.
	directSet := make(map[string]bool)
	for _, e := range m.edges {
		if changedSet[e.Target] && !changedSet[e.Source] {
			directSet[e.Source] = true
		}
	}
	directlyAffected := setToSlice(directSet)

	// TransitivelyAffected: expand from directly affected files until no
	// new files appear.
	allAffected := make(map[string]bool, len(directSet))
	frontier := make(map[string]bool, len(directSet))
	for k := range directSet {
		allAffected[k] = true
		frontier[k] = true
	}

	for len(frontier) > 0 {
		nextFrontier := make(map[string]bool)
		for _, e := range m.edges {
			if frontier[e.Target] && !changedSet[e.Source] && !allAffected[e.Source] {
				allAffected[e.Source] = true
				nextFrontier[e.Source] = true
			}
		}
		frontier = nextFrontier
	}

	transitivelyAffected := setToSlice(allAffected)

	var riskScore float64
	if len(m.files) > 0 {
		riskScore = float64(len(transitivelyAffected)) / float64(len(m.files))
	}

	return &ImpactResult{
		DirectlyAffected:     directlyAffected,
		TransitivelyAffected: transitivelyAffected,
		RiskScore:            riskScore,
	}, nil
}

// Stats returns counts of files, edges, and clusters in the graph.
func (m *MemStore) Stats(_ context.Context) (*GraphStats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return &GraphStats{
		FileCount:    len(m.files),
		EdgeCount:    len(m.edges),
		ClusterCount: len(m.clusters),
	}, nil
}

// Close is a no-op for the in-memory store.
func (m *MemStore) Close() error {
	return nil
}

// setToSlice converts a string bool map to a slice.
func setToSlice(s map[string]bool) []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	return out
}
