package graph

import (
	"context"
	"io"
)

// Store is the interface for the dependency graph backend.
// Implementations: KuzuStore (persistent, cgo), MemStore (in-memory).
// Rendering and MCP access go through this interface, never the backends
// directly.
type Store interface {
	io.Closer

	// Schema setup, called once before any data is inserted.
	InitSchema(ctx context.Context) error

	// Write operations.
	AddFile(ctx context.Context, node FileNode) error
	AddEdge(ctx context.Context, edge Edge) error
	AddCluster(ctx context.Context, node ClusterNode) error

	// Read operations.
	GetFile(ctx context.Context, path string) (*FileNode, error)
	GetAllFiles(ctx context.Context) ([]FileNode, error)
	GetAllEdges(ctx context.Context) ([]Edge, error)
	GetClusters(ctx context.Context) ([]ClusterNode, error)

	// Graph traversal.
	GetDependencies(ctx context.Context, path string, direction Direction, maxDepth int) ([]DependencyChain, error)
	AssessImpact(ctx context.Context, changedFiles []string) (*ImpactResult, error)

	// Stats.
	Stats(ctx context.Context) (*GraphStats, error)
}
