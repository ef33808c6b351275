//go:build cgo

package graph

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestStore creates a fresh in-memory KuzuStore with an initialized schema.
// It registers a cleanup function to close the store when the test finishes.
func newTestStore(t *testing.T) *KuzuStore {
	t.Helper()
	s, err := NewKuzuStore()
	require.NoError(t, err, "NewKuzuStore should not fail")
	t.Cleanup(func() { _ = s.Close() })

	ctx := context.Background()
	require.NoError(t, s.InitSchema(ctx), "InitSchema should not fail")
	return s
}

// sorted returns a sorted copy of the given string slice so that assertions
// are deterministic regardless of result order.
func sorted(ss []string) []string {
	out := make([]string, len(ss))
	copy(out, ss)
	sort.Strings(out)
	return out
}

func TestKuzuStore_InitSchema(t *testing.T) {
	s, err := NewKuzuStore()
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	ctx := context.Background()

	// First call creates the tables.
	require.NoError(t, s.InitSchema(ctx))

	// Second call should be idempotent (IF NOT EXISTS).
	require.NoError(t, s.InitSchema(ctx))
}

func TestKuzuStore_FileRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	file := FileNode{
		Path:     "site/index.php",
		Category: CategoryServerScript,
		Size:     1834,
	}

	require.NoError(t, s.AddFile(ctx, file))

	got, err := s.GetFile(ctx, file.Path)
	require.NoError(t, err)
	require.NotNil(t, got, "GetFile should return a non-nil result")

	assert.Equal(t, file.Path, got.Path)
	assert.Equal(t, file.Category, got.Category)
	assert.Equal(t, file.Size, got.Size)
}

func TestKuzuStore_GetFile_NotFound(t *testing.T) {
	s := newTestStore(t)

	got, err := s.GetFile(context.Background(), "nonexistent.php")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestKuzuStore_EdgeRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddFile(ctx, FileNode{Path: "site/index.php", Category: CategoryServerScript, Size: 900}))
	require.NoError(t, s.AddFile(ctx, FileNode{Path: "site/header.php", Category: CategoryServerScript, Size: 400}))

	edge := Edge{Source: "site/index.php", Target: "site/header.php", Root: "site"}
	require.NoError(t, s.AddEdge(ctx, edge))

	edges, err := s.GetAllEdges(ctx)
	require.NoError(t, err)
	require.Len(t, edges, 1)
	assert.Equal(t, edge, edges[0])
}

func TestKuzuStore_ClusterRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddFile(ctx, FileNode{Path: "site/index.php", Category: CategoryServerScript}))
	require.NoError(t, s.AddFile(ctx, FileNode{Path: "site/header.php", Category: CategoryServerScript}))

	cluster := ClusterNode{
		Name:          "site/",
		CohesionScore: 1.0,
		Members:       []string{"site/index.php", "site/header.php"},
	}
	require.NoError(t, s.AddCluster(ctx, cluster))

	clusters, err := s.GetClusters(ctx)
	require.NoError(t, err)
	require.Len(t, clusters, 1)

	assert.Equal(t, cluster.Name, clusters[0].Name)
	assert.Equal(t, cluster.CohesionScore, clusters[0].CohesionScore)
	assert.Equal(t, sorted(cluster.Members), sorted(clusters[0].Members))
}

func TestKuzuStore_GetDependencies(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, f := range []string{"site/index.php", "site/header.php", "site/style.css"} {
		require.NoError(t, s.AddFile(ctx, FileNode{Path: f, Category: CategoryFor(f)}))
	}
	require.NoError(t, s.AddEdge(ctx, Edge{Source: "site/index.php", Target: "site/header.php", Root: "site"}))
	require.NoError(t, s.AddEdge(ctx, Edge{Source: "site/header.php", Target: "site/style.css", Root: "site"}))

	up, err := s.GetDependencies(ctx, "site/index.php", DirectionUpstream, 5)
	require.NoError(t, err)
	require.Len(t, up, 2)

	reached := make(map[string]int)
	for _, c := range up {
		reached[c.Nodes[len(c.Nodes)-1]] = c.Depth
	}
	assert.Equal(t, 1, reached["site/header.php"])
	assert.Equal(t, 2, reached["site/style.css"])

	down, err := s.GetDependencies(ctx, "site/style.css", DirectionDownstream, 5)
	require.NoError(t, err)
	require.Len(t, down, 2)
}

func TestKuzuStore_Stats(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddFile(ctx, FileNode{Path: "site/index.php", Category: CategoryServerScript}))
	require.NoError(t, s.AddFile(ctx, FileNode{Path: "site/header.php", Category: CategoryServerScript}))
	require.NoError(t, s.AddEdge(ctx, Edge{Source: "site/index.php", Target: "site/header.php", Root: "site"}))

	stats, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.FileCount)
	assert.Equal(t, 1, stats.EdgeCount)
	assert.Equal(t, 0, stats.ClusterCount)
}
