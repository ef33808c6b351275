package mcptools

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/vkbaba/code-modernizer/internal/graph"
	"github.com/vkbaba/code-modernizer/internal/scan"
)

// GraphService holds the graph store used by MCP tool handlers.
type GraphService struct {
	store graph.Store
	root  string // set by AnalyzeProject, used by FindEntryPoints fallback
}

// NewGraphService creates a GraphService backed by the given store.
func NewGraphService(store graph.Store) *GraphService {
	return &GraphService{store: store}
}

// AnalyzeProject scans a web project, resolves the dependency graph,
// populates the store, and runs clustering. Returns graph statistics.
func (s *GraphService) AnalyzeProject(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AnalyzeProjectInput,
) (*mcp.CallToolResult, AnalyzeProjectOutput, error) {
	if input.ProjectRoot == "" {
		return nil, AnalyzeProjectOutput{}, fmt.Errorf("projectRoot is required")
	}

	info, err := os.Stat(input.ProjectRoot)
	if err != nil {
		return nil, AnalyzeProjectOutput{}, fmt.Errorf("cannot access projectRoot: %w", err)
	}
	if !info.IsDir() {
		return nil, AnalyzeProjectOutput{}, fmt.Errorf("projectRoot is not a directory: %s", input.ProjectRoot)
	}

	scanner := scan.NewScanner(input.ProjectRoot)
	scanner.ExcludeDirs = input.ExcludeDirs

	var candidates []string
	if len(input.Files) > 0 {
		candidates, err = scanner.Find(input.Files)
	} else {
		candidates, err = scanner.Scan()
	}
	if err != nil {
		return nil, AnalyzeProjectOutput{}, fmt.Errorf("scan project: %w", err)
	}

	opts := graph.DefaultOptions()
	opts.ExcludeImages = !input.IncludeImages
	opts.HandleDynamic = !input.KeepDynamic

	edges := graph.NewAnalyzer(input.ProjectRoot, candidates, opts).AnalyzeDependencies()

	if err := s.store.InitSchema(ctx); err != nil {
		return nil, AnalyzeProjectOutput{}, fmt.Errorf("init schema: %w", err)
	}
	if err := graph.PopulateStore(ctx, s.store, input.ProjectRoot, candidates, edges); err != nil {
		return nil, AnalyzeProjectOutput{}, fmt.Errorf("populate store: %w", err)
	}

	files, err := s.store.GetAllFiles(ctx)
	if err != nil {
		return nil, AnalyzeProjectOutput{}, fmt.Errorf("get files: %w", err)
	}
	if _, err := graph.ComputeClusters(ctx, s.store, files); err != nil {
		return nil, AnalyzeProjectOutput{}, fmt.Errorf("compute clusters: %w", err)
	}

	stats, err := s.store.Stats(ctx)
	if err != nil {
		return nil, AnalyzeProjectOutput{}, fmt.Errorf("stats: %w", err)
	}

	s.root = input.ProjectRoot

	return nil, AnalyzeProjectOutput{Stats: *stats}, nil
}

// GetDependencies traverses the dependency graph from a given file.
func (s *GraphService) GetDependencies(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetDependenciesInput,
) (*mcp.CallToolResult, GetDependenciesOutput, error) {
	if input.Path == "" {
		return nil, GetDependenciesOutput{}, fmt.Errorf("path is required")
	}

	direction := graph.DirectionDownstream
	if strings.EqualFold(input.Direction, "upstream") {
		direction = graph.DirectionUpstream
	}

	maxDepth := input.MaxDepth
	if maxDepth <= 0 {
		maxDepth = 5
	}

	chains, err := s.store.GetDependencies(ctx, input.Path, direction, maxDepth)
	if err != nil {
		return nil, GetDependenciesOutput{}, fmt.Errorf("get dependencies: %w", err)
	}

	return nil, GetDependenciesOutput{Chains: chains}, nil
}

// AssessImpact computes the blast radius of modifying a set of files.
func (s *GraphService) AssessImpact(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AssessImpactInput,
) (*mcp.CallToolResult, AssessImpactOutput, error) {
	if len(input.ChangedFiles) == 0 {
		return nil, AssessImpactOutput{}, fmt.Errorf("changedFiles is required")
	}

	impact, err := s.store.AssessImpact(ctx, input.ChangedFiles)
	if err != nil {
		return nil, AssessImpactOutput{}, fmt.Errorf("assess impact: %w", err)
	}

	return nil, AssessImpactOutput{Impact: *impact}, nil
}

// FindEntryPoints scans a project and returns the files most likely to be
// navigation roots (index.php and friends).
func (s *GraphService) FindEntryPoints(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input FindEntryPointsInput,
) (*mcp.CallToolResult, FindEntryPointsOutput, error) {
	root := input.ProjectRoot
	if root == "" {
		root = s.root
	}
	if root == "" {
		return nil, FindEntryPointsOutput{}, fmt.Errorf("projectRoot is required")
	}

	files, err := scan.NewScanner(root).Scan()
	if err != nil {
		return nil, FindEntryPointsOutput{}, fmt.Errorf("scan project: %w", err)
	}

	entries := scan.EntryPoints(files)
	display := make([]string, len(entries))
	for i, e := range entries {
		display[i] = graph.DisplayPath(root, e)
	}

	return nil, FindEntryPointsOutput{EntryPoints: display}, nil
}

// GetClusters returns all file clusters in the graph.
func (s *GraphService) GetClusters(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ GetClustersInput,
) (*mcp.CallToolResult, GetClustersOutput, error) {
	clusters, err := s.store.GetClusters(ctx)
	if err != nil {
		return nil, GetClustersOutput{}, fmt.Errorf("get clusters: %w", err)
	}

	return nil, GetClustersOutput{Clusters: clusters}, nil
}
