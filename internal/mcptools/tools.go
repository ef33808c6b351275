package mcptools

import "github.com/vkbaba/code-modernizer/internal/graph"

// --- MCP Tool Input Types ---
// These structs define the JSON schema for each MCP tool's input.
// The MCP Go SDK auto-generates JSON schemas from struct tags.

// AnalyzeProjectInput is the input for the analyze_project MCP tool.
type AnalyzeProjectInput struct {
	ProjectRoot   string   `json:"projectRoot" jsonschema:"the absolute path to the web project to analyze"`
	Files         []string `json:"files,omitempty" jsonschema:"explicit file names to analyze instead of scanning the whole tree"`
	ExcludeDirs   []string `json:"excludeDirs,omitempty" jsonschema:"additional directory names to exclude from scanning"`
	IncludeImages bool     `json:"includeImages,omitempty" jsonschema:"keep edges that point at image files (excluded by default)"`
	KeepDynamic   bool     `json:"keepDynamic,omitempty" jsonschema:"resolve dynamic references instead of skipping them (skipped by default)"`
}

// AnalyzeProjectOutput is the result of the analyze_project MCP tool.
type AnalyzeProjectOutput struct {
	Stats graph.GraphStats `json:"stats"`
}

// GetDependenciesInput is the input for the get_dependencies MCP tool.
type GetDependenciesInput struct {
	Path      string `json:"path" jsonschema:"root-anchored file path to traverse from"`
	Direction string `json:"direction,omitempty" jsonschema:"upstream (what it references) or downstream (what references it). Default: downstream"`
	MaxDepth  int    `json:"maxDepth,omitempty" jsonschema:"maximum traversal depth (default: 5)"`
}

// GetDependenciesOutput is the result of the get_dependencies MCP tool.
type GetDependenciesOutput struct {
	Chains []graph.DependencyChain `json:"chains"`
}

// AssessImpactInput is the input for the assess_impact MCP tool.
type AssessImpactInput struct {
	ChangedFiles []string `json:"changedFiles" jsonschema:"list of root-anchored file paths that will be modified"`
}

// AssessImpactOutput is the result of the assess_impact MCP tool.
type AssessImpactOutput struct {
	Impact graph.ImpactResult `json:"impact"`
}

// FindEntryPointsInput is the input for the find_entry_points MCP tool.
type FindEntryPointsInput struct {
	ProjectRoot string `json:"projectRoot" jsonschema:"the absolute path to the web project"`
}

// FindEntryPointsOutput is the result of the find_entry_points MCP tool.
type FindEntryPointsOutput struct {
	EntryPoints []string `json:"entryPoints"`
}

// GetClustersInput is the input for the get_clusters MCP tool.
type GetClustersInput struct{}

// GetClustersOutput is the result of the get_clusters MCP tool.
type GetClustersOutput struct {
	Clusters []graph.ClusterNode `json:"clusters"`
}
