package graph

import (
	"path/filepath"
	"strings"
)

// --- Enums ---

// Category classifies a candidate file by the pattern set applied to it.
type Category string

const (
	CategoryServerScript  Category = "server-script"  // PHP
	CategoryBrowserScript Category = "browser-script" // JavaScript
	CategoryMarkup        Category = "markup"         // HTML
	CategoryStylesheet    Category = "stylesheet"     // CSS
)

// extToCategory maps file extensions (lowercased, with dot) to categories.
// Extensions outside this map yield no references at all.
var extToCategory = map[string]Category{
	".php":  CategoryServerScript,
	".js":   CategoryBrowserScript,
	".html": CategoryMarkup,
	".htm":  CategoryMarkup,
	".css":  CategoryStylesheet,
}

// CategoryFor returns the category for a file path, derived solely from its
// extension. The empty string means the file is not analyzable.
func CategoryFor(path string) Category {
	return extToCategory[strings.ToLower(filepath.Ext(path))]
}

// Direction controls dependency traversal direction.
type Direction string

const (
	DirectionUpstream   Direction = "upstream"   // what does this file reference?
	DirectionDownstream Direction = "downstream" // what references this file?
)

// --- Models ---

// FileNode represents a candidate file in the dependency graph.
type FileNode struct {
	Path     string   `json:"path"`
	Category Category `json:"category"`
	Size     int64    `json:"size"`
}

// Edge is one resolved dependency: Source references Target. Both are
// root-anchored display paths with forward-slash separators. Root carries
// the project root the edge was resolved under.
type Edge struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Root   string `json:"root"`
}

// ClusterNode represents a group of interdependent files, found as a
// connected component of the dependency graph.
type ClusterNode struct {
	Name          string   `json:"name"`
	CohesionScore float64  `json:"cohesionScore"`
	Members       []string `json:"members"` // file paths
}

// GraphStats summarizes a dependency graph.
type GraphStats struct {
	FileCount    int `json:"fileCount"`
	EdgeCount    int `json:"edgeCount"`
	ClusterCount int `json:"clusterCount"`
}

// DependencyChain is an ordered sequence of files forming a dependency path.
type DependencyChain struct {
	Nodes []string `json:"nodes"` // file paths in order
	Depth int      `json:"depth"`
}

// ImpactResult describes the blast radius of changing a set of files.
type ImpactResult struct {
	DirectlyAffected     []string `json:"directlyAffected"`     // files that reference changed files
	TransitivelyAffected []string `json:"transitivelyAffected"` // full dependent closure
	RiskScore            float64  `json:"riskScore"`            // 0.0-1.0, affected share of all files
}
