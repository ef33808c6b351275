package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vkbaba/code-modernizer/internal/graph"
)

// siteEdges is a small fixture: index pulls in header and app.js, header
// pulls in style.css.
func siteEdges() []graph.Edge {
	return []graph.Edge{
		{Source: "site/index.php", Target: "site/header.php", Root: "site"},
		{Source: "site/index.php", Target: "site/app.js", Root: "site"},
		{Source: "site/header.php", Target: "site/style.css", Root: "site"},
	}
}

func TestAdjacency(t *testing.T) {
	edges := append(siteEdges(),
		// Duplicate edge, must collapse.
		graph.Edge{Source: "site/index.php", Target: "site/header.php", Root: "site"},
	)

	deps := Adjacency(edges)
	require.Len(t, deps, 2)
	assert.Len(t, deps["site/index.php"], 2)
	assert.Len(t, deps["site/header.php"], 1)
}

func TestRootNodes(t *testing.T) {
	deps := Adjacency(siteEdges())
	assert.Equal(t, []string{"site/index.php"}, rootNodes(deps))

	cyclic := Adjacency([]graph.Edge{
		{Source: "a.php", Target: "b.php"},
		{Source: "b.php", Target: "a.php"},
	})
	assert.Empty(t, rootNodes(cyclic))
}

func TestMermaid(t *testing.T) {
	out := Mermaid(siteEdges(), "site", false)

	assert.True(t, strings.HasPrefix(out, "graph TD\n"))
	assert.Contains(t, out, "index_php --> header_php\n")
	assert.Contains(t, out, "index_php --> app_js\n")
	assert.Contains(t, out, "header_php --> style_css\n")
	assert.Contains(t, out, "index_php[index.php]\n")
	assert.Contains(t, out, "style_css[style.css]\n")
}

func TestMermaid_ShowPath(t *testing.T) {
	out := Mermaid(siteEdges(), "site", true)
	assert.Contains(t, out, "index_php[site/index.php]\n")
}

func TestPlantUML(t *testing.T) {
	out := PlantUML(siteEdges(), false)

	assert.True(t, strings.HasPrefix(out, "@startuml\n"))
	assert.True(t, strings.HasSuffix(out, "@enduml\n"))
	assert.Contains(t, out, `"index.php" --> "header.php"`)
	assert.Contains(t, out, `"header.php" --> "style.css"`)
}

func TestASCIITree(t *testing.T) {
	out := ASCIITree(siteEdges(), false)

	// One root branch, children sorted: app.js before header.php.
	want := "└── index.php\n" +
		"    ├── app.js\n" +
		"    └── header.php\n" +
		"        └── style.css\n"
	assert.Equal(t, want, out)
}

func TestASCIITree_Cycle(t *testing.T) {
	out := ASCIITree([]graph.Edge{
		{Source: "a.php", Target: "b.php"},
		{Source: "b.php", Target: "a.php"},
	}, false)

	assert.Contains(t, out, "(circular reference)")
	// Both sources render as fallback roots.
	assert.Contains(t, out, "└── a.php\n")
}

func TestDOT(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, DOT(siteEdges(), &buf, false))

	out := buf.String()
	assert.Contains(t, out, "strict digraph")
	assert.Contains(t, out, `"site/index.php"`)
	assert.Contains(t, out, `"site/header.php"`)
	assert.Contains(t, out, "label")
}

func TestJSON(t *testing.T) {
	data, err := JSON(siteEdges(), "site")
	require.NoError(t, err)
	assert.True(t, bytes.HasSuffix(data, []byte("\n")))

	var export GraphExport
	require.NoError(t, json.Unmarshal(data, &export))

	assert.Equal(t, "site", export.Root)
	assert.Equal(t, 4, export.NodeCount)
	assert.Equal(t, 3, export.EdgeCount)
	assert.Len(t, export.Edges, 3)
	assert.NotEmpty(t, export.GeneratedAt)
}

func TestHTML(t *testing.T) {
	page, err := HTML(siteEdges(), false)
	require.NoError(t, err)

	assert.Contains(t, page, "<!DOCTYPE html>")
	assert.Contains(t, page, "vis-network")
	assert.Contains(t, page, "index.php")
	assert.Contains(t, page, "#777BB3", "PHP nodes carry the PHP brand color")
	assert.Contains(t, page, "#264DE4", "CSS nodes carry the CSS brand color")
}

func TestHTML_Empty(t *testing.T) {
	page, err := HTML(nil, false)
	require.NoError(t, err)
	assert.Contains(t, page, "<!DOCTYPE html>")
}
