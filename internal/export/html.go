package export

import (
	"encoding/json"
	"fmt"

	"github.com/vkbaba/code-modernizer/internal/graph"
)

// colorMap assigns vis-network node colors per file extension.
var colorMap = map[string]string{
	".js":   "#F0DB4F", // JavaScript yellow
	".html": "#E34C26", // HTML orange
	".css":  "#264DE4", // CSS blue
	".php":  "#777BB3", // PHP purple
}

const defaultColor = "#808080"

type visNode struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Title string `json:"title"`
	Color string `json:"color"`
	Size  int    `json:"size"`
}

type visEdge struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Arrows string `json:"arrows"`
	Color  string `json:"color"`
}

// visOptions mirrors the physics and styling tuned for medium-sized
// dependency graphs.
const visOptions = `{
  "nodes": {"font": {"size": 24}, "shape": "dot"},
  "edges": {"smooth": {"type": "continuous"}, "font": {"size": 10}},
  "physics": {
    "barnesHut": {
      "gravitationalConstant": -10000,
      "centralGravity": 0.01,
      "springLength": 95,
      "springConstant": 0.002,
      "damping": 0.3,
      "avoidOverlap": 0.1
    },
    "minVelocity": 0.95
  }
}`

const htmlPage = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Dependency Graph</title>
<script src="https://unpkg.com/vis-network/standalone/umd/vis-network.min.js"></script>
<style>#graph { width: 100%%; height: 100vh; }</style>
</head>
<body>
<div id="graph"></div>
<script>
var nodes = new vis.DataSet(%s);
var edges = new vis.DataSet(%s);
var container = document.getElementById("graph");
var network = new vis.Network(container, {nodes: nodes, edges: edges}, %s);
</script>
</body>
</html>
`

// HTML renders the edge list as a self-contained interactive vis-network
// page. Node identity follows the label mode: with showPath false, files
// with the same base name collapse into one node.
func HTML(edges []graph.Edge, showPath bool) (string, error) {
	deps := Adjacency(edges)

	nodeSet := make(map[string]bool)
	for _, n := range allNodes(deps) {
		nodeSet[formatNode(n, showPath)] = true
	}

	nodes := make([]visNode, 0, len(nodeSet))
	for _, id := range sortedKeys(nodeSet) {
		color, ok := colorMap[extOf(id)]
		if !ok {
			color = defaultColor
		}
		nodes = append(nodes, visNode{ID: id, Label: id, Title: id, Color: color, Size: 25})
	}

	seen := make(map[string]bool)
	var visEdges []visEdge
	for _, src := range sortedKeys(keySet(deps)) {
		from := formatNode(src, showPath)
		for _, target := range sortedKeys(deps[src]) {
			to := formatNode(target, showPath)
			key := from + "\x00" + to
			if seen[key] {
				continue
			}
			seen[key] = true
			visEdges = append(visEdges, visEdge{From: from, To: to, Arrows: "to", Color: defaultColor})
		}
	}

	nodesJSON, err := json.Marshal(nodes)
	if err != nil {
		return "", fmt.Errorf("marshal nodes: %w", err)
	}
	edgesJSON, err := json.Marshal(visEdges)
	if err != nil {
		return "", fmt.Errorf("marshal edges: %w", err)
	}

	return fmt.Sprintf(htmlPage, nodesJSON, edgesJSON, visOptions), nil
}
