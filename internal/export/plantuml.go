package export

import (
	"fmt"
	"strings"

	"github.com/vkbaba/code-modernizer/internal/graph"
)

// PlantUML produces a PlantUML component diagram from the edge list.
func PlantUML(edges []graph.Edge, showPath bool) string {
	deps := Adjacency(edges)

	var sb strings.Builder
	sb.WriteString("@startuml\n")
	for _, src := range sortedKeys(keySet(deps)) {
		for _, target := range sortedKeys(deps[src]) {
			sb.WriteString(fmt.Sprintf("%q --> %q\n", formatNode(src, showPath), formatNode(target, showPath)))
		}
	}
	sb.WriteString("@enduml\n")
	return sb.String()
}
