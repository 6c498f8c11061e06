package navigator

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/route"
)

// FormatNodes renders one "ID: Label" line per node.
func FormatNodes(nodes []core.Vertex) string {
	var b strings.Builder
	for _, v := range nodes {
		fmt.Fprintf(&b, "%s: %s\n", v.ID, v.Label)
	}

	return b.String()
}

// FormatResult renders a route result with distances in meters.
func (n *Navigator) FormatResult(res route.Result) string {
	return FormatResult(res, n.graph.Label, n.unit)
}

// FormatResult renders res using label to name path vertices.
//
// Found:
//
//	Shortest path from <src> to <dst>:
//	<label> -> <label> -> ...
//	Total distance: <N> <unit>
//
// Unreachable:
//
//	No path found between <src> and <dst>.
func FormatResult(res route.Result, label func(id string) string, unit string) string {
	if !res.Found() {
		return fmt.Sprintf("No path found between %s and %s.\n", res.SourceLabel, res.DestinationLabel)
	}
	names := make([]string, len(res.Path))
	for i, id := range res.Path {
		names[i] = label(id)
	}

	return fmt.Sprintf("Shortest path from %s to %s:\n%s\nTotal distance: %d %s\n",
		res.SourceLabel, res.DestinationLabel, strings.Join(names, " -> "), res.TotalDistance, unit)
}
