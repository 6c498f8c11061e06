package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/dijkstra"
)

// ExampleShortestPath computes a route on a small directed graph.
func ExampleShortestPath() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	for _, id := range []string{"A", "B", "C", "D"} {
		_ = g.AddVertex(id, id)
	}
	_, _ = g.AddEdge("A", "B", 2)
	_, _ = g.AddEdge("A", "C", 1)
	_, _ = g.AddEdge("C", "B", 1)
	_, _ = g.AddEdge("B", "D", 3)
	_, _ = g.AddEdge("C", "D", 5)

	res, err := dijkstra.ShortestPath(g, "A", "D")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Path, res.TotalDistance)
	// Output: [A B D] 5
}
