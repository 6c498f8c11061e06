package core_test

import (
	"fmt"

	"github.com/katalvlaran/campusnav/core"
)

// ExampleGraph demonstrates building a small one-way road network.
func ExampleGraph() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_ = g.AddVertex("A", "Main Gate")
	_ = g.AddVertex("B", "Main Gate Right Road")
	_ = g.AddVertex("J", "CEG Square")
	_, _ = g.AddEdge("A", "B", 130)
	_, _ = g.AddEdge("B", "J", 280)

	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("A→B?", g.HasEdge("A", "B"), "B→A?", g.HasEdge("B", "A"))
	for _, e := range g.Edges() {
		fmt.Printf("%s: %s -> %s (%d)\n", e.ID, g.Label(e.From), g.Label(e.To), e.Weight)
	}

	// Output:
	// Vertices: [A B J]
	// A→B? true B→A? false
	// e1: Main Gate -> Main Gate Right Road (130)
	// e2: Main Gate Right Road -> CEG Square (280)
}
