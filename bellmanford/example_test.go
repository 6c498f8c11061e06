package bellmanford_test

import (
	"fmt"

	"github.com/katalvlaran/campusnav/bellmanford"
	"github.com/katalvlaran/campusnav/campus"
	"github.com/katalvlaran/campusnav/core"
)

// ExampleShortestPath finds the walk from the Main Gate to CEG Square.
func ExampleShortestPath() {
	g, err := campus.Load()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := bellmanford.ShortestPath(g, "A", "J")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Status, res.Path, res.TotalDistance)
	// Output: found [A D E H J] 365
}

// ExampleShortestPath_unreachable shows that a missing route is a result, not an error.
func ExampleShortestPath_unreachable() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_ = g.AddVertex("A", "Main Gate")
	_ = g.AddVertex("M", "Library")
	_, _ = g.AddEdge("A", "M", 500)

	res, err := bellmanford.ShortestPath(g, "M", "A")
	fmt.Println(res.Status, res.SourceLabel, "->", res.DestinationLabel, err)
	// Output: unreachable Library -> Main Gate <nil>
}

// ExampleWithNegativeCycleCheck reports a cycle that would make distances unbounded.
func ExampleWithNegativeCycleCheck() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	for _, id := range []string{"A", "B", "C"} {
		_ = g.AddVertex(id, id)
	}
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", -3)
	_, _ = g.AddEdge("C", "B", 1)

	_, err := bellmanford.ShortestPath(g, "A", "C", bellmanford.WithNegativeCycleCheck())
	fmt.Println(err)
	// Output: bellmanford: negative cycle reachable from source
}
