// Package dijkstra_test contains unit tests for the Dijkstra engine:
// validation, directed and undirected graphs, MaxDistance and equivalence
// with Bellman-Ford on the campus map.
package dijkstra_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/campusnav/bellmanford"
	"github.com/katalvlaran/campusnav/campus"
	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/dijkstra"
	"github.com/katalvlaran/campusnav/route"
)

// buildGraph creates a weighted graph with vertices A..D and the given edges.
func buildGraph(t *testing.T, directed bool, edges [][3]interface{}) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(directed), core.WithWeighted(), core.WithLoops(), core.WithMultiEdges())
	for _, id := range []string{"A", "B", "C", "D"} {
		if err := g.AddVertex(id, "place "+id); err != nil {
			t.Fatal(err)
		}
	}
	for _, e := range edges {
		if _, err := g.AddEdge(e[0].(string), e[1].(string), int64(e[2].(int))); err != nil {
			t.Fatal(err)
		}
	}

	return g
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestShortestPath_NilGraph(t *testing.T) {
	_, err := dijkstra.ShortestPath(nil, "A", "B")
	if err != dijkstra.ErrNilGraph {
		t.Fatalf("Expected ErrNilGraph, got %v", err)
	}
}

func TestShortestPath_VertexNotFound(t *testing.T) {
	g := buildGraph(t, true, nil)
	if _, err := dijkstra.ShortestPath(g, "X", "A"); !errors.Is(err, dijkstra.ErrVertexNotFound) {
		t.Fatalf("Expected ErrVertexNotFound for source, got %v", err)
	}
	if _, err := dijkstra.ShortestPath(g, "A", "X"); !errors.Is(err, dijkstra.ErrVertexNotFound) {
		t.Fatalf("Expected ErrVertexNotFound for destination, got %v", err)
	}
}

func TestShortestPath_NegativeWeight(t *testing.T) {
	g := buildGraph(t, true, [][3]interface{}{{"A", "B", -5}})
	if _, err := dijkstra.ShortestPath(g, "A", "B"); !errors.Is(err, dijkstra.ErrNegativeWeight) {
		t.Fatalf("Expected ErrNegativeWeight, got %v", err)
	}
}

func TestShortestPath_BadMaxDistance(t *testing.T) {
	g := buildGraph(t, true, nil)
	if _, err := dijkstra.ShortestPath(g, "A", "B", dijkstra.WithMaxDistance(-1)); err != dijkstra.ErrBadMaxDistance {
		t.Fatalf("Expected ErrBadMaxDistance, got %v", err)
	}
}

// ------------------------------------------------------------------------
// 2. Basic functionality
// ------------------------------------------------------------------------

func TestShortestPath_DirectedGraph(t *testing.T) {
	// A→B(2), A→C(1), C→B(1), B→D(3), C→D(5)
	g := buildGraph(t, true, [][3]interface{}{
		{"A", "B", 2}, {"A", "C", 1}, {"C", "B", 1}, {"B", "D", 3}, {"C", "D", 5},
	})

	res, err := dijkstra.ShortestPath(g, "A", "D")
	if err != nil {
		t.Fatal(err)
	}
	if !res.Found() || res.TotalDistance != 5 {
		t.Fatalf("got %+v; want found with distance 5", res)
	}
	if res.SourceLabel != "place A" || res.DestinationLabel != "place D" {
		t.Errorf("labels = %q, %q", res.SourceLabel, res.DestinationLabel)
	}

	// Nothing leads back to A.
	res, err = dijkstra.ShortestPath(g, "D", "A")
	if err != nil {
		t.Fatal(err)
	}
	if res.Status != route.Unreachable || res.Path != nil {
		t.Errorf("D→A = %+v; want unreachable", res)
	}
}

func TestShortestPath_UndirectedGraph(t *testing.T) {
	// A-B(1), B-C(2), A-C(5)
	g := buildGraph(t, false, [][3]interface{}{{"A", "B", 1}, {"B", "C", 2}, {"A", "C", 5}})

	res, err := dijkstra.ShortestPath(g, "C", "A")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"C", "B", "A"}; !reflect.DeepEqual(res.Path, want) {
		t.Errorf("path = %v; want %v", res.Path, want)
	}
	if res.TotalDistance != 3 {
		t.Errorf("distance = %d; want 3", res.TotalDistance)
	}
}

func TestShortestPath_SameVertex(t *testing.T) {
	g := buildGraph(t, true, [][3]interface{}{{"A", "A", 4}})
	res, err := dijkstra.ShortestPath(g, "A", "A")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(res.Path, []string{"A"}) || res.TotalDistance != 0 {
		t.Errorf("got %+v; want [A] with distance 0", res)
	}
}

func TestShortestPath_MaxDistance(t *testing.T) {
	// Linear graph: A→B(1)→C(1)→D(1)
	g := buildGraph(t, true, [][3]interface{}{{"A", "B", 1}, {"B", "C", 1}, {"C", "D", 1}})

	res, err := dijkstra.ShortestPath(g, "A", "C", dijkstra.WithMaxDistance(2))
	if err != nil {
		t.Fatal(err)
	}
	if !res.Found() {
		t.Fatalf("A→C within 2 should be found")
	}

	res, err = dijkstra.ShortestPath(g, "A", "D", dijkstra.WithMaxDistance(2))
	if err != nil {
		t.Fatal(err)
	}
	if res.Found() {
		t.Errorf("A→D beyond cap should be unreachable, got %+v", res)
	}
}

// ------------------------------------------------------------------------
// 3. Equivalence with Bellman-Ford on the campus map
// ------------------------------------------------------------------------

func TestShortestPath_AgreesWithBellmanFord(t *testing.T) {
	g, err := campus.Load()
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range g.Vertices() {
		for _, d := range g.Vertices() {
			bf, err := bellmanford.ShortestPath(g, s, d)
			if err != nil {
				t.Fatal(err)
			}
			dj, err := dijkstra.ShortestPath(g, s, d)
			if err != nil {
				t.Fatal(err)
			}
			if bf.Status != dj.Status || bf.TotalDistance != dj.TotalDistance {
				t.Errorf("%s→%s: bellman-ford %v/%d, dijkstra %v/%d",
					s, d, bf.Status, bf.TotalDistance, dj.Status, dj.TotalDistance)
			}
		}
	}
}
