// File: methods_edges.go
// Role: Edge insertion & queries: AddEdge/HasEdge/Edges/Neighbors/EdgeCount,
//       plus nextEdgeID().
// Determinism:
//   - Edges() and Neighbors() keep insertion order.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"fmt"
	"strconv"
)

// edgeIDPrefix gives stable human-readable IDs like "e1", "e2", ...
const edgeIDPrefix = 'e'

// AddEdge appends a new edge from→to and returns its ID.
//
// Steps:
//  1. Validate IDs, weight, loops.
//  2. Both endpoints must already be vertices (ErrVertexNotFound).
//  3. Lock muEdgeAdj, check multi-edge constraint.
//  4. Generate eid, append to the edge list and adjacency.
//  5. If undirected and from!=to, mirror into adjacency[to].
//
// Complexity: O(deg(from)) for the multi-edge check, O(1) otherwise.
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", fmt.Errorf("%w: %s→%s", ErrLoopNotAllowed, from, to)
	}

	g.muVert.RLock()
	_, okFrom := g.vertices[from]
	_, okTo := g.vertices[to]
	g.muVert.RUnlock()
	if !okFrom {
		return "", fmt.Errorf("%w: edge source %q", ErrVertexNotFound, from)
	}
	if !okTo {
		return "", fmt.Errorf("%w: edge target %q", ErrVertexNotFound, to)
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti && g.hasEdgeLocked(from, to) {
		return "", fmt.Errorf("%w: %s→%s", ErrMultiEdgeNotAllowed, from, to)
	}

	e := &Edge{ID: g.nextEdgeID(), From: from, To: to, Weight: weight, Directed: g.directed}
	g.edges = append(g.edges, e)
	g.edgeIndex[e.ID] = e
	g.adjacency[from] = append(g.adjacency[from], e)
	if !e.Directed && from != to {
		g.adjacency[to] = append(g.adjacency[to], e)
	}

	return e.ID, nil
}

// HasEdge reports whether at least one edge usable from→to exists.
// Undirected edges count in both directions.
// Complexity: O(deg(from)).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.hasEdgeLocked(from, to)
}

func (g *Graph) hasEdgeLocked(from, to string) bool {
	for _, e := range g.adjacency[from] {
		if e.From == from && e.To == to {
			return true
		}
		if !e.Directed && e.To == from && e.From == to {
			return true
		}
	}

	return false
}

// Edge returns the edge with the given ID.
// Complexity: O(1).
func (g *Graph) Edge(id string) (*Edge, bool) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edgeIndex[id]

	return e, ok
}

// Edges returns all edges in insertion order. The returned *Edge values are
// shared with the graph and must be treated as read-only.
// Complexity: O(E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Neighbors returns the edges usable from id in insertion order. For an
// undirected edge stored as To==id the caller must use the opposite
// endpoint (see Edge.Other).
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if !g.HasVertex(id) {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	adj := g.adjacency[id]
	out := make([]*Edge, len(adj))
	copy(out, adj)

	return out, nil
}

// Other returns the endpoint reached when leaving "from" along e.
func (e *Edge) Other(from string) string {
	if e.From == from {
		return e.To
	}

	return e.From
}

// EdgeCount returns total number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// nextEdgeID returns a new unique textual edge ID. Caller holds muEdgeAdj.
func (g *Graph) nextEdgeID() string {
	g.edgeSeq++
	buf := make([]byte, 0, 1+20)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, g.edgeSeq, 10)

	return string(buf)
}
