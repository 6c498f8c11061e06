// File: view.go
// Role: Non-mutating graph views.
// Determinism:
//   - Preserves vertex labels, edge IDs, weights and edge order.
// Concurrency:
//   - Read locks on source; result is a fresh graph instance.

package core

// InducedSubgraph returns a new Graph induced by the set "keep" of vertex IDs:
// the result contains only vertices v where keep[v] is true, and all edges whose
// endpoints are both in keep, in their original order. The input graph is not
// mutated.
//
// Complexity: O(V + E). Concurrency: read locks only on source.
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	out := NewGraph(g.options()...)

	g.muVert.RLock()
	for id, v := range g.vertices {
		if keep[id] {
			out.vertices[id] = &Vertex{ID: v.ID, Label: v.Label}
			out.adjacency[id] = nil
		}
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	for _, e := range g.edges {
		if !keep[e.From] || !keep[e.To] {
			continue
		}
		ne := &Edge{ID: e.ID, From: e.From, To: e.To, Weight: e.Weight, Directed: e.Directed}
		out.edges = append(out.edges, ne)
		out.edgeIndex[ne.ID] = ne
		out.adjacency[ne.From] = append(out.adjacency[ne.From], ne)
		if !ne.Directed && ne.From != ne.To {
			out.adjacency[ne.To] = append(out.adjacency[ne.To], ne)
		}
	}
	// Carry the sequence forward so later AddEdge calls cannot reuse a copied ID.
	out.edgeSeq = g.edgeSeq
	g.muEdgeAdj.RUnlock()

	return out
}
