// Package core provides the in-memory graph used by every routing engine
// in campusnav: a set of labeled vertices and a list of weighted edges.
//
// The Graph G = (V,E) is configured once at construction:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//
// Vertices carry a unique ID and a display Label. Edges carry a sequence ID
// ("e1", "e2", …), the endpoint IDs and an integer Weight. Unlike a general
// purpose graph library, AddEdge never creates vertices implicitly: both
// endpoints must already be registered, so a constructed Graph always
// satisfies "every edge endpoint is a known vertex".
//
// Determinism:
//
//   - Vertices() returns IDs sorted ascending.
//   - Edges() and Neighbors() return edges in insertion order. Shortest-path
//     engines rely on this as their fixed relaxation order.
//
// Concurrency:
//
// All methods are safe for concurrent use. muVert guards the vertex catalog,
// muEdgeAdj guards the edge list and adjacency. A Graph is normally built by
// one goroutine and then only read, so readers never contend.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrDuplicateVertex     - vertex re-registered with a different label.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrBadWeight           - non-zero weight on an unweighted graph.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
//
// Example:
//
//	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
//	_ = g.AddVertex("A", "Main Gate")
//	_ = g.AddVertex("B", "Main Gate Right Road")
//	_, _ = g.AddEdge("A", "B", 130)
package core
