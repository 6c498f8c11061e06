// Package bellmanford computes a single source→destination shortest path on
// a core.Graph with the Bellman-Ford algorithm.
//
// Overview:
//
//   - Distances start at +∞ (math.MaxInt64) except the source (0).
//   - Exactly |V|-1 passes relax every edge in g.Edges() order: an edge
//     u→v with weight w improves v when dist[u] is finite and
//     dist[u]+w < dist[v]. The improving u becomes prev[v].
//   - The path is rebuilt by walking prev from the destination to the
//     source, capped at |V| steps (route.Reconstruct).
//
// Bellman-Ford is chosen over Dijkstra because it tolerates negative edge
// weights; at campus scale its O(V·E) cost is irrelevant.
//
// Ties:
//
// Among equally short paths the result is whichever was first produced by a
// strict improvement in the fixed pass order. There is no other tie-break.
//
// Edge cases:
//
//   - source == destination: Found{[source], 0}.
//   - Self-loops and parallel edges are relaxed like any other edge; a
//     non-negative self-loop never improves anything, and the cheapest of
//     several parallel edges wins.
//   - Undirected edges are relaxed in both directions.
//
// Options:
//
//   - WithNegativeCycleCheck(): run one extra pass; any improvement means a
//     negative cycle is reachable from the source (ErrNegativeCycle).
//   - WithEarlyExit(): stop as soon as a pass improves nothing. Results are
//     identical, only Stats.Passes shrinks.
//
// Errors (sentinel):
//
//   - ErrNilGraph:       g is nil.
//   - ErrVertexNotFound: source or destination is not a vertex of g.
//   - ErrNegativeCycle:  only with WithNegativeCycleCheck.
//   - route.ErrBrokenChain: predecessor walk did not reach the source.
//
// Unreachable destinations are a normal route.Result, never an error.
//
// Thread safety:
//
// The distance and predecessor tables belong to one call, and core.Graph
// reads are lock-protected, so concurrent calls on one graph are safe.
//
// Example:
//
//	res, err := bellmanford.ShortestPath(g, "A", "J")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if res.Found() {
//	    fmt.Println(res.Path, res.TotalDistance)
//	}
package bellmanford
