// Package dijkstra computes a single source→destination shortest path on a
// core.Graph with non-negative edge weights using Dijkstra's algorithm.
//
// It answers the same question as package bellmanford and returns the same
// route.Result, so the two engines are interchangeable for campus maps. It
// is faster (O((V + E) log V)) but rejects negative weights up front.
//
// Key features:
//
//   - Early stop: the search ends as soon as the destination is settled.
//   - WithMaxDistance: vertices farther than the cap are treated as unreachable.
//   - Lazy decrease-key: improved distances push duplicate heap entries and
//     stale entries are skipped when popped.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:        nil *core.Graph.
//   - ErrVertexNotFound:  source or destination missing.
//   - ErrNegativeWeight:  any edge with negative weight (O(E) pre-scan).
//   - ErrBadMaxDistance:  WithMaxDistance with a negative value.
//
// Thread safety:
//
// Each call owns its distance table, predecessor table and heap.
package dijkstra
