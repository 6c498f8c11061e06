// Package bfs answers "which places can I reach from here?" with a
// breadth-first search over a core.Graph.
//
// Weights are ignored: BFS follows edges in their usable direction (one-way
// edges only forward) and reports hop counts, not distances. Neighbors are
// visited in edge insertion order, so Order is deterministic.
//
// Options:
//
//   - WithContext: cancellation and deadlines.
//   - WithMaxDepth: stop expanding beyond a hop count.
//   - WithOnVisit: callback per visited vertex; an error aborts the walk.
//
// Errors:
//
//   - ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation.
package bfs
