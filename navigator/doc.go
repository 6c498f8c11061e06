// Package navigator is the boundary between user input and the
// shortest-path engines.
//
// A Navigator owns one immutable campus graph. It checks that node IDs
// typed by a user exist before any engine runs (ErrInvalidNodeID), picks
// the configured engine (Bellman-Ford by default, Dijkstra on request),
// and renders results in the plain-text form the menu and the CLI print:
//
//	Shortest path from Main Gate to CEG Square:
//	Main Gate -> Anna Statue -> Anna Statue Right Road -> Red Building Right Road -> CEG Square
//	Total distance: 365 meters
//
// or, when no route exists:
//
//	No path found between Library and Main Gate.
//
// Concurrency: a Navigator is safe for concurrent use; every query works
// on private tables and the graph is only read.
package navigator
