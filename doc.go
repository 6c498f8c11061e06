// Package campusnav finds shortest walking routes on a fixed campus map.
//
// The map is a small directed weighted graph: places are vertices with a
// short ID ("A", "AJ") and a display label ("Main Gate"), one-way walking
// segments are edges weighted in meters. Queries run Bellman-Ford over the
// edge list and return either a path with its total distance or an
// unreachable result.
//
// Layout:
//
//	core/          Graph, Vertex and Edge with construction-time checks
//	route/         Result type and predecessor-chain reconstruction
//	bellmanford/   the default shortest-path engine
//	dijkstra/      heap-based engine for non-negative weights
//	bfs/           reachability by breadth-first search
//	campus/        the embedded campus map (campus.yaml)
//	navigator/     input validation, engine dispatch and text formatting
//	internal/      config, logging, the interactive menu and the HTTP API
//	cmd/campusnav  the command-line entry point
//
// Quick start:
//
//	g, _ := campus.Load()
//	res, _ := bellmanford.ShortestPath(g, "A", "J")
//	fmt.Println(res.Path, res.TotalDistance) // [A D E H J] 365
package campusnav
