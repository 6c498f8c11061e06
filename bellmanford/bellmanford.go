package bellmanford

import (
	"fmt"
	"math"

	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/route"
)

// infinity marks a vertex not yet reached from the source.
const infinity = math.MaxInt64

// ShortestPath returns a minimum-total-weight path from source to
// destination in g, or an Unreachable result when none exists.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must contain source and destination (ErrVertexNotFound).
//
// Complexity:
//
//   - Time:  O(V·E)
//   - Space: O(V)
func ShortestPath(g *core.Graph, source, destination string, opts ...Option) (route.Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return route.Result{}, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return route.Result{}, fmt.Errorf("%w: source %q", ErrVertexNotFound, source)
	}
	if !g.HasVertex(destination) {
		return route.Result{}, fmt.Errorf("%w: destination %q", ErrVertexNotFound, destination)
	}

	r := newRunner(g, source, cfg)
	if err := r.run(); err != nil {
		return route.Result{}, err
	}

	res := route.Result{
		Status:           route.Unreachable,
		Source:           source,
		Destination:      destination,
		SourceLabel:      g.Label(source),
		DestinationLabel: g.Label(destination),
		Stats:            r.stats,
	}
	if r.dist[destination] == infinity {
		return res, nil
	}

	path, err := route.Reconstruct(r.prev, source, destination, len(r.vertices))
	if err != nil {
		return route.Result{}, fmt.Errorf("bellmanford: %s→%s: %w", source, destination, err)
	}
	res.Status = route.Found
	res.Path = path
	res.TotalDistance = r.dist[destination]

	return res, nil
}

// runner holds the mutable state for a single Bellman-Ford execution.
type runner struct {
	options  Options
	vertices []string          // sorted vertex IDs
	edges    []*core.Edge      // fixed relaxation order
	dist     map[string]int64  // vertex ID → best distance from source
	prev     map[string]string // vertex ID → predecessor on that best path
	stats    route.Stats
}

func newRunner(g *core.Graph, source string, cfg Options) *runner {
	vertices := g.Vertices()
	r := &runner{
		options:  cfg,
		vertices: vertices,
		edges:    g.Edges(),
		dist:     make(map[string]int64, len(vertices)),
		prev:     make(map[string]string, len(vertices)),
	}
	for _, v := range vertices {
		r.dist[v] = infinity
	}
	r.dist[source] = 0

	return r
}

// run performs the |V|-1 relaxation passes and the optional cycle check.
func (r *runner) run() error {
	for i := 0; i < len(r.vertices)-1; i++ {
		r.stats.Passes++
		if !r.pass(true) && r.options.EarlyExit {
			break
		}
	}

	if r.options.NegativeCycleCheck && r.pass(false) {
		return ErrNegativeCycle
	}

	return nil
}

// pass relaxes every edge once and reports whether anything improved.
// With apply=false it only probes for improvements.
func (r *runner) pass(apply bool) bool {
	improved := false
	for _, e := range r.edges {
		if r.relax(e.From, e.To, e.Weight, apply) {
			improved = true
		}
		if !e.Directed && e.From != e.To && r.relax(e.To, e.From, e.Weight, apply) {
			improved = true
		}
	}

	return improved
}

// relax applies dist[v] = dist[u]+w when that is a strict improvement.
func (r *runner) relax(u, v string, w int64, apply bool) bool {
	du := r.dist[u]
	if du == infinity {
		return false
	}
	// A sum that would overflow is longer than anything representable.
	if w > 0 && du > infinity-w {
		return false
	}
	nd := du + w
	if nd >= r.dist[v] {
		return false
	}
	if apply {
		r.dist[v] = nd
		r.prev[v] = u
		r.stats.Relaxations++
	}

	return true
}
