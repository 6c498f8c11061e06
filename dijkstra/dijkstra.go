package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/route"
)

// ShortestPath returns a minimum-total-weight path from source to
// destination in g, or an Unreachable result when none exists within
// MaxDistance.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrBadMaxDistance).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain source and destination (ErrVertexNotFound).
//  4. No edge in g can have negative weight (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func ShortestPath(g *core.Graph, source, destination string, opts ...Option) (route.Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return route.Result{}, cfg.err
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

	// Pre-scan all edges to detect negative weights. Fail fast.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return route.Result{}, fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	vertices := g.Vertices()
	r := &runner{
		g:           g,
		options:     cfg,
		destination: destination,
		dist:        make(map[string]int64, len(vertices)),
		prev:        make(map[string]string, len(vertices)),
		visited:     make(map[string]bool, len(vertices)),
		pq:          make(nodePQ, 0, len(vertices)),
	}
	r.init(vertices, source)
	if err := r.process(); err != nil {
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
	if r.dist[destination] == math.MaxInt64 {
		return res, nil
	}

	path, err := route.Reconstruct(r.prev, source, destination, len(vertices))
	if err != nil {
		return route.Result{}, fmt.Errorf("dijkstra: %s→%s: %w", source, destination, err)
	}
	res.Status = route.Found
	res.Path = path
	res.TotalDistance = r.dist[destination]

	return res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g           *core.Graph       // read-only within ShortestPath
	options     Options           // distance cap
	destination string            // search stops once this is settled
	dist        map[string]int64  // vertex ID → current best distance from source
	prev        map[string]string // vertex ID → predecessor on the shortest path
	visited     map[string]bool   // vertex distance is final
	pq          nodePQ            // min-heap of *nodeItem
	stats       route.Stats
}

// init sets dist[v]=+∞ for all v, dist[source]=0 and pushes source.
func (r *runner) init(vertices []string, source string) {
	for _, v := range vertices {
		r.dist[v] = math.MaxInt64
	}
	r.dist[source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: source, dist: 0})
}

// process repeatedly settles the closest vertex and relaxes its edges.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable vertices processed).
//   - The destination is settled.
//   - The minimum distance in the heap exceeds MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true
		r.stats.Passes++
		if u == r.destination {
			return nil
		}
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each edge leaving u and improves neighbor distances.
// Assumes r.dist[u] is final.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	for _, e := range neighbors {
		// Directed edges stored under u always start at u; undirected ones may be mirrored.
		v := e.Other(u)
		newDist := r.dist[u] + e.Weight
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strict "<" keeps the first predecessor found among equal distances.
		if newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u
		r.stats.Relaxations++
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}

	return nil
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id   string
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then id for determinism.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, breaking ties by vertex ID.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; heap.Pop has already moved the minimum there.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
