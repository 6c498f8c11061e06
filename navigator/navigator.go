package navigator

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/campusnav/bellmanford"
	"github.com/katalvlaran/campusnav/bfs"
	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/dijkstra"
	"github.com/katalvlaran/campusnav/route"
)

var (
	// ErrInvalidNodeID indicates a node ID that is not on the map.
	ErrInvalidNodeID = errors.New("navigator: invalid node ID")

	// ErrUnknownAlgorithm indicates an engine name other than the supported ones.
	ErrUnknownAlgorithm = errors.New("navigator: unknown algorithm")

	// ErrNilGraph indicates that New was given no graph.
	ErrNilGraph = errors.New("navigator: graph is nil")
)

// Algorithm names a shortest-path engine.
type Algorithm string

const (
	// BellmanFord relaxes every edge |V|-1 times.
	BellmanFord Algorithm = "bellman-ford"
	// Dijkstra settles vertices from a min-heap; weights must be non-negative.
	Dijkstra Algorithm = "dijkstra"
)

// ParseAlgorithm maps a user-supplied name to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch a := Algorithm(strings.ToLower(strings.TrimSpace(name))); a {
	case BellmanFord, Dijkstra:
		return a, nil
	case "bellmanford", "bf":
		return BellmanFord, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithAlgorithm selects the engine used by Route.
func WithAlgorithm(a Algorithm) Option {
	return func(n *Navigator) { n.algorithm = a }
}

// WithLogger sets the logger for query tracing. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(n *Navigator) {
		if l != nil {
			n.log = l
		}
	}
}

// WithNegativeCycleCheck makes the Bellman-Ford engine run its detection pass.
func WithNegativeCycleCheck(enabled bool) Option {
	return func(n *Navigator) { n.negCycleCheck = enabled }
}

// WithUnit sets the distance unit printed by FormatResult. Empty keeps "meters".
func WithUnit(unit string) Option {
	return func(n *Navigator) {
		if unit != "" {
			n.unit = unit
		}
	}
}

// Navigator answers route and reachability queries over one campus graph.
type Navigator struct {
	graph         *core.Graph
	algorithm     Algorithm
	negCycleCheck bool
	log           *slog.Logger
	unit          string
}

// New returns a Navigator over g. The graph must not be modified afterwards.
func New(g *core.Graph, opts ...Option) (*Navigator, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	n := &Navigator{
		graph:     g,
		algorithm: BellmanFord,
		log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		unit:      "meters",
	}
	for _, opt := range opts {
		opt(n)
	}
	if _, err := ParseAlgorithm(string(n.algorithm)); err != nil {
		return nil, err
	}

	return n, nil
}

// Algorithm reports the engine in use.
func (n *Navigator) Algorithm() Algorithm { return n.algorithm }

// Unit reports the distance unit used in formatted results.
func (n *Navigator) Unit() string { return n.unit }

// Nodes lists every place on the map sorted by ID.
func (n *Navigator) Nodes() []core.Vertex {
	return n.graph.VertexList()
}

// Node returns the place with the given ID, ignoring surrounding whitespace.
func (n *Navigator) Node(id string) (core.Vertex, error) {
	id = strings.TrimSpace(id)
	v, err := n.graph.Vertex(id)
	if err != nil {
		return core.Vertex{}, fmt.Errorf("%w: %q", ErrInvalidNodeID, id)
	}

	return v, nil
}

// Route computes the shortest path between two node IDs.
//
// Both IDs are validated before the engine runs; an unknown ID yields an
// error wrapping ErrInvalidNodeID. An unreachable destination is reported
// through the result's Status, not as an error.
func (n *Navigator) Route(from, to string) (route.Result, error) {
	src, err := n.Node(from)
	if err != nil {
		return route.Result{}, err
	}
	dst, err := n.Node(to)
	if err != nil {
		return route.Result{}, err
	}

	var res route.Result
	switch n.algorithm {
	case Dijkstra:
		res, err = dijkstra.ShortestPath(n.graph, src.ID, dst.ID)
	default:
		var opts []bellmanford.Option
		if n.negCycleCheck {
			opts = append(opts, bellmanford.WithNegativeCycleCheck())
		}
		res, err = bellmanford.ShortestPath(n.graph, src.ID, dst.ID, opts...)
	}
	if err != nil {
		n.log.Error("route query failed",
			slog.String("from", src.ID), slog.String("to", dst.ID),
			slog.String("algorithm", string(n.algorithm)), slog.Any("err", err))

		return route.Result{}, fmt.Errorf("navigator: route %s -> %s: %w", src.ID, dst.ID, err)
	}

	n.log.Debug("route query",
		slog.String("from", src.ID), slog.String("to", dst.ID),
		slog.String("algorithm", string(n.algorithm)),
		slog.String("status", res.Status.String()),
		slog.Int64("distance", res.TotalDistance),
		slog.Int("passes", res.Stats.Passes),
		slog.Int("relaxations", res.Stats.Relaxations))

	return res, nil
}

// Reachable lists the places reachable from the given node, in
// breadth-first order. The start node itself is not included.
func (n *Navigator) Reachable(from string) ([]core.Vertex, error) {
	src, err := n.Node(from)
	if err != nil {
		return nil, err
	}
	ids, err := bfs.Reachable(n.graph, src.ID)
	if err != nil {
		return nil, fmt.Errorf("navigator: reachable from %s: %w", src.ID, err)
	}
	out := make([]core.Vertex, 0, len(ids))
	for _, id := range ids {
		out = append(out, core.Vertex{ID: id, Label: n.graph.Label(id)})
	}
	n.log.Debug("reachability query", slog.String("from", src.ID), slog.Int("count", len(out)))

	return out, nil
}
