package bellmanford

import "errors"

// Sentinel errors returned by ShortestPath.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("bellmanford: graph is nil")

	// ErrVertexNotFound indicates that the source or destination is not in the graph.
	ErrVertexNotFound = errors.New("bellmanford: vertex not found in graph")

	// ErrNegativeCycle indicates a negative-weight cycle reachable from the source.
	ErrNegativeCycle = errors.New("bellmanford: negative cycle reachable from source")
)

// Options configures ShortestPath.
type Options struct {
	// NegativeCycleCheck runs one extra relaxation pass after the |V|-1 passes.
	NegativeCycleCheck bool

	// EarlyExit stops relaxing once a full pass makes no improvement.
	EarlyExit bool
}

// Option represents a functional option for configuring ShortestPath.
type Option func(*Options)

// WithNegativeCycleCheck enables the extra detection pass.
func WithNegativeCycleCheck() Option {
	return func(o *Options) {
		o.NegativeCycleCheck = true
	}
}

// WithEarlyExit stops after the first pass without improvements.
func WithEarlyExit() Option {
	return func(o *Options) {
		o.EarlyExit = true
	}
}

// DefaultOptions returns the plain algorithm: exactly |V|-1 passes, no
// negative-cycle check.
func DefaultOptions() Options {
	return Options{}
}
