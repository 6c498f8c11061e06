// Package route holds the result type shared by the shortest-path engines
// and the predecessor-chain walk that turns their tables into a path.
//
// A Result is either Found (Path + TotalDistance) or Unreachable. Being
// unreachable is a normal outcome, not an error.
package route

import (
	"errors"
	"fmt"
	"slices"
)

// ErrBrokenChain indicates a predecessor table whose chain from the
// destination does not reach the source within |V| steps.
var ErrBrokenChain = errors.New("route: predecessor chain does not reach source")

// Status tells whether a query found a path.
type Status int

const (
	// Unreachable means the destination has no finite path from the source.
	Unreachable Status = iota
	// Found means Path and TotalDistance are set.
	Found
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case Found:
		return "found"
	case Unreachable:
		return "unreachable"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Stats counts the work done by one engine run.
type Stats struct {
	Passes      int // full passes over the edge list (Bellman-Ford) or heap pops (Dijkstra)
	Relaxations int // strict improvements applied to the distance table
}

// Result is the outcome of one source→destination query.
type Result struct {
	Status           Status
	Source           string
	Destination      string
	SourceLabel      string
	DestinationLabel string

	// Path lists vertex IDs from Source to Destination inclusive. Nil when Unreachable.
	Path []string

	// TotalDistance is the summed weight of Path. Zero when Unreachable.
	TotalDistance int64

	Stats Stats
}

// Found reports whether the result carries a path.
func (r Result) Found() bool { return r.Status == Found }

// Reconstruct walks prev from destination back to source and returns the
// path in source→destination order.
//
// The walk stops on reaching source. It takes at most limit steps (callers
// pass |V|); a missing predecessor or an exhausted limit yields
// ErrBrokenChain.
//
// Complexity: O(path length).
func Reconstruct(prev map[string]string, source, destination string, limit int) ([]string, error) {
	path := []string{destination}
	at := destination
	for steps := 0; at != source; steps++ {
		if steps >= limit {
			return nil, fmt.Errorf("%w: gave up after %d steps from %q", ErrBrokenChain, limit, destination)
		}
		p, ok := prev[at]
		if !ok || p == "" {
			return nil, fmt.Errorf("%w: %q has no predecessor", ErrBrokenChain, at)
		}
		path = append(path, p)
		at = p
	}
	slices.Reverse(path)

	return path, nil
}
