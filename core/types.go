// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Edge, Graph, GraphOption, sentinel errors and NewGraph.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrDuplicateVertex indicates a vertex ID was registered twice with different labels.
	ErrDuplicateVertex = errors.New("core: vertex already registered with a different label")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex is a named place in the graph.
type Vertex struct {
	// ID uniquely identifies this Vertex within its Graph.
	ID string

	// Label is the human-readable name shown to users.
	Label string
}

// Edge is a weighted connection From→To.
//
// Directed is copied from the graph default at insertion. An undirected edge
// is stored once in the edge list and mirrored in the adjacency of To.
type Edge struct {
	ID       string // sequence ID, "e1", "e2", …
	From     string // source vertex ID
	To       string // target vertex ID
	Weight   int64  // distance in meters for the campus map
	Directed bool   // one-way (true) or bidirectional (false)
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness of all new edges.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the in-memory graph data structure.
//
// muVert protects vertices; muEdgeAdj protects edges and adjacency.
// Lock order is always muVert -> muEdgeAdj.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges, edgeIndex and adjacency

	// Configuration flags, immutable after NewGraph.
	directed   bool
	weighted   bool
	allowMulti bool
	allowLoops bool

	// Storage
	edgeSeq    uint64             // edge ID sequence
	vertices   map[string]*Vertex // vertex ID → Vertex
	edges      []*Edge            // insertion order
	edgeIndex  map[string]*Edge   // edge ID → Edge

	// adjacency[from] lists the edges usable from "from", in insertion order.
	// Undirected edges appear under both endpoints.
	adjacency map[string][]*Edge
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is undirected, unweighted, no loops, no multi-edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]*Vertex),
		edgeIndex: make(map[string]*Edge),
		adjacency: make(map[string][]*Edge),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// GraphStats is a read-only snapshot of configuration flags and sizes.
type GraphStats struct {
	Directed    bool
	Weighted    bool
	AllowsMulti bool
	AllowsLoops bool
	VertexCount int
	EdgeCount   int
	LoopCount   int   // edges with From == To
	TotalWeight int64 // sum of all edge weights
}
