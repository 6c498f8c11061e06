// File: methods_vertices.go
// Role: Vertex registration & queries.
//
// Determinism:
//   - Vertices() and VertexList() are sorted by ID ascending.
//
// Concurrency:
//   - Vertex catalog protected by muVert.

package core

import (
	"fmt"
	"sort"
)

// AddVertex registers a vertex with its display label.
//
// Re-registering an ID with the same label is a no-op; with a different
// label it returns ErrDuplicateVertex, since vertices never change once
// created.
//
// Complexity: O(1) amortized.
// Concurrency: write lock on muVert, then muEdgeAdj for the adjacency slot.
func (g *Graph) AddVertex(id, label string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if v, exists := g.vertices[id]; exists {
		if v.Label == label {
			return nil
		}
		return fmt.Errorf("%w: %q is %q, not %q", ErrDuplicateVertex, id, v.Label, label)
	}
	g.vertices[id] = &Vertex{ID: id, Label: label}

	g.muEdgeAdj.Lock()
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = nil
	}
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns a copy of the vertex with the given ID.
// Complexity: O(1).
func (g *Graph) Vertex(id string) (Vertex, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return Vertex{}, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return *v, nil
}

// Label returns the display label of id, or id itself when the vertex is
// unknown or has no label.
func (g *Graph) Label(id string) string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if v, ok := g.vertices[id]; ok && v.Label != "" {
		return v.Label
	}

	return id
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexList returns copies of all vertices sorted by ID ascending.
// Complexity: O(V log V).
func (g *Graph) VertexList() []Vertex {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	out := make([]Vertex, 0, len(g.vertices))
	for _, v := range g.vertices {
		out = append(out, *v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}
