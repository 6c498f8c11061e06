// Package campus supplies the fixed campus map compiled into campusnav.
//
// The map lives in campus.yaml next to this file and is embedded at build
// time; nothing is read from disk at runtime. Load decodes it once into an
// immutable core.Graph that the caller owns for the rest of the process.
package campus

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/campusnav/core"
)

//go:embed campus.yaml
var campusYAML []byte

// ErrInvalidMap indicates a map document that cannot form a valid graph.
var ErrInvalidMap = errors.New("campus: invalid map")

// Map is the decoded form of a campus map document.
type Map struct {
	Name  string     `yaml:"name"`
	Unit  string     `yaml:"unit"`
	Nodes []NodeSpec `yaml:"nodes"`
	Edges []EdgeSpec `yaml:"edges"`
}

// NodeSpec is one place on the map.
type NodeSpec struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
}

// EdgeSpec is one one-way segment between two places.
type EdgeSpec struct {
	From     string `yaml:"from"`
	To       string `yaml:"to"`
	Distance int64  `yaml:"distance"`
}

// Parse decodes a map document. Unknown fields are rejected.
func Parse(data []byte) (*Map, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var m Map
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMap, err)
	}
	if len(m.Nodes) == 0 {
		return nil, fmt.Errorf("%w: no nodes", ErrInvalidMap)
	}
	if m.Unit == "" {
		m.Unit = "meters"
	}

	return &m, nil
}

// Graph builds a directed, weighted graph from m. Edges keep document
// order. Loops and parallel segments are allowed; negative distances are
// not.
func (m *Map) Graph() (*core.Graph, error) {
	g := core.NewGraph(
		core.WithDirected(true),
		core.WithWeighted(),
		core.WithLoops(),
		core.WithMultiEdges(),
	)
	for _, n := range m.Nodes {
		if err := g.AddVertex(n.ID, n.Label); err != nil {
			return nil, fmt.Errorf("%w: node %q: %w", ErrInvalidMap, n.ID, err)
		}
	}
	for i, e := range m.Edges {
		if e.Distance < 0 {
			return nil, fmt.Errorf("%w: edge #%d %s→%s has negative distance %d", ErrInvalidMap, i+1, e.From, e.To, e.Distance)
		}
		if _, err := g.AddEdge(e.From, e.To, e.Distance); err != nil {
			return nil, fmt.Errorf("%w: edge #%d: %w", ErrInvalidMap, i+1, err)
		}
	}

	return g, nil
}

// Default returns the decoded embedded campus map.
func Default() (*Map, error) {
	return Parse(campusYAML)
}

// Load returns the embedded campus map as a graph.
func Load() (*core.Graph, error) {
	m, err := Default()
	if err != nil {
		return nil, err
	}

	return m.Graph()
}
