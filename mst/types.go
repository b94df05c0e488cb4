package mst

import (
	"errors"

	"github.com/graphforge/graphforge/core"
)

var (
	// ErrNilGraph is returned when the graph view is nil.
	ErrNilGraph = errors.New("mst: nil graph")

	// ErrDirectedGraph is returned for directed inputs; spanning trees
	// are defined here over undirected graphs only.
	ErrDirectedGraph = errors.New("mst: directed graphs are not supported")

	// ErrInsufficientVertices is returned for graphs with fewer than
	// two vertices.
	ErrInsufficientVertices = errors.New("mst: graph needs at least 2 vertices")

	// ErrMissingWeights is returned when any edge lacks an explicit
	// weight; an MST over partially weighted edges is not well defined.
	ErrMissingWeights = errors.New("mst: all edges must carry a weight")

	// ErrNotConnected is returned when the graph has no spanning tree
	// because it is disconnected.
	ErrNotConnected = errors.New("mst: graph is not connected")

	// ErrUnknownRoot is returned when WithRoot names a vertex that is
	// not in the graph.
	ErrUnknownRoot = errors.New("mst: root vertex not found")
)

// Algorithm selects the spanning-tree construction strategy.
type Algorithm int

const (
	// Kruskal sorts all edges and merges components with a
	// disjoint-set structure.
	Kruskal Algorithm = iota

	// Prim grows one tree from a root using a frontier min-heap.
	Prim
)

// String implements fmt.Stringer.
func (a Algorithm) String() string {
	switch a {
	case Prim:
		return "prim"
	default:
		return "kruskal"
	}
}

// Options configures a spanning-tree run.
type Options struct {
	// Root is the start vertex for Prim. Empty means the first vertex
	// in insertion order. Kruskal ignores it.
	Root string
}

// Option mutates Options.
type Option func(*Options)

// WithRoot fixes Prim's start vertex.
func WithRoot(id string) Option {
	return func(o *Options) { o.Root = id }
}

// DefaultOptions returns the baseline configuration: arbitrary root.
func DefaultOptions() Options {
	return Options{}
}

// Result is the outcome of a spanning-tree computation.
type Result struct {
	// Edges are value copies of the accepted tree edges, in acceptance
	// order. Always exactly |V|-1 entries.
	Edges []core.Edge

	// TotalWeight is the sum of accepted edge weights.
	TotalWeight float64

	// Algorithm records which strategy produced this tree.
	Algorithm Algorithm
}
