// This file declares Vertex, Edge, Graph, GraphOption, sentinel errors,
// and the NewGraph constructor.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrDuplicateID indicates that an explicit vertex ID is already
	// present in the graph or reserved by the allocator.
	ErrDuplicateID = errors.New("core: vertex ID already in use")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// Vertex represents a node in the graph.
//
// ID uniquely identifies this Vertex within its Graph.
// Metadata stores arbitrary key-value data (for example the interchange
// color tag) and is shared on shallow clones.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Metadata stores arbitrary user data. It is not deep-copied by Clone.
	Metadata map[string]interface{}
}

// Edge represents a connection between two vertices.
//
// Each Edge keeps its original From→To orientation even in undirected
// graphs, where the pair is treated as one logical connection for
// traversal purposes.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the cost of the edge. Meaningful only when Weighted is true.
	Weight float64

	// Weighted reports whether a weight was ever assigned to this edge.
	// Weightless edges are valid data; algorithms that require weights
	// reject them, algorithms running in weighted mode price them at 1.
	Weighted bool
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness of the graph (true = directed,
// false = undirected). The flag is fixed for the graph's lifetime.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// Graph is the core in-memory multigraph.
//
// muVert protects the vertex catalog and the vertex allocator;
// muEdgeAdj protects edges, adjacency, and the edge-key allocator.
// Lock order is muVert -> muEdgeAdj to avoid inversion.
type Graph struct {
	muVert    sync.RWMutex // guards vertices, vertexOrder, vertexNames
	muEdgeAdj sync.RWMutex // guards edges, edgeOrder, adjacency, edgeNames

	// directed is the single mode flag, fixed at construction.
	directed bool

	// Storage. Order slices carry insertion order for deterministic
	// enumeration; the maps carry the catalog itself.
	vertices    map[string]*Vertex
	vertexOrder []string
	edges       map[string]*Edge
	edgeOrder   []string

	// adjacency[from][to][edgeID] = struct{}{}
	adjacency map[string]map[string]map[string]struct{}

	// Per-instance identifier allocators (no process-global state).
	vertexNames *vertexNamer
	edgeNames   *edgeNamer
}

// NewGraph creates an empty Graph with the given options.
// By default the Graph is undirected.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:    make(map[string]*Vertex),
		edges:       make(map[string]*Edge),
		adjacency:   make(map[string]map[string]map[string]struct{}),
		vertexNames: newVertexNamer(),
	}
	for _, opt := range opts {
		opt(g)
	}
	// The edge namer needs the final directedness flag: undirected graphs
	// normalize endpoint order before deriving the canonical key.
	g.edgeNames = newEdgeNamer(g.directed)

	return g
}
