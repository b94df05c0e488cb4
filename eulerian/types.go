package eulerian

import "errors"

// ErrNilGraph is returned when the graph view is nil.
var ErrNilGraph = errors.New("eulerian: nil graph")

// Analysis summarizes the degree structure relevant to Eulerian
// traversals.
type Analysis struct {
	// Degrees maps every vertex to its degree, one per incident edge
	// endpoint (self-loops count twice, directed arcs count in+out).
	Degrees map[string]int

	// OddVertices and EvenVertices partition the vertex set by degree
	// parity, each in insertion order.
	OddVertices  []string
	EvenVertices []string

	// Connected reports connectivity over edge-bearing vertices;
	// isolated vertices are ignored.
	Connected bool
}

// Result is the outcome of an Eulerian path search.
type Result struct {
	// Exists reports whether a traversal using every edge exactly once
	// was found.
	Exists bool

	// Path is the vertex sequence of the traversal, one entry per
	// visited vertex including revisits. Empty when Exists is false.
	Path []string

	// Circuit is true when the traversal is closed (first and last
	// vertex coincide).
	Circuit bool

	// OddVertices lists the odd-degree vertices found during analysis,
	// populated on success and failure alike.
	OddVertices []string

	// Reason explains a negative result in one sentence. Empty when
	// Exists is true.
	Reason string
}
