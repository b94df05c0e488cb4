package hamiltonian

import "errors"

// ErrNilGraph is returned when the graph view is nil.
var ErrNilGraph = errors.New("hamiltonian: nil graph")

// DefaultMaxVertices is the search ceiling: larger graphs are refused
// rather than searched, bounding worst-case backtracking cost.
const DefaultMaxVertices = 15

// Options configures a Hamiltonian search.
type Options struct {
	// MaxVertices is the refusal ceiling. Zero or negative falls back
	// to DefaultMaxVertices.
	MaxVertices int
}

// Option mutates Options.
type Option func(*Options)

// WithMaxVertices overrides the search ceiling. Raising it is an
// explicit opt-in to exponential worst-case cost.
func WithMaxVertices(n int) Option {
	return func(o *Options) { o.MaxVertices = n }
}

// DefaultOptions returns the baseline configuration.
func DefaultOptions() Options {
	return Options{MaxVertices: DefaultMaxVertices}
}

// Stats counts search effort, reported regardless of outcome.
type Stats struct {
	// NodesExplored is the number of partial-path extensions tried.
	NodesExplored int

	// Backtracks is the number of dead ends unwound.
	Backtracks int

	// MaxDepth is the longest partial path reached, in vertices.
	MaxDepth int
}

// Result is the outcome of a Hamiltonian search.
type Result struct {
	// Found reports whether a Hamiltonian path exists (and was built).
	Found bool

	// Path is the vertex sequence visiting every vertex once. For a
	// cycle the closing edge back to Path[0] is implied, not repeated.
	Path []string

	// Cycle is true when the path's endpoints are adjacent, closing a
	// Hamiltonian cycle.
	Cycle bool

	// Reason explains refusals and failures, and cites Dirac's or
	// Ore's theorem when one guaranteed the cycle up front.
	Reason string

	// Stats is the search effort. Zero when the search was refused.
	Stats Stats
}
