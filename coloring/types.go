package coloring

import "errors"

// ErrNilGraph is returned when the graph view is nil.
var ErrNilGraph = errors.New("coloring: nil graph")

// Result is a complete proper coloring of a graph.
type Result struct {
	// Coloring maps every vertex ID to its color index, 0-based and
	// dense: every index below NumColors is used by some vertex.
	Coloring map[string]int

	// NumColors is the number of distinct colors used.
	NumColors int

	// ColorClasses groups vertex IDs by color, indexed by color, each
	// class sorted by vertex ID.
	ColorClasses [][]string
}

// Bounds brackets the chromatic number of a graph.
type Bounds struct {
	// Lower is the size of a greedily grown clique. It is a valid
	// lower bound, not the clique number.
	Lower int

	// Upper is max degree + 1, always achievable by greedy coloring.
	Upper int
}
