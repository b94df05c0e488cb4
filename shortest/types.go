// Sentinel errors, options, and the Result type shared by both solvers.

package shortest

import "errors"

// Sentinel errors returned by the shortest-path solvers.
var (
	// ErrNilGraph indicates that a nil view was passed.
	ErrNilGraph = errors.New("shortest: graph is nil")

	// ErrInsufficientVertices indicates the graph holds fewer than two
	// vertices, so no source/target pair can be posed.
	ErrInsufficientVertices = errors.New("shortest: graph needs at least two vertices")

	// ErrVertexNotFound indicates the source or target vertex is absent.
	ErrVertexNotFound = errors.New("shortest: vertex not found in graph")

	// ErrNegativeWeight indicates a negative edge weight was detected;
	// Dijkstra requires non-negative weights.
	ErrNegativeWeight = errors.New("shortest: negative edge weight unsupported")

	// ErrUnreachable indicates the target cannot be reached from the
	// source respecting edge directionality.
	ErrUnreachable = errors.New("shortest: target unreachable from source")

	// ErrNegativeCycle indicates a negative cycle reachable from the
	// source was detected by Bellman-Ford.
	ErrNegativeCycle = errors.New("shortest: negative cycle detected")
)

// Options configures a solver run.
type Options struct {
	// UseWeights prices edges at their stored weight (weightless edges
	// at 1). When false every edge costs 1.
	UseWeights bool
}

// Option is a functional option for both solvers.
type Option func(*Options)

// WithUnitWeights makes the solver treat every edge as weight 1,
// regardless of stored weights.
func WithUnitWeights() Option {
	return func(o *Options) { o.UseWeights = false }
}

// DefaultOptions returns the default configuration: stored weights in
// effect.
func DefaultOptions() Options {
	return Options{UseWeights: true}
}

// Result is the outcome of a successful source→target query.
type Result struct {
	// Distances maps every vertex to its best-known distance from the
	// source; +Inf marks vertices the solver never reached.
	Distances map[string]float64

	// Predecessors maps each reached vertex to the vertex preceding it
	// on a shortest path; "" marks the source and unreached vertices.
	Predecessors map[string]string

	// Path is the reconstructed source→target vertex sequence, empty if
	// reconstruction failed its cycle guard.
	Path []string

	// TotalDistance is the length of Path under the run's edge pricing.
	TotalDistance float64
}
