// Sentinel errors, options, the Algorithm tag, and the Result type.

package allpairs

import "errors"

// Sentinel errors returned by the all-pairs solvers.
var (
	// ErrNilGraph indicates that a nil view was passed.
	ErrNilGraph = errors.New("allpairs: graph is nil")

	// ErrInsufficientVertices indicates the graph holds fewer than two
	// vertices, so no pair can be posed.
	ErrInsufficientVertices = errors.New("allpairs: graph needs at least two vertices")

	// ErrNegativeCycle indicates a negative cycle was detected.
	ErrNegativeCycle = errors.New("allpairs: negative cycle detected")
)

// Algorithm tags which solver produced a Result. The set is closed:
// an unknown tag cannot be constructed outside this package's API.
type Algorithm int

const (
	// FloydWarshall is the O(V³) dense matrix solver.
	FloydWarshall Algorithm = iota
	// Johnson is the reweighting solver built on Bellman-Ford and Dijkstra.
	Johnson
)

// String returns the conventional lowercase solver name.
func (a Algorithm) String() string {
	switch a {
	case FloydWarshall:
		return "floyd-warshall"
	case Johnson:
		return "johnson"
	default:
		return "unknown"
	}
}

// Options configures a solver run.
type Options struct {
	// UseWeights prices edges at their stored weight (weightless edges
	// at 1). When false every edge costs 1.
	UseWeights bool
}

// Option is a functional option for both solvers.
type Option func(*Options)

// WithUnitWeights makes the solver treat every edge as weight 1.
func WithUnitWeights() Option {
	return func(o *Options) { o.UseWeights = false }
}

// DefaultOptions returns the default configuration: stored weights in
// effect.
func DefaultOptions() Options {
	return Options{UseWeights: true}
}

// Result holds the pairwise distance and predecessor matrices.
type Result struct {
	// Distances[u][v] is the shortest distance u→v; +Inf marks
	// unreachable pairs, 0 the diagonal.
	Distances map[string]map[string]float64

	// Predecessors[u][v] is the vertex preceding v on a shortest path
	// from u; "" marks the diagonal and unreachable pairs.
	Predecessors map[string]map[string]string

	// Algorithm tags the solver that produced this result.
	Algorithm Algorithm
}

// Path reconstructs the source→target vertex sequence from the
// predecessor matrix. Returns nil for unknown endpoints, unreachable
// pairs, or a predecessor chain that fails its cycle guard; returns
// the single-vertex path when source == target.
func (r *Result) Path(source, target string) []string {
	row, ok := r.Predecessors[source]
	if !ok {
		return nil
	}
	if _, ok = r.Predecessors[target]; !ok {
		return nil
	}
	if source == target {
		return []string{source}
	}

	// Walk back from target, bounded at |V|+1 steps.
	n := len(r.Predecessors)
	path := []string{target}
	cur := target
	for steps := 0; cur != source; steps++ {
		if steps > n {
			return nil
		}
		cur = row[cur]
		if cur == "" {
			return nil
		}
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
