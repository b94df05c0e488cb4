// Shared validation, reachability, and path-reconstruction utilities.

package shortest

import (
	"fmt"
	"math"

	"github.com/graphforge/graphforge/core"
)

// validatePair runs the shared head of the validation ladder and
// returns the vertex list on success.
func validatePair(v core.View, source, target string) ([]string, error) {
	if v == nil {
		return nil, ErrNilGraph
	}
	vertices := v.Vertices()
	if len(vertices) < 2 {
		return nil, ErrInsufficientVertices
	}
	present := make(map[string]bool, len(vertices))
	for _, id := range vertices {
		present[id] = true
	}
	if !present[source] {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, source)
	}
	if !present[target] {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, target)
	}

	return vertices, nil
}

// trivialResult is the source == target short-circuit: a zero-length,
// zero-distance path.
func trivialResult(vertices []string, source string) *Result {
	dist := make(map[string]float64, len(vertices))
	prev := make(map[string]string, len(vertices))
	for _, id := range vertices {
		dist[id] = math.Inf(1)
		prev[id] = ""
	}
	dist[source] = 0

	return &Result{
		Distances:     dist,
		Predecessors:  prev,
		Path:          []string{source},
		TotalDistance: 0,
	}
}

// reachable reports whether target can be reached from source by a
// breadth-first search respecting edge directionality. This check is
// independent of the solvers so that ErrUnreachable is raised before
// any relaxation work starts.
// Complexity: O(V + E).
func reachable(v core.View, source, target string) bool {
	// Neighbor-ID lists honoring direction.
	next := make(map[string][]string)
	directed := v.Directed()
	for _, e := range v.Edges() {
		next[e.From] = append(next[e.From], e.To)
		if !directed && e.From != e.To {
			next[e.To] = append(next[e.To], e.From)
		}
	}

	visited := map[string]bool{source: true}
	queue := []string{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		if u == target {
			return true
		}
		for _, n := range next[u] {
			if !visited[n] {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}

	return false
}

// reconstructPath walks predecessors from target back to source. The
// walk is bounded at n+1 steps: a chain that has not terminated by then
// is cyclic or broken, and the empty path is returned instead.
func reconstructPath(prev map[string]string, source, target string, n int) []string {
	path := []string{target}
	cur := target
	for steps := 0; cur != source; steps++ {
		if steps > n {
			return nil
		}
		cur = prev[cur]
		if cur == "" {
			return nil
		}
		path = append(path, cur)
	}
	// Reverse into source→target order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// scanNegative returns an error naming the first negative-weight edge,
// or nil. Only weighted mode cares: unit pricing can never be negative.
func scanNegative(v core.View) error {
	for _, e := range v.Edges() {
		if e.Weighted && e.Weight < 0 {
			return fmt.Errorf("%w: edge %s (%s→%s) weight=%v",
				ErrNegativeWeight, e.ID, e.From, e.To, e.Weight)
		}
	}

	return nil
}

// initState allocates the distance and predecessor maps for a run.
func initState(vertices []string, source string) (map[string]float64, map[string]string) {
	dist := make(map[string]float64, len(vertices))
	prev := make(map[string]string, len(vertices))
	for _, id := range vertices {
		dist[id] = math.Inf(1)
		prev[id] = ""
	}
	dist[source] = 0

	return dist, prev
}
