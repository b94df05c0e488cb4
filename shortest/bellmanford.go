// Bellman-Ford with round early-exit and negative-cycle detection.

package shortest

import (
	"math"

	"github.com/graphforge/graphforge/core"
)

// relaxArc is one directed relaxation candidate. Undirected edges are
// expanded into both orientations before the rounds start.
type relaxArc struct {
	from, to string
	weight   float64
}

// BellmanFord computes a shortest path from source to target, tolerating
// negative edge weights. A negative cycle reachable from the source
// aborts the run with ErrNegativeCycle.
// See the package documentation for the full validation ladder.
// Complexity: O(V · E) time, O(V + E) space.
func BellmanFord(v core.View, source, target string, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1-2) Shared validation ladder.
	vertices, err := validatePair(v, source, target)
	if err != nil {
		return nil, err
	}
	// 4) Identical endpoints short-circuit to the zero result.
	if source == target {
		return trivialResult(vertices, source), nil
	}
	// 5) Independent reachability probe.
	if !reachable(v, source, target) {
		return nil, ErrUnreachable
	}

	dist, prev, err := bellmanFordRun(v, vertices, source, cfg)
	if err != nil {
		return nil, err
	}

	path := reconstructPath(prev, source, target, len(vertices))
	total := dist[target]
	if len(path) == 0 {
		total = math.Inf(1)
	}

	return &Result{
		Distances:     dist,
		Predecessors:  prev,
		Path:          path,
		TotalDistance: total,
	}, nil
}

// BellmanFordFrom computes distances and predecessors from source to
// every reachable vertex. Negative cycles reachable from source yield
// ErrNegativeCycle. Used by Johnson's all-pairs algorithm to compute
// vertex potentials.
// Complexity: O(V · E).
func BellmanFordFrom(v core.View, source string, opts ...Option) (map[string]float64, map[string]string, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if v == nil {
		return nil, nil, ErrNilGraph
	}
	vertices := v.Vertices()
	found := false
	for _, id := range vertices {
		if id == source {
			found = true
			break
		}
	}
	if !found {
		return nil, nil, ErrVertexNotFound
	}

	return bellmanFordRun(v, vertices, source, cfg)
}

// bellmanFordRun is the shared relaxation core.
func bellmanFordRun(v core.View, vertices []string, source string, cfg Options) (map[string]float64, map[string]string, error) {
	// 1) Expand the edge set into directed relaxation arcs; undirected
	// edges relax in both directions.
	directed := v.Directed()
	edges := v.Edges()
	arcs := make([]relaxArc, 0, 2*len(edges))
	for _, e := range edges {
		w := core.EffectiveWeight(e, cfg.UseWeights)
		arcs = append(arcs, relaxArc{from: e.From, to: e.To, weight: w})
		if !directed && e.From != e.To {
			arcs = append(arcs, relaxArc{from: e.To, to: e.From, weight: w})
		}
	}

	dist, prev := initState(vertices, source)

	// 2) |V|-1 relaxation rounds, early-exiting a round with no update.
	for round := 1; round < len(vertices); round++ {
		updated := false
		for _, a := range arcs {
			if math.IsInf(dist[a.from], 1) {
				continue
			}
			if cand := dist[a.from] + a.weight; cand < dist[a.to] {
				dist[a.to] = cand
				prev[a.to] = a.from
				updated = true
			}
		}
		if !updated {
			break
		}
	}

	// 3) One extra round: any remaining improvement proves a negative
	// cycle reachable from source (unreached arcs cannot fire).
	for _, a := range arcs {
		if math.IsInf(dist[a.from], 1) {
			continue
		}
		if dist[a.from]+a.weight < dist[a.to] {
			return nil, nil, ErrNegativeCycle
		}
	}

	return dist, prev, nil
}
