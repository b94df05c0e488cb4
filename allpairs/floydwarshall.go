// Floyd-Warshall with deterministic k→i→j loop order.

package allpairs

import (
	"math"

	"github.com/graphforge/graphforge/core"
)

// Run validates the view and dispatches to the tagged solver. The
// Algorithm set is closed, so the default arm is unreachable from
// outside the package.
func Run(v core.View, algorithm Algorithm, opts ...Option) (*Result, error) {
	switch algorithm {
	case Johnson:
		return JohnsonAllPairs(v, opts...)
	default:
		return FloydWarshallAllPairs(v, opts...)
	}
}

// FloydWarshallAllPairs computes every pairwise shortest distance with
// the classic triple loop. Reports ErrNegativeCycle when any vertex
// ends up with a negative self-distance.
// Complexity: O(V³) time, O(V²) space.
func FloydWarshallAllPairs(v core.View, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if v == nil {
		return nil, ErrNilGraph
	}
	vertices := v.Vertices()
	if len(vertices) < 2 {
		return nil, ErrInsufficientVertices
	}

	// 1) Seed: 0 on the diagonal, direct edge weights (cheapest parallel
	// edge wins, both directions for undirected), +Inf elsewhere.
	dist := make(map[string]map[string]float64, len(vertices))
	prev := make(map[string]map[string]string, len(vertices))
	for _, i := range vertices {
		dist[i] = make(map[string]float64, len(vertices))
		prev[i] = make(map[string]string, len(vertices))
		for _, j := range vertices {
			if i == j {
				dist[i][j] = 0
			} else {
				dist[i][j] = math.Inf(1)
			}
			prev[i][j] = ""
		}
	}
	directed := v.Directed()
	// Diagonal entries stay 0 unless a negative self-loop undercuts
	// them, which the final scan then reports as a negative cycle.
	seed := func(from, to string, w float64) {
		if w < dist[from][to] {
			dist[from][to] = w
			prev[from][to] = from
		}
	}
	for _, e := range v.Edges() {
		w := core.EffectiveWeight(e, cfg.UseWeights)
		seed(e.From, e.To, w)
		if !directed {
			seed(e.To, e.From, w)
		}
	}

	// 2) Relax through every intermediate k in fixed order.
	for _, k := range vertices {
		for _, i := range vertices {
			ik := dist[i][k]
			if math.IsInf(ik, 1) {
				continue
			}
			for _, j := range vertices {
				if cand := ik + dist[k][j]; cand < dist[i][j] {
					dist[i][j] = cand
					prev[i][j] = prev[k][j]
				}
			}
		}
	}

	// 3) A negative self-distance certifies a negative cycle.
	for _, i := range vertices {
		if dist[i][i] < 0 {
			return nil, ErrNegativeCycle
		}
	}

	return &Result{Distances: dist, Predecessors: prev, Algorithm: FloydWarshall}, nil
}
