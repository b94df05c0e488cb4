// Dijkstra's algorithm with a lazy-decrease-key min-heap.

package shortest

import (
	"math"

	"github.com/graphforge/graphforge/core"
	"github.com/graphforge/graphforge/pqueue"
)

// Dijkstra computes a shortest path from source to target.
// Requires non-negative weights in weighted mode (ErrNegativeWeight);
// stops exploring as soon as the target's distance is finalized.
// See the package documentation for the full validation ladder.
// Complexity: O((V + E) log V) time, O(V + E) space.
func Dijkstra(v core.View, source, target string, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1-2) Shared validation ladder.
	vertices, err := validatePair(v, source, target)
	if err != nil {
		return nil, err
	}
	// 3) Fail fast on any negative weight; unit mode cannot go negative.
	if cfg.UseWeights {
		if err = scanNegative(v); err != nil {
			return nil, err
		}
	}
	// 4) Identical endpoints short-circuit to the zero result.
	if source == target {
		return trivialResult(vertices, source), nil
	}
	// 5) Independent reachability probe.
	if !reachable(v, source, target) {
		return nil, ErrUnreachable
	}

	dist, prev := initState(vertices, source)
	dist[source] = 0

	adj := core.AdjacencyList(v)
	visited := make(map[string]bool, len(vertices))

	// Lazy decrease-key: shorter rediscoveries are pushed as duplicates
	// and stale entries are skipped on pop. The heap breaks priority
	// ties arbitrarily; correctness does not depend on tie order.
	frontier := pqueue.NewMin[string]()
	frontier.Enqueue(source, 0)

	for frontier.Len() > 0 {
		d, _ := frontier.PeekPriority()
		u, _ := frontier.Dequeue()
		if visited[u] {
			continue
		}
		visited[u] = true
		// Early stop: the target's distance is final once popped.
		if u == target {
			break
		}

		for _, e := range adj[u] {
			// Directed edges in the adjacency list always originate at u;
			// undirected ones may be stored in either orientation.
			n := e.Other(u)
			if visited[n] {
				continue
			}
			cand := d + core.EffectiveWeight(e, cfg.UseWeights)
			if cand < dist[n] {
				dist[n] = cand
				prev[n] = u
				frontier.Enqueue(n, cand)
			}
		}
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

// DijkstraFrom computes distances and predecessors from source to every
// reachable vertex, with no target-specific validation or early stop.
// Negative weights are rejected in weighted mode. Used by Johnson's
// all-pairs algorithm.
// Complexity: O((V + E) log V).
func DijkstraFrom(v core.View, source string, opts ...Option) (map[string]float64, map[string]string, error) {
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
	if cfg.UseWeights {
		if err := scanNegative(v); err != nil {
			return nil, nil, err
		}
	}

	dist, prev := initState(vertices, source)
	adj := core.AdjacencyList(v)
	visited := make(map[string]bool, len(vertices))

	frontier := pqueue.NewMin[string]()
	frontier.Enqueue(source, 0)
	for frontier.Len() > 0 {
		d, _ := frontier.PeekPriority()
		u, _ := frontier.Dequeue()
		if visited[u] {
			continue
		}
		visited[u] = true
		for _, e := range adj[u] {
			n := e.Other(u)
			if visited[n] {
				continue
			}
			cand := d + core.EffectiveWeight(e, cfg.UseWeights)
			if cand < dist[n] {
				dist[n] = cand
				prev[n] = u
				frontier.Enqueue(n, cand)
			}
		}
	}

	return dist, prev, nil
}
