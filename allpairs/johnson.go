package allpairs

import (
	"errors"
	"math"

	"github.com/graphforge/graphforge/core"
	"github.com/graphforge/graphforge/shortest"
)

// JohnsonAllPairs computes all-pairs shortest paths on sparse graphs by
// reweighting: a Bellman-Ford pass from a synthetic super-source yields a
// potential h(v) per vertex, every arc weight becomes
// w'(u,v) = w(u,v) + h(u) - h(v) >= 0, and one Dijkstra run per vertex
// over the reweighted view recovers the true distances as
// d(u,v) = d'(u,v) - h(u) + h(v).
//
// The base view is never mutated: both the super-source augmentation and
// the reweighting are value-struct overlays satisfying core.View.
//
// Complexity: O(V*E + V * (E + V log V)).
func JohnsonAllPairs(v core.View, opts ...Option) (*Result, error) {
	if v == nil {
		return nil, ErrNilGraph
	}
	ids := v.Vertices()
	if len(ids) < 2 {
		return nil, ErrInsufficientVertices
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1. Potentials via Bellman-Ford from a super-source connected to
	//    every vertex by a zero-weight arc. The source ID is bumped
	//    until it cannot collide with a real vertex.
	super := "__johnson__"
	taken := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		taken[id] = struct{}{}
	}
	for {
		if _, dup := taken[super]; !dup {
			break
		}
		super += "_"
	}

	aug := augmentedView{base: v, super: super}
	var bfOpts []shortest.Option
	if !cfg.UseWeights {
		bfOpts = append(bfOpts, shortest.WithUnitWeights())
	}
	h, _, err := shortest.BellmanFordFrom(aug, super, bfOpts...)
	if err != nil {
		if errors.Is(err, shortest.ErrNegativeCycle) {
			return nil, ErrNegativeCycle
		}
		return nil, err
	}

	// 2. Reweighted overlay: all arcs become non-negative, so each
	//    per-source pass can use Dijkstra. Unit pricing is baked into
	//    the overlay, so Dijkstra always runs in weighted mode here.
	rw := reweightedView{base: v, h: h, useWeights: cfg.UseWeights}

	dist := make(map[string]map[string]float64, len(ids))
	prev := make(map[string]map[string]string, len(ids))

	// 3. One Dijkstra per source, then undo the reweighting. Shortest
	//    path trees are identical in both weightings, so predecessors
	//    carry over untouched.
	for _, u := range ids {
		dU, pU, dijErr := shortest.DijkstraFrom(rw, u)
		if dijErr != nil {
			return nil, dijErr
		}
		dist[u] = make(map[string]float64, len(ids))
		prev[u] = pU
		for _, w := range ids {
			d := dU[w]
			if math.IsInf(d, 1) {
				dist[u][w] = math.Inf(1)
				continue
			}
			dist[u][w] = d - h[u] + h[w]
		}
	}

	return &Result{
		Distances:    dist,
		Predecessors: prev,
		Algorithm:    Johnson,
	}, nil
}

// augmentedView overlays a super-source with a zero-weight arc to every
// base vertex. Base edges pass through unchanged.
type augmentedView struct {
	base  core.View
	super string
}

func (a augmentedView) Vertices() []string {
	base := a.base.Vertices()
	out := make([]string, 0, len(base)+1)
	out = append(out, a.super)
	out = append(out, base...)
	return out
}

func (a augmentedView) Edges() []*core.Edge {
	base := a.base.Edges()
	out := make([]*core.Edge, 0, len(base)+len(a.base.Vertices()))
	out = append(out, base...)
	for _, id := range a.base.Vertices() {
		out = append(out, &core.Edge{
			ID:       a.super + "-" + id,
			From:     a.super,
			To:       id,
			Weight:   0,
			Weighted: true,
		})
	}
	return out
}

func (a augmentedView) Directed() bool { return a.base.Directed() }

// reweightedView rewrites every base edge weight to
// EffectiveWeight + h(from) - h(to). Tiny negatives from float
// cancellation are clamped to zero so Dijkstra's validation holds.
type reweightedView struct {
	base       core.View
	h          map[string]float64
	useWeights bool
}

func (r reweightedView) Vertices() []string { return r.base.Vertices() }

func (r reweightedView) Edges() []*core.Edge {
	base := r.base.Edges()
	out := make([]*core.Edge, 0, len(base))
	for _, e := range base {
		w := core.EffectiveWeight(e, r.useWeights) + r.h[e.From] - r.h[e.To]
		if w < 0 {
			w = 0
		}
		out = append(out, &core.Edge{
			ID:       e.ID,
			From:     e.From,
			To:       e.To,
			Weight:   w,
			Weighted: true,
		})
	}
	return out
}

func (r reweightedView) Directed() bool { return r.base.Directed() }
