package mst

import (
	"sort"

	"github.com/graphforge/graphforge/core"
	"github.com/graphforge/graphforge/dsu"
)

// KruskalMST builds a minimum spanning tree by sweeping the edges in
// ascending weight order through a disjoint-set structure and accepting
// every edge that merges two previously separate components.
//
// The sort is stable, so tied edges are considered in insertion order
// and repeated runs over the same graph yield the same tree.
//
// Complexity: O(E log E) for the sort, near-O(E) for the union sweep.
func KruskalMST(v core.View, opts ...Option) (*Result, error) {
	ids, edges, err := validate(v)
	if err != nil {
		return nil, err
	}

	// 1. Snapshot and sort: the view's own edge slice order is left
	//    untouched.
	sorted := make([]*core.Edge, len(edges))
	copy(sorted, edges)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight < sorted[j].Weight
	})

	// 2. Union sweep. Self-loops never merge components, so the
	//    accept test drops them for free.
	sets := dsu.New(ids...)
	need := len(ids) - 1
	res := &Result{
		Edges:     make([]core.Edge, 0, need),
		Algorithm: Kruskal,
	}
	for _, e := range sorted {
		merged, uErr := sets.Union(e.From, e.To)
		if uErr != nil {
			return nil, uErr
		}
		if !merged {
			continue
		}
		res.Edges = append(res.Edges, *e)
		res.TotalWeight += e.Weight
		if len(res.Edges) == need {
			break
		}
	}
	return res, nil
}
