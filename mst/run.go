package mst

import (
	"github.com/graphforge/graphforge/connectivity"
	"github.com/graphforge/graphforge/core"
)

// Run dispatches to the selected algorithm. Unrecognized values fall
// back to Kruskal; the enum is closed, so that branch only catches
// zero values coming from uninitialized variables.
func Run(v core.View, algorithm Algorithm, opts ...Option) (*Result, error) {
	switch algorithm {
	case Prim:
		return PrimMST(v, opts...)
	default:
		return KruskalMST(v, opts...)
	}
}

// validate applies the shared preconditions in their fixed order and
// returns the vertex and edge snapshots used by both algorithms.
func validate(v core.View) ([]string, []*core.Edge, error) {
	if v == nil {
		return nil, nil, ErrNilGraph
	}
	if v.Directed() {
		return nil, nil, ErrDirectedGraph
	}
	ids := v.Vertices()
	if len(ids) < 2 {
		return nil, nil, ErrInsufficientVertices
	}
	edges := v.Edges()
	for _, e := range edges {
		if !e.Weighted {
			return nil, nil, ErrMissingWeights
		}
	}
	if !connectivity.IsWeaklyConnected(v) {
		return nil, nil, ErrNotConnected
	}
	return ids, edges, nil
}
