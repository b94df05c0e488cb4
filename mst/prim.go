package mst

import (
	"github.com/graphforge/graphforge/core"
	"github.com/graphforge/graphforge/pqueue"
)

// PrimMST grows a minimum spanning tree outward from a root vertex.
// The frontier of candidate edges lives in a min-heap keyed by weight;
// each round pops the cheapest edge, and if it reaches an unvisited
// vertex the edge is accepted and that vertex's incident edges join
// the frontier. Stale heap entries whose far endpoint was visited in
// the meantime are simply discarded on pop.
//
// The root comes from WithRoot or defaults to the first vertex in
// insertion order.
//
// Complexity: O(E log V).
func PrimMST(v core.View, opts ...Option) (*Result, error) {
	ids, _, err := validate(v)
	if err != nil {
		return nil, err
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	root := cfg.Root
	if root == "" {
		root = ids[0]
	} else if !contains(ids, root) {
		return nil, ErrUnknownRoot
	}

	// Incidence index built once up front; Edges() walks the whole
	// edge set, so repeated adjacency lookups would be quadratic.
	incident := make(map[string][]*core.Edge, len(ids))
	for _, e := range v.Edges() {
		incident[e.From] = append(incident[e.From], e)
		if e.From != e.To {
			incident[e.To] = append(incident[e.To], e)
		}
	}

	visited := make(map[string]struct{}, len(ids))
	frontier := pqueue.NewMin[*core.Edge]()

	grow := func(id string) {
		visited[id] = struct{}{}
		for _, e := range incident[id] {
			if _, seen := visited[e.Other(id)]; !seen {
				frontier.Enqueue(e, e.Weight)
			}
		}
	}
	grow(root)

	need := len(ids) - 1
	res := &Result{
		Edges:     make([]core.Edge, 0, need),
		Algorithm: Prim,
	}
	for len(res.Edges) < need {
		e, ok := frontier.Dequeue()
		if !ok {
			// Unreachable after the connectivity precheck.
			return nil, ErrNotConnected
		}
		var next string
		switch {
		case !has(visited, e.From):
			next = e.From
		case !has(visited, e.To):
			next = e.To
		default:
			continue // stale entry
		}
		res.Edges = append(res.Edges, *e)
		res.TotalWeight += e.Weight
		grow(next)
	}
	return res, nil
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func has(set map[string]struct{}, id string) bool {
	_, ok := set[id]
	return ok
}
