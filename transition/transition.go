package transition

import (
	"github.com/graphforge/graphforge/core"
)

// To converts g to the requested directionality and returns the new
// graph plus the ID mapping. A same-type request is a no-op: the input
// graph itself comes back with identity mappings.
//
// Complexity: O(V + E).
func To(g *core.Graph, directed bool, opts ...Option) (*core.Graph, *Mapping, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if g.Directed() == directed {
		edgeIDs := make([]string, 0, g.EdgeCount())
		for _, e := range g.Edges() {
			edgeIDs = append(edgeIDs, e.ID)
		}
		return g, identityMapping(g.Vertices(), edgeIDs), nil
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if directed {
		return split(g)
	}
	return merge(g, cfg.Merge)
}

// split rebuilds an undirected graph as directed, turning every edge
// into a forward and a backward arc.
func split(g *core.Graph) (*core.Graph, *Mapping, error) {
	out := core.NewGraph(core.WithDirected(true))
	m := &Mapping{
		Vertices: make(map[string]string, g.VertexCount()),
		Edges:    make(map[string][]string, g.EdgeCount()),
	}
	for _, id := range g.Vertices() {
		if err := out.AddVertex(id); err != nil {
			return nil, nil, err
		}
		m.Vertices[id] = id
	}
	for _, e := range g.Edges() {
		fwd, err := addLike(out, e, e.From, e.To)
		if err != nil {
			return nil, nil, err
		}
		rev, err := addLike(out, e, e.To, e.From)
		if err != nil {
			return nil, nil, err
		}
		m.Edges[e.ID] = []string{fwd, rev}
	}
	return out, m, nil
}

// merge rebuilds a directed graph as undirected, collapsing arcs that
// share an unordered endpoint pair into one edge each.
func merge(g *core.Graph, policy MergePolicy) (*core.Graph, *Mapping, error) {
	out := core.NewGraph()
	m := &Mapping{
		Vertices: make(map[string]string, g.VertexCount()),
		Edges:    make(map[string][]string, g.EdgeCount()),
	}
	for _, id := range g.Vertices() {
		if err := out.AddVertex(id); err != nil {
			return nil, nil, err
		}
		m.Vertices[id] = id
	}

	type pair struct{ lo, hi string }
	groups := make(map[pair][]*core.Edge)
	var order []pair
	for _, e := range g.Edges() {
		p := pair{e.From, e.To}
		if p.hi < p.lo {
			p.lo, p.hi = p.hi, p.lo
		}
		if _, seen := groups[p]; !seen {
			order = append(order, p)
		}
		groups[p] = append(groups[p], e)
	}

	for _, p := range order {
		arcs := groups[p]
		survivor := pickSurvivor(arcs, policy)

		var id string
		var err error
		if survivor.Weighted {
			id, err = out.AddEdge(survivor.From, survivor.To, survivor.Weight)
		} else {
			id, err = out.AddUnweightedEdge(survivor.From, survivor.To)
		}
		if err != nil {
			return nil, nil, err
		}
		for _, arc := range arcs {
			m.Edges[arc.ID] = []string{id}
		}
	}
	return out, m, nil
}

// pickSurvivor applies the merge policy over one arc group. Min and Max
// only compare weighted arcs; a group with no weighted arc falls back
// to its first member, which keeps the merged edge weightless.
func pickSurvivor(arcs []*core.Edge, policy MergePolicy) *core.Edge {
	if policy == First {
		return arcs[0]
	}
	var best *core.Edge
	for _, arc := range arcs {
		if !arc.Weighted {
			continue
		}
		switch {
		case best == nil:
			best = arc
		case policy == Min && arc.Weight < best.Weight:
			best = arc
		case policy == Max && arc.Weight > best.Weight:
			best = arc
		}
	}
	if best == nil {
		return arcs[0]
	}
	return best
}

func addLike(g *core.Graph, e *core.Edge, from, to string) (string, error) {
	if e.Weighted {
		return g.AddEdge(from, to, e.Weight)
	}
	return g.AddUnweightedEdge(from, to)
}
