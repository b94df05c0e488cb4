package coloring

import (
	"sort"

	"github.com/graphforge/graphforge/core"
)

// Validate reports whether the given assignment is a proper coloring of
// the graph: no non-loop edge may join two identically colored
// endpoints. Vertices missing from the assignment are unconstrained, so
// partial colorings validate as true.
func Validate(v core.View, coloring map[string]int) bool {
	if v == nil {
		return false
	}
	for _, e := range v.Edges() {
		if e.From == e.To {
			continue
		}
		cf, okf := coloring[e.From]
		ct, okt := coloring[e.To]
		if okf && okt && cf == ct {
			return false
		}
	}
	return true
}

// ChromaticBounds brackets the chromatic number.
//
// The lower bound grows a clique greedily: vertices are visited in
// descending degree order and added when adjacent to every current
// member. That finds a clique, not the largest one, so the bound is
// valid but not tight. The upper bound is max degree + 1, which greedy
// coloring always achieves.
func ChromaticBounds(v core.View) (Bounds, error) {
	if v == nil {
		return Bounds{}, ErrNilGraph
	}
	ids := v.Vertices()
	if len(ids) == 0 {
		return Bounds{}, nil
	}

	neighbors := make(map[string]map[string]struct{}, len(ids))
	for _, id := range ids {
		neighbors[id] = make(map[string]struct{})
	}
	maxDegree := 0
	for _, e := range v.Edges() {
		if e.From == e.To {
			continue
		}
		neighbors[e.From][e.To] = struct{}{}
		neighbors[e.To][e.From] = struct{}{}
	}
	for _, nb := range neighbors {
		if len(nb) > maxDegree {
			maxDegree = len(nb)
		}
	}

	// Greedy clique: descending degree, ties by ID.
	order := make([]string, len(ids))
	copy(order, ids)
	sort.Slice(order, func(i, j int) bool {
		di, dj := len(neighbors[order[i]]), len(neighbors[order[j]])
		if di != dj {
			return di > dj
		}
		return order[i] < order[j]
	})

	clique := make([]string, 0, 4)
	for _, id := range order {
		adjacentToAll := true
		for _, member := range clique {
			if _, ok := neighbors[id][member]; !ok {
				adjacentToAll = false
				break
			}
		}
		if adjacentToAll {
			clique = append(clique, id)
		}
	}

	return Bounds{Lower: len(clique), Upper: maxDegree + 1}, nil
}
