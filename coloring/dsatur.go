package coloring

import (
	"sort"

	"github.com/emirpasic/gods/sets/treeset"

	"github.com/graphforge/graphforge/core"
)

// ColorGraph produces a proper coloring with the DSatur heuristic.
//
// Vertex selection is fully deterministic: highest saturation first,
// then highest degree, then smallest vertex ID. Every vertex receives
// the smallest color index unused by its already-colored neighbors.
//
// Complexity: O(V^2 + E) with the plain scan-based selection used here.
func ColorGraph(v core.View) (*Result, error) {
	if v == nil {
		return nil, ErrNilGraph
	}
	ids := v.Vertices()

	// 1. Distinct-neighbor index, self-loops and direction dropped.
	//    Parallel edges constrain a pair once.
	neighbors := make(map[string]map[string]struct{}, len(ids))
	for _, id := range ids {
		neighbors[id] = make(map[string]struct{})
	}
	for _, e := range v.Edges() {
		if e.From == e.To {
			continue
		}
		neighbors[e.From][e.To] = struct{}{}
		neighbors[e.To][e.From] = struct{}{}
	}
	degrees := core.DegreeMap(v)

	// 2. Per-vertex saturation sets. A treeset keyed by color index
	//    gives distinct-count semantics and cheap membership tests.
	saturation := make(map[string]*treeset.Set, len(ids))
	for _, id := range ids {
		saturation[id] = treeset.NewWithIntComparator()
	}

	colors := make(map[string]int, len(ids))
	numColors := 0

	for len(colors) < len(ids) {
		// 3. Select by (saturation desc, degree desc, ID asc).
		next := ""
		for _, id := range ids {
			if _, done := colors[id]; done {
				continue
			}
			if next == "" || saturates(saturation, degrees, id, next) {
				next = id
			}
		}

		// 4. Smallest color absent from the neighborhood.
		used := saturation[next]
		c := 0
		for used.Contains(c) {
			c++
		}
		colors[next] = c
		if c+1 > numColors {
			numColors = c + 1
		}
		for nb := range neighbors[next] {
			if _, done := colors[nb]; !done {
				saturation[nb].Add(c)
			}
		}
	}

	// 5. Sorted color classes for deterministic output.
	classes := make([][]string, numColors)
	for id, c := range colors {
		classes[c] = append(classes[c], id)
	}
	for _, class := range classes {
		sort.Strings(class)
	}

	return &Result{
		Coloring:     colors,
		NumColors:    numColors,
		ColorClasses: classes,
	}, nil
}

// saturates reports whether candidate should be selected over current
// under the DSatur ordering.
func saturates(sat map[string]*treeset.Set, deg map[string]int, candidate, current string) bool {
	cs, ns := sat[candidate].Size(), sat[current].Size()
	if cs != ns {
		return cs > ns
	}
	cd, nd := deg[candidate], deg[current]
	if cd != nd {
		return cd > nd
	}
	return candidate < current
}
