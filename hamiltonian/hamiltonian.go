package hamiltonian

import (
	"fmt"
	"sort"

	"github.com/graphforge/graphforge/connectivity"
	"github.com/graphforge/graphforge/core"
)

// FindPath runs the bounded backtracking search.
//
// Decision ladder:
//
//  1. zero or one vertices: trivially Hamiltonian,
//  2. above the vertex ceiling: refused with a reason, no search,
//  3. no edges, or disconnected: fails fast with a reason,
//  4. Dirac/Ore sufficient conditions noted (undirected graphs only),
//  5. exhaustive DFS from every start vertex; a Hamiltonian cycle
//     stops the search immediately, a plain path is kept while the
//     hunt for a cycle continues.
//
// Complexity: O(V!) worst case, which is why the ceiling exists.
func FindPath(v core.View, opts ...Option) (*Result, error) {
	if v == nil {
		return nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.MaxVertices <= 0 {
		cfg.MaxVertices = DefaultMaxVertices
	}

	ids := v.Vertices()
	n := len(ids)

	if n == 0 {
		return &Result{Found: true, Cycle: true}, nil
	}
	if n == 1 {
		return &Result{Found: true, Path: []string{ids[0]}, Cycle: true}, nil
	}
	if n > cfg.MaxVertices {
		return &Result{
			Reason: fmt.Sprintf("search refused: %d vertices exceeds the ceiling of %d (worst case is factorial)",
				n, cfg.MaxVertices),
		}, nil
	}
	if len(v.Edges()) == 0 {
		return &Result{Reason: "graph has no edges"}, nil
	}
	if !connectivity.IsWeaklyConnected(v) {
		return &Result{Reason: "graph is not connected"}, nil
	}

	s := newSearcher(v, ids)

	guarantee := ""
	if !v.Directed() {
		guarantee = s.sufficientCondition()
	}

	res := s.run()
	res.Reason = guarantee
	if !res.Found {
		res.Reason = "exhaustive search found no Hamiltonian path"
	}
	return res, nil
}

// searcher carries the immutable adjacency index and the mutable
// search state for one FindPath invocation.
type searcher struct {
	ids       []string
	neighbors map[string]map[string]struct{}
	order     map[string][]string // deterministic expansion order

	path    []string
	visited map[string]struct{}
	stats   Stats

	best      []string // first full-length path seen, kept while hunting a cycle
	cycleSeen bool
}

func newSearcher(v core.View, ids []string) *searcher {
	s := &searcher{
		ids:       ids,
		neighbors: make(map[string]map[string]struct{}, len(ids)),
		order:     make(map[string][]string, len(ids)),
		path:      make([]string, 0, len(ids)),
		visited:   make(map[string]struct{}, len(ids)),
	}
	for _, id := range ids {
		s.neighbors[id] = make(map[string]struct{})
	}
	directed := v.Directed()
	for _, e := range v.Edges() {
		if e.From == e.To {
			continue
		}
		s.neighbors[e.From][e.To] = struct{}{}
		if !directed {
			s.neighbors[e.To][e.From] = struct{}{}
		}
	}
	for id, nb := range s.neighbors {
		list := make([]string, 0, len(nb))
		for other := range nb {
			list = append(list, other)
		}
		sort.Strings(list)
		s.order[id] = list
	}
	return s
}

// sufficientCondition checks Dirac then Ore and returns the citation
// string for the first theorem that applies, or "".
func (s *searcher) sufficientCondition() string {
	n := len(s.ids)
	minDegree := n
	for _, id := range s.ids {
		if d := len(s.neighbors[id]); d < minDegree {
			minDegree = d
		}
	}
	if 2*minDegree >= n {
		return fmt.Sprintf("Dirac's theorem guarantees a Hamiltonian cycle: minimum degree %d >= %d/2", minDegree, n)
	}

	ore := true
	for i := 0; i < len(s.ids) && ore; i++ {
		for j := i + 1; j < len(s.ids); j++ {
			u, w := s.ids[i], s.ids[j]
			if _, adj := s.neighbors[u][w]; adj {
				continue
			}
			if len(s.neighbors[u])+len(s.neighbors[w]) < n {
				ore = false
				break
			}
		}
	}
	if ore {
		return "Ore's theorem guarantees a Hamiltonian cycle: every non-adjacent pair's degree sum reaches the vertex count"
	}
	return ""
}

func (s *searcher) run() *Result {
	for _, start := range s.ids {
		s.path = append(s.path[:0], start)
		s.visited = map[string]struct{}{start: {}}
		if s.extend(start) {
			break // cycle found, nothing better exists
		}
	}

	res := &Result{Stats: s.stats}
	if s.cycleSeen || s.best != nil {
		res.Found = true
		res.Cycle = s.cycleSeen
		res.Path = s.best
	}
	return res
}

// extend grows the path from u. Returns true only when a Hamiltonian
// cycle was completed, which aborts the whole search.
func (s *searcher) extend(u string) bool {
	if d := len(s.path); d > s.stats.MaxDepth {
		s.stats.MaxDepth = d
	}
	if len(s.path) == len(s.ids) {
		start := s.path[0]
		if _, closes := s.neighbors[u][start]; closes {
			s.cycleSeen = true
			s.best = append([]string(nil), s.path...)
			return true
		}
		if s.best == nil {
			s.best = append([]string(nil), s.path...)
		}
		return false
	}

	for _, next := range s.order[u] {
		if _, seen := s.visited[next]; seen {
			continue
		}
		s.stats.NodesExplored++
		s.visited[next] = struct{}{}
		s.path = append(s.path, next)

		if s.extend(next) {
			return true
		}

		s.path = s.path[:len(s.path)-1]
		delete(s.visited, next)
		s.stats.Backtracks++
	}
	return false
}
