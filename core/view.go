// Package core: the read-only View contract and shared adjacency
// utilities reused by the solver packages.
//
// Solvers never mutate a graph: they consume this narrow capability
// interface, which any in-memory adapter struct can implement. Synthetic
// graphs (Johnson's augmented source, the Eulerian synthetic edge) are
// plain value structs implementing View rather than partial stubs of the
// full mutation surface.

package core

// View is the read-only query contract consumed by every algorithm.
//
// Vertices and Edges enumerate in a stable order (insertion order for
// *Graph); Directed reports the graph's single mode flag.
type View interface {
	Vertices() []string
	Edges() []*Edge
	Directed() bool
}

// Graph implements View.
var _ View = (*Graph)(nil)

// AdjacencyList builds per-vertex incident edge lists from any View,
// honoring edge directionality: directed edges are listed under their
// source only, undirected edges under both endpoints (once for loops).
// Every vertex gets an entry, isolated vertices an empty list.
// Complexity: O(V + E).
func AdjacencyList(v View) map[string][]*Edge {
	adj := make(map[string][]*Edge, len(v.Vertices()))
	for _, id := range v.Vertices() {
		adj[id] = nil
	}
	directed := v.Directed()
	for _, e := range v.Edges() {
		adj[e.From] = append(adj[e.From], e)
		if !directed && e.From != e.To {
			adj[e.To] = append(adj[e.To], e)
		}
	}

	return adj
}

// SymmetricAdjacencyList builds adjacency ignoring directionality:
// every edge is listed under both endpoints (once for loops). Used for
// weak connectivity and undirected degree reasoning on directed graphs.
// Complexity: O(V + E).
func SymmetricAdjacencyList(v View) map[string][]*Edge {
	adj := make(map[string][]*Edge, len(v.Vertices()))
	for _, id := range v.Vertices() {
		adj[id] = nil
	}
	for _, e := range v.Edges() {
		adj[e.From] = append(adj[e.From], e)
		if e.From != e.To {
			adj[e.To] = append(adj[e.To], e)
		}
	}

	return adj
}

// DegreeMap counts endpoint incidences per vertex: every edge
// contributes one to each endpoint, so a self-loop contributes two and
// a directed vertex's entry equals in-degree plus out-degree.
// Complexity: O(V + E).
func DegreeMap(v View) map[string]int {
	deg := make(map[string]int, len(v.Vertices()))
	for _, id := range v.Vertices() {
		deg[id] = 0
	}
	for _, e := range v.Edges() {
		deg[e.From]++
		deg[e.To]++
	}

	return deg
}

// Other returns the endpoint of e opposite to id. For self-loops both
// endpoints are id.
func (e *Edge) Other(id string) string {
	if e.From == id {
		return e.To
	}

	return e.From
}

// EffectiveWeight prices an edge for a solver run: the stored weight
// when useWeights is set and the edge carries one, 1 otherwise (unit
// mode, or a weightless edge in weighted mode).
func EffectiveWeight(e *Edge, useWeights bool) float64 {
	if useWeights && e.Weighted {
		return e.Weight
	}

	return 1
}
