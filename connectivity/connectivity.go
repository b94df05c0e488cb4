package connectivity

import (
	"errors"

	"github.com/graphforge/graphforge/core"
)

// ErrUndirectedGraph indicates that strong connectivity was requested
// on an undirected graph; the notion only exists for directed graphs.
var ErrUndirectedGraph = errors.New("connectivity: strong connectivity requires a directed graph")

// IsWeaklyConnected reports whether the graph is connected when every
// edge is treated as bidirectional. Empty and single-vertex graphs are
// trivially connected.
// Complexity: O(V + E).
func IsWeaklyConnected(v core.View) bool {
	vertices := v.Vertices()
	if len(vertices) <= 1 {
		return true
	}
	visited := traverse(core.SymmetricAdjacencyList(v), vertices[0], undirectedStep)

	return len(visited) == len(vertices)
}

// IsWeaklyConnectedIgnoringIsolated is IsWeaklyConnected restricted to
// vertices that carry at least one incident edge. A graph whose
// edge-bearing subgraph is connected reports true regardless of
// isolated vertices; a graph with no edges at all reports true.
// Complexity: O(V + E).
func IsWeaklyConnectedIgnoringIsolated(v core.View) bool {
	adj := core.SymmetricAdjacencyList(v)
	bearing := edgeBearing(adj)
	if len(bearing) <= 1 {
		return true
	}
	visited := traverse(adj, anyOf(bearing), undirectedStep)

	return covers(visited, bearing)
}

// IsStronglyConnected reports whether every vertex of a directed graph
// can reach every other. Kosaraju two-pass: forward reachability from
// an arbitrary vertex, then reachability from the same vertex with all
// edges reversed. Empty and single-vertex graphs are trivially
// connected. Returns ErrUndirectedGraph for undirected input.
// Complexity: O(V + E).
func IsStronglyConnected(v core.View) (bool, error) {
	if !v.Directed() {
		return false, ErrUndirectedGraph
	}
	vertices := v.Vertices()
	if len(vertices) <= 1 {
		return true, nil
	}
	// Symmetric adjacency lists every edge under both endpoints; the
	// step functions filter by direction, so the reverse pass sees
	// incoming edges without materializing a reversed graph.
	adj := core.SymmetricAdjacencyList(v)
	start := vertices[0]

	forward := traverse(adj, start, forwardStep)
	if len(forward) != len(vertices) {
		return false, nil
	}
	backward := traverse(adj, start, reverseStep)

	return len(backward) == len(vertices), nil
}

// IsConnectedIgnoringIsolated checks connectivity over the edge-bearing
// vertices only: weak connectivity for undirected graphs, mutual
// reachability (both traversal directions must cover every edge-bearing
// vertex) for directed graphs.
// Complexity: O(V + E).
func IsConnectedIgnoringIsolated(v core.View) bool {
	if !v.Directed() {
		return IsWeaklyConnectedIgnoringIsolated(v)
	}
	adj := core.SymmetricAdjacencyList(v)
	bearing := edgeBearingDirected(v)
	if len(bearing) <= 1 {
		return true
	}
	start := anyOf(bearing)

	forward := traverse(adj, start, forwardStep)
	if !covers(forward, bearing) {
		return false
	}
	backward := traverse(adj, start, reverseStep)

	return covers(backward, bearing)
}

// stepFn yields the vertex reached by following e away from id, or
// "" (with ok=false) when the edge cannot be taken in this direction.
type stepFn func(e *core.Edge, id string) (string, bool)

// undirectedStep follows any incident edge to its opposite endpoint.
func undirectedStep(e *core.Edge, id string) (string, bool) {
	return e.Other(id), true
}

// forwardStep follows directed edges source-to-target only.
func forwardStep(e *core.Edge, id string) (string, bool) {
	if e.From != id {
		return "", false
	}

	return e.To, true
}

// reverseStep follows directed edges target-to-source only, which
// traverses the edge-reversed graph without materializing it.
func reverseStep(e *core.Edge, id string) (string, bool) {
	if e.To != id {
		return "", false
	}

	return e.From, true
}

// traverse runs an iterative-stack DFS from start over adj, following
// edges through step, and returns the visited set.
func traverse(adj map[string][]*core.Edge, start string, step stepFn) map[string]bool {
	visited := map[string]bool{start: true}
	stack := []string{start}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range adj[u] {
			next, ok := step(e, u)
			if !ok || visited[next] {
				continue
			}
			visited[next] = true
			stack = append(stack, next)
		}
	}

	return visited
}

// edgeBearing filters adjacency down to vertices with incident edges.
func edgeBearing(adj map[string][]*core.Edge) map[string]bool {
	out := make(map[string]bool)
	for id, edges := range adj {
		if len(edges) > 0 {
			out[id] = true
		}
	}

	return out
}

// edgeBearingDirected collects vertices incident to any edge in either
// role; directed adjacency alone would miss sink-only vertices.
func edgeBearingDirected(v core.View) map[string]bool {
	out := make(map[string]bool)
	for _, e := range v.Edges() {
		out[e.From] = true
		out[e.To] = true
	}

	return out
}

// anyOf returns an arbitrary member of a non-empty set.
func anyOf(set map[string]bool) string {
	for id := range set {
		return id
	}

	return ""
}

// covers reports whether visited includes every member of want.
func covers(visited, want map[string]bool) bool {
	for id := range want {
		if !visited[id] {
			return false
		}
	}

	return true
}
