package eulerian

import (
	"fmt"

	"github.com/graphforge/graphforge/connectivity"
	"github.com/graphforge/graphforge/core"
)

// Analyze computes the degree map, the odd/even parity partition, and
// the isolated-ignoring connectivity verdict for the graph.
func Analyze(v core.View) (*Analysis, error) {
	if v == nil {
		return nil, ErrNilGraph
	}
	degrees := core.DegreeMap(v)
	a := &Analysis{
		Degrees:   degrees,
		Connected: connectivity.IsConnectedIgnoringIsolated(v),
	}
	for _, id := range v.Vertices() {
		if degrees[id]%2 == 1 {
			a.OddVertices = append(a.OddVertices, id)
		} else {
			a.EvenVertices = append(a.EvenVertices, id)
		}
	}
	return a, nil
}

// FindPath searches for an Eulerian traversal.
//
// Decision ladder:
//
//  1. zero or one vertices: trivially Eulerian,
//  2. more than one vertex but no edges: never Eulerian,
//  3. disconnected (ignoring isolated vertices): no traversal,
//  4. zero odd-degree vertices: Hierholzer circuit,
//  5. exactly two odd: open path between them via a synthetic edge,
//  6. any other odd count: rejected, count reported in Reason.
//
// Complexity: O(V + E).
func FindPath(v core.View) (*Result, error) {
	if v == nil {
		return nil, ErrNilGraph
	}
	ids := v.Vertices()
	edges := v.Edges()

	if len(ids) == 0 {
		return &Result{Exists: true, Circuit: true}, nil
	}
	if len(ids) == 1 {
		return &Result{Exists: true, Path: []string{ids[0]}, Circuit: true}, nil
	}
	if len(edges) == 0 {
		return &Result{Reason: "graph has no edges"}, nil
	}

	analysis, err := Analyze(v)
	if err != nil {
		return nil, err
	}
	if !analysis.Connected {
		return &Result{
			OddVertices: analysis.OddVertices,
			Reason:      "graph is not connected",
		}, nil
	}

	switch len(analysis.OddVertices) {
	case 0:
		start := edges[0].From
		verts, _ := hierholzer(v, start)
		return &Result{
			Exists:  true,
			Path:    verts,
			Circuit: true,
		}, nil

	case 2:
		path := openPath(v, analysis.OddVertices[0], analysis.OddVertices[1])
		return &Result{
			Exists:      true,
			Path:        path,
			OddVertices: analysis.OddVertices,
		}, nil

	default:
		return &Result{
			OddVertices: analysis.OddVertices,
			Reason: fmt.Sprintf("graph has %d odd-degree vertices, an Eulerian path allows at most 2",
				len(analysis.OddVertices)),
		}, nil
	}
}

// hierholzer walks the multigraph from start, using every edge exactly
// once, and returns the closed circuit as a vertex sequence plus the
// parallel edge-ID sequence (edgeIDs[k] joins verts[k] and verts[k+1]).
//
// Stack discipline: extend from the top vertex along any unused
// incident edge; when the top vertex runs out of edges, emit it and
// backtrack. The emission order reversed is the circuit.
func hierholzer(v core.View, start string) (verts, edgeIDs []string) {
	adj := core.SymmetricAdjacencyList(v)

	type frame struct {
		vertex string
		via    string // edge ID used to arrive, "" for the root
	}

	used := make(map[string]bool, len(v.Edges()))
	stack := []frame{{vertex: start}}
	var emitted []frame

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		next := ""
		for len(adj[top.vertex]) > 0 {
			list := adj[top.vertex]
			e := list[len(list)-1]
			adj[top.vertex] = list[:len(list)-1]
			if used[e.ID] {
				continue // consumed from the other endpoint
			}
			used[e.ID] = true
			stack = append(stack, frame{vertex: e.Other(top.vertex), via: e.ID})
			next = e.ID
			break
		}
		if next == "" {
			emitted = append(emitted, *top)
			stack = stack[:len(stack)-1]
		}
	}

	verts = make([]string, 0, len(emitted))
	edgeIDs = make([]string, 0, len(emitted)-1)
	for i := len(emitted) - 1; i >= 0; i-- {
		verts = append(verts, emitted[i].vertex)
		if emitted[i].via != "" {
			edgeIDs = append(edgeIDs, emitted[i].via)
		}
	}
	return verts, edgeIDs
}

// openPath reduces the two-odd-vertices case to the circuit case: a
// synthetic edge closes the gap between the odd pair, Hierholzer runs
// over the overlay, and the circuit is split where the synthetic edge
// was traversed.
func openPath(v core.View, a, b string) []string {
	synthetic := "__euler__"
	for _, e := range v.Edges() {
		if e.ID == synthetic {
			synthetic += "_"
		}
	}

	overlay := closedView{base: v, edge: &core.Edge{ID: synthetic, From: a, To: b}}
	verts, edgeIDs := hierholzer(overlay, a)

	for k, id := range edgeIDs {
		if id != synthetic {
			continue
		}
		// verts[k] -synthetic- verts[k+1]; the rest of the circuit is
		// the open path from verts[k+1] around to verts[k]. The first
		// and last circuit entries coincide, so one copy is dropped.
		path := make([]string, 0, len(verts)-1)
		path = append(path, verts[k+1:]...)
		path = append(path, verts[1:k+1]...)
		return path
	}
	// Unreachable: the synthetic edge is always traversed.
	return verts
}

// closedView overlays one extra edge on a base view.
type closedView struct {
	base core.View
	edge *core.Edge
}

func (c closedView) Vertices() []string { return c.base.Vertices() }

func (c closedView) Edges() []*core.Edge {
	base := c.base.Edges()
	out := make([]*core.Edge, 0, len(base)+1)
	out = append(out, base...)
	out = append(out, c.edge)
	return out
}

func (c closedView) Directed() bool { return c.base.Directed() }
