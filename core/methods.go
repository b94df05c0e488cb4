// Package core: Graph method implementations.
//
// Thread-safe operations for vertex and edge management on the Graph
// type defined in types.go. Adjacency is stored as a nested map
// adjacency[from][to][edgeID] = struct{}{}, allowing constant-time
// existence, insertion, and deletion of edges; insertion order is kept
// in separate slices for deterministic enumeration.

package core

// AddVertex inserts a new vertex with the given explicit ID.
// Returns ErrEmptyVertexID if id is empty, ErrDuplicateID if the name is
// already present or reserved.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()

	// Reserve the name first: the allocator's used set is the single
	// source of truth for name collisions.
	if !g.vertexNames.Reserve(id) {
		return ErrDuplicateID
	}
	g.insertVertex(id)

	return nil
}

// AddAutoVertex inserts a new vertex named by the allocator
// (A..Z, AA..ZZ, then a unique fallback token) and returns the name.
// Complexity: O(1) amortized over the letter space.
func (g *Graph) AddAutoVertex() string {
	g.muVert.Lock()
	defer g.muVert.Unlock()

	id := g.vertexNames.Generate()
	g.insertVertex(id)

	return id
}

// insertVertex registers an already-reserved vertex name.
// Caller holds muVert.
func (g *Graph) insertVertex(id string) {
	g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]interface{})}
	g.vertexOrder = append(g.vertexOrder, id)

	g.muEdgeAdj.Lock()
	g.ensureAdjID(id)
	g.muEdgeAdj.Unlock()
}

// HasVertex reports whether a vertex with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, exists := g.vertices[id]

	return exists
}

// RemoveVertex deletes the vertex and all incident edges, releasing the
// vertex name and every removed edge key for reuse.
// Removal of an absent vertex is a no-op (idempotent delete).
// Complexity: O(E) for the edge catalog scan.
func (g *Graph) RemoveVertex(id string) {
	if id == "" {
		return
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.vertices[id]; !exists {
		return
	}

	// Cascade: snapshot incident edge IDs, then remove them. The order
	// slice is rewritten by each removal, so it must not be ranged live.
	incident := make([]string, 0)
	for eid, e := range g.edges {
		if e.From == id || e.To == id {
			incident = append(incident, eid)
		}
	}
	for _, eid := range incident {
		g.removeEdgeLocked(eid, g.edges[eid])
	}

	delete(g.vertices, id)
	g.vertexOrder = removeOrdered(g.vertexOrder, id)
	g.vertexNames.Release(id)
	delete(g.adjacency, id)
}

// AddEdge creates a new weighted edge from 'from' to 'to' and returns
// its ID, derived from the endpoint pair ("from-to", parallel edges
// "from-to#2", ...). Self-loops and parallel edges are permitted; zero
// and negative weights are valid data.
// Returns ErrEmptyVertexID or ErrVertexNotFound when an endpoint is
// empty or absent. Endpoints are never auto-created.
// Complexity: O(1).
func (g *Graph) AddEdge(from, to string, weight float64) (string, error) {
	return g.addEdge(from, to, weight, true)
}

// AddUnweightedEdge creates a new edge carrying no weight (Weighted ==
// false). Algorithms that require weights reject such edges; algorithms
// running in weighted mode price them at 1.
// Complexity: O(1).
func (g *Graph) AddUnweightedEdge(from, to string) (string, error) {
	return g.addEdge(from, to, 0, false)
}

func (g *Graph) addEdge(from, to string, weight float64, weighted bool) (string, error) {
	// 1) Input validation.
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	// 2) Both endpoints must already exist.
	g.muVert.RLock()
	_, okFrom := g.vertices[from]
	_, okTo := g.vertices[to]
	g.muVert.RUnlock()
	if !okFrom || !okTo {
		return "", ErrVertexNotFound
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	// 3) Derive the edge ID from the (normalized) endpoint pair. After a
	// release the counter may point at an ordinal still held by a live
	// parallel edge; ID uniqueness wins, so bump until the slot is free.
	eid := g.edgeNames.Generate(from, to)
	for _, taken := g.edges[eid]; taken; _, taken = g.edges[eid] {
		eid = g.edgeNames.Generate(from, to)
	}

	// 4) Store the record, keeping the original orientation.
	e := &Edge{ID: eid, From: from, To: to, Weight: weight, Weighted: weighted}
	g.edges[eid] = e
	g.edgeOrder = append(g.edgeOrder, eid)

	// 5) Insert into adjacency; mirror for undirected non-loops.
	g.ensureAdjMap(from, to)
	g.adjacency[from][to][eid] = struct{}{}
	if !g.directed && from != to {
		g.ensureAdjMap(to, from)
		g.adjacency[to][from][eid] = struct{}{}
	}

	return eid, nil
}

// RemoveEdge deletes the edge with the given ID and releases its key.
// Removal of an absent edge is a no-op (idempotent delete).
// Complexity: O(E) for the order-slice rewrite.
func (g *Graph) RemoveEdge(eid string) {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	e, ok := g.edges[eid]
	if !ok {
		return
	}
	g.removeEdgeLocked(eid, e)
}

// removeEdgeLocked removes one edge record. Caller holds muEdgeAdj.
func (g *Graph) removeEdgeLocked(eid string, e *Edge) {
	delete(g.edges, eid)
	g.edgeOrder = removeOrdered(g.edgeOrder, eid)
	g.edgeNames.Release(eid)

	// from -> to
	if m := g.adjacency[e.From][e.To]; m != nil {
		delete(m, eid)
		if len(m) == 0 {
			delete(g.adjacency[e.From], e.To)
		}
	}
	// mirror when undirected
	if !g.directed && e.From != e.To {
		if m := g.adjacency[e.To][e.From]; m != nil {
			delete(m, eid)
			if len(m) == 0 {
				delete(g.adjacency[e.To], e.From)
			}
		}
	}
}

// SetEdgeWeight assigns a weight to the edge with the given ID, marking
// it weighted. Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(1).
func (g *Graph) SetEdgeWeight(eid string, weight float64) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	e.Weight = weight
	e.Weighted = true

	return nil
}

// HasEdge reports whether the edge with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasEdge(eid string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.edges[eid]

	return ok
}

// HasEdgeBetween reports true if at least one edge connects 'from' to
// 'to' (in that direction for directed graphs, either for undirected).
// Complexity: O(1).
func (g *Graph) HasEdgeBetween(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	if inner, ok := g.adjacency[from][to]; ok && len(inner) > 0 {
		return true
	}

	return false
}

// EdgeByID returns the edge record for the given ID.
// Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(1).
func (g *Graph) EdgeByID(eid string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[eid]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// VertexByID returns the vertex record for the given ID.
// Returns ErrVertexNotFound if no such vertex exists.
// Complexity: O(1).
func (g *Graph) VertexByID(id string) (*Vertex, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return v, nil
}

// Vertices returns all vertex IDs in insertion order.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	out := make([]string, len(g.vertexOrder))
	copy(out, g.vertexOrder)

	return out
}

// Edges returns all edges in insertion order. The returned records are
// live pointers: treat them as read-only and mutate weights through
// SetEdgeWeight only.
// Complexity: O(E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edgeOrder))
	for _, eid := range g.edgeOrder {
		out = append(out, g.edges[eid])
	}

	return out
}

// Neighbors returns all edges incident to vertex 'id': outgoing edges
// for directed graphs, both endpoints for undirected.
// Order follows edge insertion order.
// Complexity: O(d) where d is the number of incident edges.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	if _, ok := g.vertices[id]; !ok {
		g.muVert.RUnlock()
		return nil, ErrVertexNotFound
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	// Collect incident edge IDs, then order by insertion for determinism.
	seen := make(map[string]struct{})
	for _, edgeSet := range g.adjacency[id] {
		for eid := range edgeSet {
			seen[eid] = struct{}{}
		}
	}
	out := make([]*Edge, 0, len(seen))
	for _, eid := range g.edgeOrder {
		if _, ok := seen[eid]; ok {
			out = append(out, g.edges[eid])
		}
	}

	return out, nil
}

// Directed reports the graph's mode flag.
func (g *Graph) Directed() bool {
	return g.directed
}

// VertexCount returns the number of vertices. O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of edges. O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// Clone returns a deep copy of the Graph: mode flag, vertices, edges,
// adjacency, and allocator state. Vertex Metadata maps are shared.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	clone := NewGraph(WithDirected(g.directed))
	for _, id := range g.vertexOrder {
		v := g.vertices[id]
		clone.vertexNames.Reserve(id)
		clone.vertices[id] = &Vertex{ID: id, Metadata: v.Metadata}
		clone.vertexOrder = append(clone.vertexOrder, id)
		clone.ensureAdjID(id)
	}
	for _, eid := range g.edgeOrder {
		e := g.edges[eid]
		// Regenerating through the namer preserves the pair counters, so
		// the cloned IDs collide with the originals by construction.
		clone.edgeNames.Generate(e.From, e.To)
		ne := &Edge{ID: eid, From: e.From, To: e.To, Weight: e.Weight, Weighted: e.Weighted}
		clone.edges[eid] = ne
		clone.edgeOrder = append(clone.edgeOrder, eid)
		clone.ensureAdjMap(e.From, e.To)
		clone.adjacency[e.From][e.To][eid] = struct{}{}
		if !g.directed && e.From != e.To {
			clone.ensureAdjMap(e.To, e.From)
			clone.adjacency[e.To][e.From][eid] = struct{}{}
		}
	}

	return clone
}

// Internal helpers.

// ensureAdjID makes adjacency[id] non-nil.
func (g *Graph) ensureAdjID(id string) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[string]map[string]struct{})
	}
}

// ensureAdjMap ensures adjacency[from][to] is initialized.
func (g *Graph) ensureAdjMap(from, to string) {
	g.ensureAdjID(from)
	if g.adjacency[from][to] == nil {
		g.adjacency[from][to] = make(map[string]struct{})
	}
}

// removeOrdered filters one value out of an order slice in place.
func removeOrdered(order []string, id string) []string {
	for i, v := range order {
		if v == id {
			return append(order[:i], order[i+1:]...)
		}
	}

	return order
}
