// Package core defines the central Graph, Vertex, and Edge types, the
// per-graph identifier allocators, and the read-only View contract that
// every solver package consumes.
//
// Overview:
//
//   - Graph is a mutable multigraph: parallel edges and self-loops are
//     always permitted, and a single directedness flag is fixed at
//     construction time (change of type goes through package transition,
//     which builds a fresh instance).
//   - Vertex names are allocated per graph: A..Z, then AA..ZZ, then a
//     globally-unique fallback token. Callers may also supply explicit
//     names; collisions are rejected with ErrDuplicateID.
//   - Edge IDs are derived from the endpoint pair: the first edge between
//     a pair gets the canonical key "from-to" (endpoints sorted
//     lexicographically when the graph is undirected), parallel edges get
//     "key#2", "key#3", and so on. Removing an edge releases its slot.
//   - Weights are float64. Zero and negative weights are valid data; an
//     edge may also carry no weight at all (Weighted == false), which
//     specific algorithms reject or price at 1 as documented there.
//
// Enumeration order:
//
//   - Vertices() and Edges() return insertion order. Algorithms rely on
//     this for reproducible output; tests may rely on it for stable
//     assertions.
//
// Concurrency:
//
//   - Individual store operations are guarded by two RWMutex locks
//     (muVert for the vertex catalog, muEdgeAdj for edges and adjacency,
//     always acquired in that order). One graph instance is still owned
//     by one logical session: algorithms read a snapshot of the graph
//     and mutating it while a solver runs is unsupported.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrDuplicateID    - explicit vertex ID already present or reserved.
//	ErrVertexNotFound - operation referenced a non-existent vertex.
//	ErrEdgeNotFound   - operation referenced a non-existent edge.
package core
