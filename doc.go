// Package graphforge is an in-memory graph computation engine: build a
// directed or undirected weighted multigraph, mutate it safely, and ask
// it structural questions.
//
// 🚀 What does graphforge cover?
//
//	• Core primitives: vertices, edges, parallel edges and self-loops,
//	  deterministic insertion-order enumeration, auto-named IDs
//	• Connectivity: weak and strong (Kosaraju), with variants that
//	  ignore isolated vertices
//	• Shortest paths: Dijkstra, Bellman-Ford
//	• All-pairs distances: Floyd-Warshall, Johnson
//	• Minimum spanning trees: Kruskal, Prim
//	• Vertex coloring: DSatur with chromatic bounds
//	• Traversals: Eulerian paths/circuits (Hierholzer), bounded
//	  Hamiltonian search with Dirac/Ore shortcuts
//	• Type transitions: directed <-> undirected with edge-ID mappings
//	• Interchange: validated JSON import/export and Graphviz DOT output
//
// Everything is organized under focused subpackages:
//
//	core/         graph store, ID allocators, the read-only View contract
//	dsu/          generic disjoint set (path compression, union by rank)
//	pqueue/       generic binary min/max heap with priority update
//	connectivity/ weak and strong connectivity analysis
//	shortest/     single-pair shortest paths
//	allpairs/     all-pairs shortest paths
//	mst/          minimum spanning trees
//	coloring/     DSatur coloring, validation, bounds
//	eulerian/     Eulerian path and circuit construction
//	hamiltonian/  bounded Hamiltonian backtracking search
//	transition/   directed/undirected conversion
//	interchange/  JSON document and DOT rendering
//	cmd/          the graphforge CLI
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	a square with four vertices and four edges; its minimum spanning
//	tree keeps any three of them.
//
//	go get github.com/graphforge/graphforge
package graphforge
