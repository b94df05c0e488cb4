// Package mst computes minimum spanning trees of connected, undirected,
// fully-weighted graphs with Kruskal's and Prim's algorithms.
//
// # What is a minimum spanning tree?
//
// A spanning tree of a connected undirected graph is a subset of |V|-1
// edges touching every vertex without forming a cycle. Among all spanning
// trees, a minimum spanning tree (MST) has the least possible total edge
// weight. When weights are distinct the MST is unique; under ties several
// trees of equal total weight may exist, and the two algorithms here may
// pick different edge sets while always agreeing on the total.
//
// # Algorithms
//
//   - Kruskal: globally sort edges by ascending weight, then sweep them
//     through a disjoint-set structure, accepting each edge that merges
//     two components. O(E log E).
//   - Prim: grow a single tree from a root vertex, keeping the frontier
//     of candidate edges in a min-heap and repeatedly accepting the
//     cheapest edge that reaches an unvisited vertex. O(E log V).
//
// # Preconditions
//
// Both solvers validate, in order:
//
//  1. the graph is undirected (ErrDirectedGraph),
//  2. it has at least two vertices (ErrInsufficientVertices),
//  3. every edge carries an explicit weight (ErrMissingWeights),
//  4. the graph is connected (ErrNotConnected).
//
// # Quick example
//
//	res, err := mst.Run(g, mst.Kruskal)
//	if err != nil { ... }
//	fmt.Println(res.TotalWeight)
package mst
