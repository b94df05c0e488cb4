// Package allpairs implements all-pairs shortest-distance solvers:
// Floyd-Warshall and Johnson.
//
// Overview:
//
//   - FloydWarshall seeds a distance matrix with direct edge weights
//     (both directions for undirected graphs, the cheapest parallel
//     edge winning), zero on the diagonal and +Inf elsewhere, then runs
//     the classic k→i→j triple loop. A negative self-distance after
//     relaxation signals ErrNegativeCycle.
//   - Johnson augments the graph with a synthetic source connected to
//     every vertex by a zero-weight arc, runs Bellman-Ford from it to
//     obtain vertex potentials h, reweights every edge to
//     w(u,v) + h(u) - h(v) (non-negative when no negative cycle
//     exists), runs Dijkstra from every vertex on the reweighted graph,
//     and finally removes the potentials from each resulting distance.
//
// The synthetic and reweighted graphs are plain value structs
// implementing core.View; nothing in the mutation surface is stubbed.
//
// Both solvers require at least two vertices (ErrInsufficientVertices)
// and report ErrNegativeCycle exactly like the single-source solvers.
// Path reconstruction from the predecessor matrix is guarded against
// non-terminating chains the same way package shortest guards its own.
//
// Complexity:
//
//   - FloydWarshall: O(V³) time, O(V²) space.
//   - Johnson: O(V·E + V·(V + E) log V) time, better than O(V³) on
//     sparse graphs.
package allpairs
