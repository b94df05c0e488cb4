// Package connectivity answers structural connectivity questions over
// any core.View.
//
// Overview:
//
//   - IsWeaklyConnected treats every edge as bidirectional and checks
//     that an iterative-stack traversal from an arbitrary vertex visits
//     all vertices. Empty and single-vertex graphs are trivially
//     connected.
//   - IsStronglyConnected (directed graphs only) runs the Kosaraju
//     two-pass check: forward reachability from an arbitrary vertex,
//     then reachability over the edge-reversed graph from the same
//     vertex; the graph is strongly connected iff both passes cover
//     every vertex.
//   - The IgnoringIsolated variants restrict the check to vertices with
//     at least one incident edge, so isolated vertices cannot make an
//     otherwise-connected induced subgraph report disconnected. For
//     directed graphs this variant checks mutual reachability among all
//     edge-bearing vertices, not merely reachability from one of them,
//     since directed reachability is not symmetric.
//
// Errors:
//
//	ErrUndirectedGraph - strong connectivity requested on an undirected graph.
//
// Complexity: every check is O(V + E) time and O(V) space.
package connectivity
