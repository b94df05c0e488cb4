// Package eulerian decides whether a graph admits an Eulerian path or
// circuit, a walk using every edge exactly once, and materializes one
// when it exists.
//
// The classical criterion drives everything: a connected graph has an
// Eulerian circuit iff every vertex has even degree, and an open
// Eulerian path iff exactly two vertices have odd degree (the path must
// start at one and end at the other). Any other odd-degree count rules
// a traversal out, and FindPath reports that count instead of searching.
//
// Circuits are built with Hierholzer's stack algorithm in O(E). The
// open-path case reduces to the circuit case: a synthetic edge joins the
// two odd vertices, the closed circuit is computed over an overlay view,
// and the circuit is split where the synthetic edge was traversed.
//
// Degrees count each edge once per endpoint (self-loops twice); for
// directed graphs this is in-degree plus out-degree, and traversal
// ignores arc orientation. Isolated vertices never block a traversal:
// connectivity is checked over edge-bearing vertices only.
package eulerian
