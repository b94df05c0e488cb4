// Package shortest implements single-source shortest-path solvers:
// Dijkstra and Bellman-Ford.
//
// Both solvers take a read-only core.View, a source, and a target, and
// share one validation ladder, checked in order:
//
//  1. fewer than 2 vertices            -> ErrInsufficientVertices
//  2. source or target absent          -> ErrVertexNotFound
//  3. (Dijkstra, weighted mode only) a
//     negative edge weight anywhere    -> ErrNegativeWeight
//  4. source == target                 -> zero-length, zero-distance result
//  5. target unreachable from source
//     (independent BFS respecting edge
//     directionality)                  -> ErrUnreachable
//
// Bellman-Ford additionally reports ErrNegativeCycle when a negative
// cycle is reachable from the source.
//
// Weights:
//
//   - Default mode prices each edge at its stored weight; weightless
//     edges are priced at 1.
//   - WithUnitWeights() prices every edge at 1, which turns both solvers
//     into edge-count shortest path.
//
// Results carry the full distance and predecessor maps alongside the
// reconstructed source→target path and its total distance. Path
// reconstruction walks predecessors from the target back to the source
// and gives up (empty path) if the chain does not terminate within
// |V|+1 steps, guarding against corrupted predecessor cycles.
//
// Complexity:
//
//   - Dijkstra: O((V + E) log V) with the lazy-decrease-key min-heap;
//     stops early once the target leaves the frontier.
//   - Bellman-Ford: O(V · E), early-exiting any round with no update.
//
// The full single-source forms DijkstraFrom and BellmanFordFrom skip
// the target-specific steps and return raw distance/predecessor maps;
// Johnson's algorithm in package allpairs is built on them.
package shortest
