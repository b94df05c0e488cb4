// Package hamiltonian searches for Hamiltonian paths and cycles, walks
// visiting every vertex exactly once, with exhaustive backtracking.
//
// Hamiltonian search is NP-complete, so the solver is deliberately
// incomplete: graphs above a configurable vertex ceiling (15 by
// default) are refused outright with an explanatory reason instead of
// risking an exponential run. The refusal is a normal negative result,
// not an error.
//
// Two classical sufficient conditions are checked up front on
// undirected graphs and quoted in the result when they apply:
//
//   - Dirac: minimum degree >= n/2 guarantees a Hamiltonian cycle.
//   - Ore: degree(u) + degree(v) >= n for every non-adjacent pair u, v
//     guarantees a Hamiltonian cycle.
//
// Either guarantee still requires the search to materialize the cycle.
//
// The search tries every vertex as a start and extends the path along
// unvisited neighbors, backtracking on dead ends. A full-length path
// whose last vertex is adjacent to its first is flagged as a cycle and
// stops the search immediately; a plain path is kept while the search
// continues hunting for a cycle. Node, backtrack, and depth counters
// are returned for diagnostics whatever the outcome.
package hamiltonian
