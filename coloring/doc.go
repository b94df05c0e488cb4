// Package coloring assigns colors to graph vertices so that no edge
// joins two vertices of the same color, using the DSatur heuristic.
//
// # DSatur in one paragraph
//
// The saturation degree of an uncolored vertex is the number of distinct
// colors already present among its neighbors. DSatur repeatedly colors
// the most saturated uncolored vertex, breaking ties by total degree and
// then by vertex ID, and always gives it the smallest color index its
// neighbors have not claimed. Saturation-first ordering handles the
// tightly-constrained vertices while their options are still open, which
// in practice lands close to the chromatic number, and is exactly
// optimal on bipartite graphs.
//
// Colors are dense integer indexes starting at 0. Self-loops are ignored
// throughout: a vertex is never its own neighbor for coloring purposes.
// Edge direction is likewise ignored, a directed arc constrains its two
// endpoints the same way an undirected edge does.
//
// Beyond the solver the package offers Validate, which checks an
// arbitrary (possibly partial) color assignment against the graph, and
// ChromaticBounds, which brackets the chromatic number between a
// greedily-grown clique and max degree + 1.
package coloring
