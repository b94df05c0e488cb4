// Package transition converts a graph between its directed and
// undirected forms, reporting how old edge IDs map onto new ones.
//
// Undirected to directed: every edge u-v becomes the two arcs u->v and
// v->u, both carrying the original weight, and the old edge ID maps to
// both new IDs. A self-loop becomes two parallel directed loops, so
// that degree-style invariants survive the round trip.
//
// Directed to undirected: arcs are merged by unordered endpoint pair.
// The first arc seen for a pair creates the undirected edge, every arc
// of the pair maps onto it, and the surviving weight is chosen by the
// merge policy (first seen by default, or the minimum/maximum of the
// weighted arcs).
//
// Same-type transitions are no-ops returning the input graph and
// identity mappings.
//
// Round trip: converting a simple undirected graph to directed and back
// reproduces the original edge set and weights, which the default
// first-seen policy makes true by construction.
package transition
