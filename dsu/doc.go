// Package dsu provides a generic disjoint-set (union-find) structure
// over any comparable element type.
//
// The structure keeps one parent pointer and one rank per registered
// element plus a live component counter. Find applies iterative path
// compression (every visited node is re-pointed at the discovered root,
// no recursion, no stack-depth limits on pathological chains); Union
// attaches the lower-rank root under the higher-rank root, bumping the
// surviving root's rank on ties. With both optimizations present every
// operation runs in amortized near-constant time, O(α(n)).
//
// Errors:
//
//	ErrUnknownElement - the queried element was never registered.
//
// Typical use is component bookkeeping in Kruskal's MST construction,
// but the type is independent of graphs entirely.
package dsu
