package dsu

import "errors"

// ErrUnknownElement indicates a query for an element that was never
// registered with Add or the constructor.
var ErrUnknownElement = errors.New("dsu: unknown element")

// DSU is a disjoint-set forest over comparable elements.
// The zero value is not usable; construct with New.
type DSU[T comparable] struct {
	parent map[T]T
	rank   map[T]int
	count  int // live component count
}

// New creates a DSU holding the given elements, each in its own
// singleton set. Duplicate elements are registered once.
// Complexity: O(n).
func New[T comparable](elements ...T) *DSU[T] {
	d := &DSU[T]{
		parent: make(map[T]T, len(elements)),
		rank:   make(map[T]int, len(elements)),
	}
	for _, x := range elements {
		d.Add(x)
	}

	return d
}

// Add registers x as a new singleton set. Adding a known element is a
// no-op. Complexity: O(1).
func (d *DSU[T]) Add(x T) {
	if _, ok := d.parent[x]; ok {
		return
	}
	d.parent[x] = x
	d.rank[x] = 0
	d.count++
}

// Find returns the representative of x's set, compressing the walked
// path: every visited node is re-pointed directly at the root.
// Returns ErrUnknownElement if x was never registered.
// Complexity: amortized O(α(n)).
func (d *DSU[T]) Find(x T) (T, error) {
	var zero T
	if _, ok := d.parent[x]; !ok {
		return zero, ErrUnknownElement
	}

	// 1) Walk to the root iteratively.
	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}
	// 2) Second pass: point every node on the path at the root.
	for d.parent[x] != root {
		d.parent[x], x = root, d.parent[x]
	}

	return root, nil
}

// Union merges the sets holding x and y. Returns false (no-op) when
// both already share a set; true when two distinct components merged,
// in which case the live component count drops by one.
// Returns ErrUnknownElement if either element was never registered.
// Complexity: amortized O(α(n)).
func (d *DSU[T]) Union(x, y T) (bool, error) {
	rx, err := d.Find(x)
	if err != nil {
		return false, err
	}
	ry, err := d.Find(y)
	if err != nil {
		return false, err
	}
	if rx == ry {
		return false, nil
	}

	// Attach the lower-rank root under the higher-rank root; ties attach
	// ry under rx and bump the survivor's rank.
	if d.rank[rx] < d.rank[ry] {
		rx, ry = ry, rx
	}
	d.parent[ry] = rx
	if d.rank[rx] == d.rank[ry] {
		d.rank[rx]++
	}
	d.count--

	return true, nil
}

// Connected reports whether x and y share a set.
// Returns ErrUnknownElement if either element was never registered.
func (d *DSU[T]) Connected(x, y T) (bool, error) {
	rx, err := d.Find(x)
	if err != nil {
		return false, err
	}
	ry, err := d.Find(y)
	if err != nil {
		return false, err
	}

	return rx == ry, nil
}

// ComponentCount returns the number of live components. O(1).
func (d *DSU[T]) ComponentCount() int {
	return d.count
}

// Size returns the number of registered elements. O(1).
func (d *DSU[T]) Size() int {
	return len(d.parent)
}

// Component returns all elements sharing x's set, in unspecified order.
// Returns ErrUnknownElement if x was never registered.
// Complexity: O(n).
func (d *DSU[T]) Component(x T) ([]T, error) {
	root, err := d.Find(x)
	if err != nil {
		return nil, err
	}
	var out []T
	for y := range d.parent {
		ry, _ := d.Find(y)
		if ry == root {
			out = append(out, y)
		}
	}

	return out, nil
}

// Components returns every live component as a slice of its elements.
// Component order and element order are unspecified.
// Complexity: O(n α(n)).
func (d *DSU[T]) Components() [][]T {
	groups := make(map[T][]T, d.count)
	for x := range d.parent {
		r, _ := d.Find(x)
		groups[r] = append(groups[r], x)
	}
	out := make([][]T, 0, len(groups))
	for _, members := range groups {
		out = append(out, members)
	}

	return out
}
