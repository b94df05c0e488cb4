// Package pqueue provides a generic binary-heap priority queue with
// in-place priority updates.
//
// A Queue is configured at construction as a min-heap or max-heap; the
// ordering is fixed for the instance's lifetime. Enqueue, Dequeue, and
// Peek behave as usual for a binary heap, O(log n) / O(log n) / O(1).
// UpdatePriority locates the item by a linear scan and re-heapifies in
// the correct direction, O(n + log n): this queue is not designed for
// frequent decrease-key at scale, which is why Dijkstra pairs it with
// the lazy-decrease-key pattern instead.
//
// Ties between equal priorities are broken arbitrarily. The queue makes
// no FIFO promise between equal-priority items, and the algorithms
// built on it (Dijkstra, Prim) are correct regardless of tie order.
//
// container/heap is not used directly: heap.Interface predates type
// parameters and UpdatePriority needs access to the backing slice, so
// the sift operations are written out the way container/heap implements
// them internally.
package pqueue
