package pqueue

// Mode selects the heap ordering, fixed at construction.
type Mode int

const (
	// Min dequeues the lowest priority first.
	Min Mode = iota
	// Max dequeues the highest priority first.
	Max
)

// entry pairs an item with its current priority.
type entry[T comparable] struct {
	item     T
	priority float64
}

// Queue is a binary heap of items keyed by a float64 priority.
// The zero value is not usable; construct with NewMin or NewMax.
type Queue[T comparable] struct {
	heap []entry[T]
	mode Mode
}

// NewMin returns an empty min-heap queue.
func NewMin[T comparable]() *Queue[T] {
	return &Queue[T]{mode: Min}
}

// NewMax returns an empty max-heap queue.
func NewMax[T comparable]() *Queue[T] {
	return &Queue[T]{mode: Max}
}

// Len returns the number of queued items. O(1).
func (q *Queue[T]) Len() int {
	return len(q.heap)
}

// Enqueue inserts item with the given priority. Duplicate items are
// permitted; use UpdatePriority to re-key an existing one instead.
// Complexity: O(log n).
func (q *Queue[T]) Enqueue(item T, priority float64) {
	q.heap = append(q.heap, entry[T]{item: item, priority: priority})
	q.siftUp(len(q.heap) - 1)
}

// Dequeue removes and returns the item at the head of the queue
// (lowest priority for Min, highest for Max). The second return is
// false when the queue is empty.
// Complexity: O(log n).
func (q *Queue[T]) Dequeue() (T, bool) {
	var zero T
	n := len(q.heap)
	if n == 0 {
		return zero, false
	}
	top := q.heap[0].item
	q.heap[0] = q.heap[n-1]
	q.heap = q.heap[:n-1]
	if len(q.heap) > 0 {
		q.siftDown(0)
	}

	return top, true
}

// Peek returns the head item without removing it. The second return is
// false when the queue is empty. O(1).
func (q *Queue[T]) Peek() (T, bool) {
	var zero T
	if len(q.heap) == 0 {
		return zero, false
	}

	return q.heap[0].item, true
}

// PeekPriority returns the head item's priority. The second return is
// false when the queue is empty. O(1).
func (q *Queue[T]) PeekPriority() (float64, bool) {
	if len(q.heap) == 0 {
		return 0, false
	}

	return q.heap[0].priority, true
}

// UpdatePriority re-keys the first occurrence of item in place and
// restores the heap invariant in whichever direction the change
// requires, returning true. When the item is absent it is inserted as
// new and false is returned.
// Complexity: O(n) locate + O(log n) sift.
func (q *Queue[T]) UpdatePriority(item T, priority float64) bool {
	// Linear locate: the queue keeps no index map by design.
	for i := range q.heap {
		if q.heap[i].item != item {
			continue
		}
		old := q.heap[i].priority
		q.heap[i].priority = priority
		// Sift toward the head when the key improved, away otherwise.
		if q.before(priority, old) {
			q.siftUp(i)
		} else {
			q.siftDown(i)
		}

		return true
	}
	q.Enqueue(item, priority)

	return false
}

// before reports whether priority a should dequeue ahead of b.
func (q *Queue[T]) before(a, b float64) bool {
	if q.mode == Max {
		return a > b
	}

	return a < b
}

// siftUp restores the invariant from index i toward the root.
func (q *Queue[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !q.before(q.heap[i].priority, q.heap[parent].priority) {
			break
		}
		q.heap[i], q.heap[parent] = q.heap[parent], q.heap[i]
		i = parent
	}
}

// siftDown restores the invariant from index i toward the leaves.
func (q *Queue[T]) siftDown(i int) {
	n := len(q.heap)
	for {
		left, right := 2*i+1, 2*i+2
		best := i
		if left < n && q.before(q.heap[left].priority, q.heap[best].priority) {
			best = left
		}
		if right < n && q.before(q.heap[right].priority, q.heap[best].priority) {
			best = right
		}
		if best == i {
			return
		}
		q.heap[i], q.heap[best] = q.heap[best], q.heap[i]
		i = best
	}
}
