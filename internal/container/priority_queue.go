package container

// HigherPriority reports whether a must be removed before b.
type HigherPriority[T any] func(a, b T) bool

// PriorityQueue is a slice-backed ordered container parameterized by a
// caller-supplied comparator. Items are kept sorted from lowest priority
// at the head to highest priority at the tail, so removal is a pop off
// the tail. Among equal-priority items the earliest-inserted one is
// removed first.
//
// A heap would remove faster but loses the insertion-order tie-break
// unless every item carries a sequence number; queue sizes here stay
// small enough that the linear insert wins on simplicity.
type PriorityQueue[T any] struct {
	items  []T
	higher HigherPriority[T]
}

func NewPriorityQueue[T any](higher HigherPriority[T]) *PriorityQueue[T] {
	return &PriorityQueue[T]{higher: higher}
}

// Add inserts item, preserving the sort invariant. Existing items that
// item outranks stay closer to the head; item lands just before the
// first one it does not outrank, which places it ahead of (removed
// after) any equal-priority items already present.
func (q *PriorityQueue[T]) Add(item T) {
	i := 0
	for i < len(q.items) && q.higher(item, q.items[i]) {
		i++
	}
	q.items = append(q.items, item)
	copy(q.items[i+1:], q.items[i:len(q.items)-1])
	q.items[i] = item
}

// Remove removes and returns the highest-priority item. Calling Remove
// on an empty queue is a programming error and panics; callers must
// check IsEmpty first.
func (q *PriorityQueue[T]) Remove() T {
	if len(q.items) == 0 {
		panic("container: Remove on empty PriorityQueue")
	}
	last := len(q.items) - 1
	item := q.items[last]
	var zero T
	q.items[last] = zero
	q.items = q.items[:last]
	return item
}

func (q *PriorityQueue[T]) IsEmpty() bool { return len(q.items) == 0 }

func (q *PriorityQueue[T]) Len() int { return len(q.items) }
