package container

import "testing"

func intAsc(a, b int) bool { return a < b }

func TestPriorityQueueOrdering(t *testing.T) {
	q := NewPriorityQueue(intAsc)
	for _, v := range []int{5, 1, 4, 2, 3} {
		q.Add(v)
	}

	want := []int{1, 2, 3, 4, 5}
	for i, w := range want {
		if q.IsEmpty() {
			t.Fatalf("queue empty after %d removals, want %d items", i, len(want))
		}
		got := q.Remove()
		if got != w {
			t.Fatalf("removal %d = %d, want %d", i, got, w)
		}
	}

	if !q.IsEmpty() {
		t.Fatalf("queue not empty after draining, len=%d", q.Len())
	}
}

type job struct {
	priority int
	name     string
}

func byPriority(a, b job) bool { return a.priority < b.priority }

func TestPriorityQueueFIFOTieBreak(t *testing.T) {
	q := NewPriorityQueue(byPriority)
	q.Add(job{2, "first-two"})
	q.Add(job{1, "first-one"})
	q.Add(job{2, "second-two"})
	q.Add(job{1, "second-one"})
	q.Add(job{2, "third-two"})

	want := []string{"first-one", "second-one", "first-two", "second-two", "third-two"}
	for i, w := range want {
		got := q.Remove()
		if got.name != w {
			t.Fatalf("removal %d = %q, want %q", i, got.name, w)
		}
	}
}

func TestPriorityQueueInterleavedAddRemove(t *testing.T) {
	q := NewPriorityQueue(intAsc)
	q.Add(3)
	q.Add(1)

	if got := q.Remove(); got != 1 {
		t.Fatalf("first removal = %d, want 1", got)
	}

	q.Add(2)
	if got := q.Remove(); got != 2 {
		t.Fatalf("second removal = %d, want 2", got)
	}
	if got := q.Remove(); got != 3 {
		t.Fatalf("third removal = %d, want 3", got)
	}
}

func TestPriorityQueueRemoveEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Remove on empty queue did not panic")
		}
	}()

	q := NewPriorityQueue(intAsc)
	q.Remove()
}
