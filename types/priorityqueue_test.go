package types

import (
	"errors"
	"reflect"
	"testing"

	"github.com/emirpasic/gods/utils"
)

// checkHeap verifies the heap order and that positions matches every slot.
func checkHeap[T comparable](t *testing.T, pq *PriorityQueue[T]) {
	t.Helper()

	n := pq.heap.Size()
	for i := 0; i < n; i++ {
		for _, child := range []int{2*i + 1, 2*i + 2} {
			if child < n && pq.less(child, i) {
				t.Fatalf("slot %d (%v) is smaller than its parent %d (%v)", child, pq.at(child), i, pq.at(i))
			}
		}
		if _, ok := pq.positions[pq.at(i)][i]; !ok {
			t.Fatalf("slot %d (%v) is not tracked", i, pq.at(i))
		}
	}
	tracked := 0
	for v, slots := range pq.positions {
		for i := range slots {
			if i >= n || pq.at(i) != v {
				t.Fatalf("positions says %v is at %d", v, i)
			}
			tracked++
		}
	}
	if tracked != n {
		t.Fatalf("tracked %d slots, heap has %d", tracked, n)
	}
}

func drain(t *testing.T, pq *PriorityQueue[int]) []int {
	t.Helper()
	var out []int
	for !pq.Empty() {
		v, err := pq.Poll()
		if err != nil {
			t.Fatalf("Poll() failed: %v", err)
		}
		checkHeap(t, pq)
		out = append(out, v)
	}
	return out
}

func TestPriorityQueueEmpty(t *testing.T) {
	pq := NewPriorityQueue[int](utils.IntComparator)

	if _, err := pq.Peek(); !errors.Is(err, ErrEmptyStructure) {
		t.Fatalf("Peek() err = %v, want ErrEmptyStructure", err)
	}
	if _, err := pq.Poll(); !errors.Is(err, ErrEmptyStructure) {
		t.Fatalf("Poll() err = %v, want ErrEmptyStructure", err)
	}
	if pq.Remove(1) {
		t.Fatal("Remove(1) on empty queue = true")
	}
	if got := pq.String(); got != "[]" {
		t.Fatalf("String() = %q, want []", got)
	}
}

func TestPriorityQueuePollsInOrder(t *testing.T) {
	pq := NewPriorityQueue[int](utils.IntComparator)
	for _, v := range []int{5, 3, 8, 1, 9, 1, 4, 7, 2, 6} {
		pq.Add(v)
		checkHeap(t, pq)
	}
	if got, _ := pq.Peek(); got != 1 {
		t.Fatalf("Peek() = %d, want 1", got)
	}
	if got := drain(t, pq); !reflect.DeepEqual(got, []int{1, 1, 2, 3, 4, 5, 6, 7, 8, 9}) {
		t.Fatalf("poll order = %v", got)
	}
}

func TestPriorityQueueHeapify(t *testing.T) {
	pq := NewPriorityQueue(utils.IntComparator, 9, 4, 7, 1, 3, 8, 2)
	checkHeap(t, pq)
	if got := drain(t, pq); !reflect.DeepEqual(got, []int{1, 2, 3, 4, 7, 8, 9}) {
		t.Fatalf("poll order = %v", got)
	}
}

func TestPriorityQueueGrowsBackingArray(t *testing.T) {
	pq := NewPriorityQueue[int](utils.IntComparator)
	for i := 3*DefaultArrayCapacity - 1; i >= 0; i-- {
		pq.Add(i)
	}
	checkHeap(t, pq)
	if pq.Size() != 3*DefaultArrayCapacity {
		t.Fatalf("Size() = %d, want %d", pq.Size(), 3*DefaultArrayCapacity)
	}
	if pq.heap.Cap() != 4*DefaultArrayCapacity {
		t.Fatalf("backing Cap() = %d, want %d", pq.heap.Cap(), 4*DefaultArrayCapacity)
	}
	if got, _ := pq.Peek(); got != 0 {
		t.Fatalf("Peek() = %d, want 0", got)
	}
}

func TestPriorityQueueRemove(t *testing.T) {
	pq := NewPriorityQueue(utils.IntComparator, 1, 2, 3, 4, 5, 6, 7, 2)

	for _, v := range []int{4, 1, 2, 7} {
		if !pq.Remove(v) {
			t.Fatalf("Remove(%d) = false, want true", v)
		}
		checkHeap(t, pq)
	}
	if !pq.Contains(2) {
		t.Fatal("second 2 should still be present")
	}
	if pq.Contains(4) {
		t.Fatal("Contains(4) after Remove = true")
	}
	if pq.Remove(10) {
		t.Fatal("Remove(10) = true, want false")
	}
	if got := drain(t, pq); !reflect.DeepEqual(got, []int{2, 3, 5, 6}) {
		t.Fatalf("poll order = %v", got)
	}
}

func TestPriorityQueueClear(t *testing.T) {
	pq := NewPriorityQueue(utils.StringComparator, "b", "a")
	pq.Clear()
	if !pq.Empty() || pq.Contains("a") {
		t.Fatal("Clear should drop every value")
	}
	pq.Add("c")
	checkHeap(t, pq)
	if got, _ := pq.Peek(); got != "c" {
		t.Fatalf("Peek() = %q, want c", got)
	}
}
