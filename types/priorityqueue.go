package types

import (
	"github.com/emirpasic/gods/containers"
	"github.com/emirpasic/gods/utils"
)

var _ containers.Container = (*PriorityQueue[int])(nil)

// PriorityQueue is a binary min-heap stored in an Array. The children of
// slot i are 2i+1 and 2i+2. positions maps every value to the slots that
// hold it, so Contains and Remove do not scan the heap. Build one with
// NewPriorityQueue; the zero value has no ordering.
type PriorityQueue[T comparable] struct {
	heap      Array[T]
	cmp       utils.Comparator
	positions map[T]map[int]struct{}
}

// NewPriorityQueue orders values with cmp and heapifies values in
// linear time.
func NewPriorityQueue[T comparable](cmp utils.Comparator, values ...T) *PriorityQueue[T] {
	pq := &PriorityQueue[T]{cmp: cmp}
	for i, v := range values {
		pq.heap.Append(v)
		pq.track(v, i)
	}
	for i := len(values)/2 - 1; i >= 0; i-- {
		pq.sink(i)
	}
	return pq
}

func (pq *PriorityQueue[T]) Size() int {
	return pq.heap.Size()
}

func (pq *PriorityQueue[T]) Empty() bool {
	return pq.heap.Empty()
}

func (pq *PriorityQueue[T]) Clear() {
	pq.heap.Clear()
	pq.positions = nil
}

func (pq *PriorityQueue[T]) Add(v T) {
	pq.heap.Append(v)
	last := pq.heap.Size() - 1
	pq.track(v, last)
	pq.swim(last)
}

// Peek returns the smallest value without removing it.
func (pq *PriorityQueue[T]) Peek() (T, error) {
	if pq.heap.Empty() {
		var zero T
		return zero, ErrEmptyStructure
	}
	return pq.at(0), nil
}

// Poll removes and returns the smallest value.
func (pq *PriorityQueue[T]) Poll() (T, error) {
	if pq.heap.Empty() {
		var zero T
		return zero, ErrEmptyStructure
	}
	return pq.removeAt(0), nil
}

func (pq *PriorityQueue[T]) Contains(v T) bool {
	return len(pq.positions[v]) > 0
}

// Remove deletes one occurrence of v and reports whether it was present.
func (pq *PriorityQueue[T]) Remove(v T) bool {
	for i := range pq.positions[v] {
		pq.removeAt(i)
		return true
	}
	return false
}

// Values returns the heap in slot order, smallest first.
func (pq *PriorityQueue[T]) Values() []interface{} {
	return pq.heap.Values()
}

func (pq *PriorityQueue[T]) String() string {
	return pq.heap.String()
}

// at reads a slot the heap logic already knows to be in range.
func (pq *PriorityQueue[T]) at(i int) T {
	v, _ := pq.heap.Get(i)
	return v
}

func (pq *PriorityQueue[T]) less(i, j int) bool {
	return pq.cmp(pq.at(i), pq.at(j)) < 0
}

func (pq *PriorityQueue[T]) swim(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !pq.less(i, parent) {
			return
		}
		pq.swap(i, parent)
		i = parent
	}
}

func (pq *PriorityQueue[T]) sink(i int) {
	n := pq.heap.Size()
	for {
		left, right := 2*i+1, 2*i+2
		if left >= n {
			return
		}
		smallest := left
		if right < n && pq.less(right, left) {
			smallest = right
		}
		if !pq.less(smallest, i) {
			return
		}
		pq.swap(i, smallest)
		i = smallest
	}
}

func (pq *PriorityQueue[T]) swap(i, j int) {
	vi, vj := pq.at(i), pq.at(j)
	if vi == vj {
		return
	}
	_ = pq.heap.Set(i, vj)
	_ = pq.heap.Set(j, vi)
	pq.untrack(vi, i)
	pq.untrack(vj, j)
	pq.track(vi, j)
	pq.track(vj, i)
}

// removeAt moves the last slot into i, drops the tail and restores the
// heap order around i.
func (pq *PriorityQueue[T]) removeAt(i int) T {
	last := pq.heap.Size() - 1
	removed := pq.at(i)
	pq.swap(i, last)
	_, _ = pq.heap.RemoveAt(last)
	pq.untrack(removed, last)
	if i == last {
		return removed
	}

	moved := pq.at(i)
	pq.sink(i)
	if pq.at(i) == moved {
		pq.swim(i)
	}
	return removed
}

func (pq *PriorityQueue[T]) track(v T, i int) {
	if pq.positions == nil {
		pq.positions = make(map[T]map[int]struct{})
	}
	slots, ok := pq.positions[v]
	if !ok {
		slots = make(map[int]struct{})
		pq.positions[v] = slots
	}
	slots[i] = struct{}{}
}

func (pq *PriorityQueue[T]) untrack(v T, i int) {
	slots := pq.positions[v]
	delete(slots, i)
	if len(slots) == 0 {
		delete(pq.positions, v)
	}
}
