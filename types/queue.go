package types

import "github.com/emirpasic/gods/containers"

var _ containers.Container = (*Queue[int])(nil)

// Queue is a FIFO adapter over List: values enter at the tail and leave
// from the head.
type Queue[T comparable] struct {
	list List[T]
}

func NewQueue[T comparable](values ...T) *Queue[T] {
	q := &Queue[T]{}
	for _, v := range values {
		q.Enqueue(v)
	}
	return q
}

func (q *Queue[T]) Enqueue(v T) {
	q.list.InsertBack(v)
}

func (q *Queue[T]) Dequeue() (T, error) {
	return q.list.RemoveFront()
}

func (q *Queue[T]) Peek() (T, error) {
	return q.list.Front()
}

func (q *Queue[T]) IsEmpty() bool         { return q.list.Empty() }
func (q *Queue[T]) Empty() bool           { return q.list.Empty() }
func (q *Queue[T]) Size() int             { return q.list.Size() }
func (q *Queue[T]) Clear()                { q.list.Clear() }
func (q *Queue[T]) Values() []interface{} { return q.list.Values() }
func (q *Queue[T]) String() string        { return q.list.String() }
