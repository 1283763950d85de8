package types

import "github.com/emirpasic/gods/containers"

var _ containers.Container = (*Stack[int])(nil)

// Stack is a LIFO adapter over List; the top is the list's tail.
type Stack[T comparable] struct {
	list List[T]
}

func NewStack[T comparable]() *Stack[T] {
	return &Stack[T]{}
}

func (s *Stack[T]) Push(v T) {
	s.list.InsertBack(v)
}

func (s *Stack[T]) Pop() (T, error) {
	return s.list.RemoveBack()
}

func (s *Stack[T]) Peek() (T, error) {
	if s.list.Empty() {
		var zero T
		return zero, ErrEmptyStructure
	}
	return s.list.Get(s.list.Size() - 1)
}

func (s *Stack[T]) IsEmpty() bool         { return s.list.Empty() }
func (s *Stack[T]) Empty() bool           { return s.list.Empty() }
func (s *Stack[T]) Size() int             { return s.list.Size() }
func (s *Stack[T]) Clear()                { s.list.Clear() }
func (s *Stack[T]) Values() []interface{} { return s.list.Values() }
func (s *Stack[T]) String() string        { return s.list.String() }
