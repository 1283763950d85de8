package types

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/containers"
)

var _ containers.Container = (*List[int])(nil)

type Element[T comparable] struct {
	next *Element[T]
	prev *Element[T]
	list *List[T]

	Value T
}

func (e *Element[T]) Next() *Element[T] {
	return e.next
}

func (e *Element[T]) Prev() *Element[T] {
	return e.prev
}

// List is a doubly linked list. head.prev and tail.next are always nil.
// The zero value is an empty list ready to use.
type List[T comparable] struct {
	head   *Element[T]
	tail   *Element[T]
	length int
}

func NewList[T comparable](values ...T) *List[T] {
	l := &List[T]{}
	for _, v := range values {
		l.InsertBack(v)
	}
	return l
}

func (l *List[T]) Size() int {
	return l.length
}

func (l *List[T]) Empty() bool {
	return l.length == 0
}

func (l *List[T]) First() *Element[T] {
	return l.head
}

func (l *List[T]) Last() *Element[T] {
	return l.tail
}

func (l *List[T]) InsertFront(v T) *Element[T] {
	e := &Element[T]{Value: v, next: l.head, list: l}
	if l.head != nil {
		l.head.prev = e
	} else {
		l.tail = e
	}
	l.head = e
	l.length++
	return e
}

func (l *List[T]) InsertBack(v T) *Element[T] {
	if l.length == 0 {
		return l.InsertFront(v)
	}

	e := &Element[T]{Value: v, prev: l.tail, list: l}
	l.tail.next = e
	l.tail = e
	l.length++
	return e
}

// InsertAt places v so that it ends up at index i. Valid indexes are
// 0 through Size() inclusive.
func (l *List[T]) InsertAt(v T, i int) error {
	if i < 0 || i > l.length {
		return insertIndexError(i, l.length)
	}
	switch i {
	case 0:
		l.InsertFront(v)
	case l.length:
		l.InsertBack(v)
	default:
		prev := l.find(i - 1)
		e := &Element[T]{Value: v, prev: prev, next: prev.next, list: l}
		prev.next.prev = e
		prev.next = e
		l.length++
	}
	return nil
}

func (l *List[T]) Get(i int) (T, error) {
	if i < 0 || i >= l.length {
		var zero T
		return zero, readIndexError(i, l.length)
	}
	return l.find(i).Value, nil
}

func (l *List[T]) Front() (T, error) {
	if l.length == 0 {
		var zero T
		return zero, ErrEmptyStructure
	}
	return l.head.Value, nil
}

func (l *List[T]) Back() (T, error) {
	if l.length == 0 {
		var zero T
		return zero, ErrEmptyStructure
	}
	return l.tail.Value, nil
}

func (l *List[T]) Has(v T) bool {
	return l.IndexOf(v) != -1
}

// IndexOf returns the index of the first element equal to v, or -1.
func (l *List[T]) IndexOf(v T) int {
	i := 0
	for e := l.head; e != nil; e = e.next {
		if e.Value == v {
			return i
		}
		i++
	}
	return -1
}

func (l *List[T]) RemoveFront() (T, error) {
	if l.length == 0 {
		var zero T
		return zero, ErrEmptyStructure
	}

	e := l.head
	l.head = e.next
	if l.head == nil {
		l.tail = nil
	} else {
		l.head.prev = nil
	}
	l.length--
	detach(e)
	return e.Value, nil
}

func (l *List[T]) RemoveBack() (T, error) {
	if l.length == 0 {
		var zero T
		return zero, ErrEmptyStructure
	}
	if l.length == 1 {
		return l.RemoveFront()
	}

	e := l.tail
	l.tail = e.prev
	l.tail.next = nil
	l.length--
	detach(e)
	return e.Value, nil
}

func (l *List[T]) RemoveAt(i int) (T, error) {
	if i < 0 || i >= l.length {
		var zero T
		return zero, readIndexError(i, l.length)
	}
	switch i {
	case 0:
		return l.RemoveFront()
	case l.length - 1:
		return l.RemoveBack()
	}

	e := l.find(i)
	l.unlink(e)
	return e.Value, nil
}

// Remove deletes the first element equal to v and reports whether one
// was found.
func (l *List[T]) Remove(v T) bool {
	for e := l.head; e != nil; e = e.next {
		if e.Value == v {
			l.unlink(e)
			return true
		}
	}
	return false
}

// RemoveElement splices e out when it still belongs to l.
func (l *List[T]) RemoveElement(e *Element[T]) bool {
	if e == nil || e.list != l {
		return false
	}
	l.unlink(e)
	return true
}

// Clear severs every node so none of them stays reachable through
// a neighbour.
func (l *List[T]) Clear() {
	for e := l.head; e != nil; {
		next := e.next
		detach(e)
		e = next
	}
	l.head = nil
	l.tail = nil
	l.length = 0
}

func (l *List[T]) Slice() []T {
	out := make([]T, 0, l.length)
	for e := l.head; e != nil; e = e.next {
		out = append(out, e.Value)
	}
	return out
}

// Backward returns the values from tail to head.
func (l *List[T]) Backward() []T {
	out := make([]T, 0, l.length)
	for e := l.tail; e != nil; e = e.prev {
		out = append(out, e.Value)
	}
	return out
}

func (l *List[T]) Values() []interface{} {
	out := make([]interface{}, 0, l.length)
	for e := l.head; e != nil; e = e.next {
		out = append(out, e.Value)
	}
	return out
}

func (l *List[T]) String() string {
	return render(l.Values())
}

// find walks from whichever end is closer. i must be in [0, length).
func (l *List[T]) find(i int) (e *Element[T]) {
	if i < l.length/2 {
		e = l.head
		for n := 0; n < i; n++ {
			e = e.next
		}
	} else {
		e = l.tail
		for n := l.length - 1; n > i; n-- {
			e = e.prev
		}
	}
	return e
}

// unlink splices e out of l, covering the head and tail cases.
func (l *List[T]) unlink(e *Element[T]) {
	if e.prev == nil {
		l.head = e.next
	} else {
		e.prev.next = e.next
	}

	if e.next == nil {
		l.tail = e.prev
	} else {
		e.next.prev = e.prev
	}

	l.length--
	detach(e)
}

func detach[T comparable](e *Element[T]) {
	e.next = nil
	e.prev = nil
	e.list = nil
}

func render(values []interface{}) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range values {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, v)
	}
	b.WriteByte(']')
	return b.String()
}
