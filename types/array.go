package types

import "github.com/emirpasic/gods/containers"

var _ containers.Container = (*Array[int])(nil)

const DefaultArrayCapacity = 100

// Array is a growable array. buf is always fully allocated; only
// buf[:length] holds elements. The zero value is an empty Array ready
// to use.
type Array[T comparable] struct {
	buf    []T
	length int
}

func NewArray[T comparable](capacity int) *Array[T] {
	if capacity <= 0 {
		capacity = DefaultArrayCapacity
	}
	return &Array[T]{buf: make([]T, capacity)}
}

func (a *Array[T]) Size() int {
	return a.length
}

func (a *Array[T]) Cap() int {
	return len(a.buf)
}

func (a *Array[T]) Empty() bool {
	return a.length == 0
}

func (a *Array[T]) Append(v T) {
	a.ensureSpace()
	a.buf[a.length] = v
	a.length++
}

// InsertAt shifts buf[i:length] one slot right and writes v at i.
// Valid indexes are 0 through Size() inclusive.
func (a *Array[T]) InsertAt(i int, v T) error {
	if i < 0 || i > a.length {
		return insertIndexError(i, a.length)
	}
	a.ensureSpace()
	for j := a.length; j > i; j-- {
		a.buf[j] = a.buf[j-1]
	}
	a.buf[i] = v
	a.length++
	return nil
}

func (a *Array[T]) Get(i int) (T, error) {
	if i < 0 || i >= a.length {
		var zero T
		return zero, readIndexError(i, a.length)
	}
	return a.buf[i], nil
}

func (a *Array[T]) Set(i int, v T) error {
	if i < 0 || i >= a.length {
		return readIndexError(i, a.length)
	}
	a.buf[i] = v
	return nil
}

// RemoveAt shifts buf[i+1:length] one slot left and returns the value
// that was at i.
func (a *Array[T]) RemoveAt(i int) (T, error) {
	var zero T
	if i < 0 || i >= a.length {
		return zero, readIndexError(i, a.length)
	}
	v := a.buf[i]
	for j := i; j < a.length-1; j++ {
		a.buf[j] = a.buf[j+1]
	}
	a.length--
	a.buf[a.length] = zero
	return v, nil
}

func (a *Array[T]) Contains(v T) bool {
	return a.IndexOf(v) != -1
}

func (a *Array[T]) IndexOf(v T) int {
	for i := 0; i < a.length; i++ {
		if a.buf[i] == v {
			return i
		}
	}
	return -1
}

// Clear drops every element but keeps the current capacity.
func (a *Array[T]) Clear() {
	var zero T
	for i := 0; i < a.length; i++ {
		a.buf[i] = zero
	}
	a.length = 0
}

func (a *Array[T]) Slice() []T {
	out := make([]T, a.length)
	copy(out, a.buf[:a.length])
	return out
}

func (a *Array[T]) Values() []interface{} {
	out := make([]interface{}, a.length)
	for i := 0; i < a.length; i++ {
		out[i] = a.buf[i]
	}
	return out
}

func (a *Array[T]) String() string {
	return render(a.Values())
}

// ensureSpace doubles the buffer when it is full. The old buffer is
// dropped, never shared with the new one. A zero Array gets
// DefaultArrayCapacity slots on first use.
func (a *Array[T]) ensureSpace() {
	if a.length < len(a.buf) {
		return
	}
	if len(a.buf) == 0 {
		a.buf = make([]T, DefaultArrayCapacity)
		return
	}
	grown := make([]T, len(a.buf)*2)
	for i := 0; i < a.length; i++ {
		grown[i] = a.buf[i]
	}
	a.buf = grown
}
