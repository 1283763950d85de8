package types

import (
	"unicode"
	"unicode/utf8"

	"github.com/emirpasic/gods/containers"
)

var _ containers.Container = (*Set)(nil)

const SetBuckets = 26

// Set is a string set split into buckets by the first letter of each
// word. Every bucket is a List and holds no duplicates.
type Set struct {
	table [SetBuckets]List[string]
}

func NewSet(words ...string) *Set {
	s := &Set{}
	for _, w := range words {
		s.Add(w)
	}
	return s
}

// bucket maps the lowercased first rune to a bucket. Non-letters land
// wherever their code point falls modulo SetBuckets; "" uses bucket 0.
func bucket(word string) int {
	r, _ := utf8.DecodeRuneInString(word)
	if r == utf8.RuneError {
		return 0
	}
	return int(unicode.ToLower(r)) % SetBuckets
}

// Add inserts word unless it is already present and reports whether it
// was added.
func (s *Set) Add(word string) bool {
	l := &s.table[bucket(word)]
	if l.Has(word) {
		return false
	}
	l.InsertBack(word)
	return true
}

func (s *Set) Remove(word string) bool {
	l := &s.table[bucket(word)]
	i := l.IndexOf(word)
	if i == -1 {
		return false
	}
	_, err := l.RemoveAt(i)
	return err == nil
}

func (s *Set) Has(word string) bool {
	return s.table[bucket(word)].Has(word)
}

// BucketLen returns the size of the bucket word belongs to.
func (s *Set) BucketLen(word string) int {
	return s.table[bucket(word)].Size()
}

func (s *Set) Size() int {
	n := 0
	for i := range s.table {
		n += s.table[i].Size()
	}
	return n
}

func (s *Set) Empty() bool {
	return s.Size() == 0
}

func (s *Set) Clear() {
	for i := range s.table {
		s.table[i].Clear()
	}
}

// Values returns the members in bucket order, insertion order within a
// bucket.
func (s *Set) Values() []interface{} {
	out := make([]interface{}, 0, s.Size())
	for i := range s.table {
		out = append(out, s.table[i].Values()...)
	}
	return out
}

func (s *Set) String() string {
	return render(s.Values())
}
