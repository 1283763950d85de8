package types

import (
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/emirpasic/gods/containers"
)

var _ containers.Container = (*HashTable[string, int])(nil)

const (
	DefaultHashTableCapacity = 3
	DefaultLoadFactor        = 0.75
)

type hashEntry[K comparable, V any] struct {
	hash  uint32
	key   K
	value V
}

// HashTable is a separate chaining hash table. Each bucket is a List of
// entries; the table doubles once Size exceeds capacity*loadFactor. The
// zero value is an empty table with the default capacity and load factor.
type HashTable[K comparable, V any] struct {
	buckets    []List[*hashEntry[K, V]]
	loadFactor float64
	threshold  int
	size       int
	hasher     func(K) uint32
}

// NewHashTable returns a table with at least DefaultHashTableCapacity
// buckets. A non-positive loadFactor selects DefaultLoadFactor and a nil
// hasher selects FNV-1a over the key's printed form.
func NewHashTable[K comparable, V any](capacity int, loadFactor float64, hasher func(K) uint32) *HashTable[K, V] {
	h := &HashTable[K, V]{loadFactor: loadFactor, hasher: hasher}
	h.init(capacity)
	return h
}

func (h *HashTable[K, V]) init(capacity int) {
	if capacity < DefaultHashTableCapacity {
		capacity = DefaultHashTableCapacity
	}
	if h.loadFactor <= 0 {
		h.loadFactor = DefaultLoadFactor
	}
	if h.hasher == nil {
		h.hasher = defaultHash[K]
	}
	h.buckets = make([]List[*hashEntry[K, V]], capacity)
	h.threshold = int(float64(capacity) * h.loadFactor)
}

func defaultHash[K comparable](key K) uint32 {
	f := fnv.New32a()
	switch k := any(key).(type) {
	case string:
		f.Write([]byte(k))
	default:
		fmt.Fprint(f, k)
	}
	return f.Sum32()
}

func (h *HashTable[K, V]) Size() int {
	return h.size
}

func (h *HashTable[K, V]) Empty() bool {
	return h.size == 0
}

// Clear drops every entry but keeps the current capacity.
func (h *HashTable[K, V]) Clear() {
	for i := range h.buckets {
		h.buckets[i].Clear()
	}
	h.size = 0
}

// Put stores value under key and returns the value it replaced.
func (h *HashTable[K, V]) Put(key K, value V) (old V, replaced bool) {
	if h.buckets == nil {
		h.init(0)
	}
	hash := h.hash(key)
	if e := h.seek(hash, key); e != nil {
		old, e.Value.value = e.Value.value, value
		return old, true
	}

	h.buckets[h.index(hash)].InsertBack(&hashEntry[K, V]{hash: hash, key: key, value: value})
	h.size++
	if h.size > h.threshold {
		h.resize()
	}
	return old, false
}

func (h *HashTable[K, V]) Get(key K) (V, bool) {
	if e := h.seek(h.hash(key), key); e != nil {
		return e.Value.value, true
	}
	var zero V
	return zero, false
}

func (h *HashTable[K, V]) ContainsKey(key K) bool {
	return h.seek(h.hash(key), key) != nil
}

// Remove unlinks the entry for key and returns its value.
func (h *HashTable[K, V]) Remove(key K) (V, bool) {
	hash := h.hash(key)
	e := h.seek(hash, key)
	if e == nil {
		var zero V
		return zero, false
	}
	v := e.Value.value
	h.buckets[h.index(hash)].RemoveElement(e)
	h.size--
	return v, true
}

// Cap returns the number of buckets.
func (h *HashTable[K, V]) Cap() int {
	return len(h.buckets)
}

// BucketLen returns the chain length of bucket i.
func (h *HashTable[K, V]) BucketLen(i int) int {
	return h.buckets[i].Size()
}

// Keys returns the keys bucket by bucket.
func (h *HashTable[K, V]) Keys() []K {
	out := make([]K, 0, h.size)
	h.each(func(e *hashEntry[K, V]) {
		out = append(out, e.key)
	})
	return out
}

// Values returns the values in the same order as Keys.
func (h *HashTable[K, V]) Values() []interface{} {
	out := make([]interface{}, 0, h.size)
	h.each(func(e *hashEntry[K, V]) {
		out = append(out, e.value)
	})
	return out
}

func (h *HashTable[K, V]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	h.each(func(e *hashEntry[K, V]) {
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&b, "%v => %v", e.key, e.value)
	})
	b.WriteByte('}')
	return b.String()
}

// hash works on a zero table too, before init has picked a hasher.
func (h *HashTable[K, V]) hash(key K) uint32 {
	if h.hasher == nil {
		return defaultHash(key)
	}
	return h.hasher(key)
}

func (h *HashTable[K, V]) index(hash uint32) int {
	return int(hash&0x7fffffff) % len(h.buckets)
}

func (h *HashTable[K, V]) seek(hash uint32, key K) *Element[*hashEntry[K, V]] {
	if len(h.buckets) == 0 {
		return nil
	}
	for e := h.buckets[h.index(hash)].First(); e != nil; e = e.Next() {
		if e.Value.hash == hash && e.Value.key == key {
			return e
		}
	}
	return nil
}

func (h *HashTable[K, V]) each(fn func(*hashEntry[K, V])) {
	for i := range h.buckets {
		for e := h.buckets[i].First(); e != nil; e = e.Next() {
			fn(e.Value)
		}
	}
}

// resize doubles the bucket count and moves every entry into its new
// chain. Hashes are stored, so keys are not rehashed.
func (h *HashTable[K, V]) resize() {
	old := h.buckets
	h.buckets = make([]List[*hashEntry[K, V]], 2*len(old))
	h.threshold = int(float64(len(h.buckets)) * h.loadFactor)
	for i := range old {
		for !old[i].Empty() {
			entry, _ := old[i].RemoveFront()
			h.buckets[h.index(entry.hash)].InsertBack(entry)
		}
	}
}
