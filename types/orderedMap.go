package types

type entry[K comparable, V any] struct {
	elem  *Element[K]
	value V
}

// OrderedMap is a map that remembers insertion order. Keys are kept in a
// List so Delete splices in O(1).
type OrderedMap[K comparable, V any] struct {
	kv map[K]*entry[K, V]
	ll List[K]
}

func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		kv: make(map[K]*entry[K, V]),
	}
}

func (m *OrderedMap[K, V]) Get(key K) (value V, ok bool) {
	v, ok := m.kv[key]
	if ok {
		value = v.value
	}

	return
}

func (m *OrderedMap[K, V]) Set(key K, value V) bool {
	if e, alreadyExist := m.kv[key]; alreadyExist {
		e.value = value
		return false
	}

	m.kv[key] = &entry[K, V]{elem: m.ll.InsertBack(key), value: value}
	return true
}

func (m *OrderedMap[K, V]) Len() int {
	return len(m.kv)
}

func (m *OrderedMap[K, V]) Keys() []K {
	return m.ll.Slice()
}

func (m *OrderedMap[K, V]) Delete(key K) (didDelete bool) {
	e, ok := m.kv[key]
	if ok {
		m.ll.RemoveElement(e.elem)
		delete(m.kv, key)
	}

	return ok
}
