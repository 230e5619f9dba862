package ordered

import "iter"

// Iterator points at a single entry and walks the map in insertion order.
// It holds a non owning reference: deleting the entry it points at, or
// clearing the map, invalidates it. Two iterators are equal (==) exactly
// when they point at the same entry.
type Iterator[K comparable, V any] struct {
	item *entry[K, V]
}

// Key returns the key under the iterator.
func (it Iterator[K, V]) Key() K {
	return it.item.key
}

// Val returns the value under the iterator.
func (it Iterator[K, V]) Val() V {
	return it.item.val
}

// SetVal replaces the value under the iterator in place.
func (it Iterator[K, V]) SetVal(val V) {
	it.item.val = val
}

// Pair returns the key value pair under the iterator.
func (it Iterator[K, V]) Pair() Pair[K, V] {
	return Pair[K, V]{Key: it.item.key, Val: it.item.val}
}

// Next returns an iterator advanced by one entry in insertion order.
// Advancing the End iterator is invalid.
func (it Iterator[K, V]) Next() Iterator[K, V] {
	return Iterator[K, V]{item: it.item.next}
}

// Begin returns an iterator on the earliest live entry, or End when the
// map is empty.
func (m *Map[K, V]) Begin() Iterator[K, V] {
	return Iterator[K, V]{item: m.list.begin}
}

// End returns the past the end iterator. It compares equal across calls
// for the life of the map.
func (m *Map[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{item: m.list.tail}
}

// All returns an insertion ordered sequence over the map for use with
// range. The map must not be mutated while ranging.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for e := m.list.begin; e != m.list.tail; e = e.next {
			if !yield(e.key, e.val) {
				return
			}
		}
	}
}
