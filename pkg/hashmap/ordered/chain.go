package ordered

// entry is a single key value pair in the map. Entries are threaded on an
// intrusive doubly linked list in insertion order and additionally record
// the slot table position they currently occupy, so deletion compaction
// can relocate them without searching.
type entry[K comparable, V any] struct {
	key  K
	val  V
	prev *entry[K, V]
	next *entry[K, V]
	slot uint64
}

// connect splices the entry in between its prev and next neighbors.
func (e *entry[K, V]) connect() {
	if e.next != nil {
		e.next.prev = e
	}
	if e.prev != nil {
		e.prev.next = e
	}
}

// disconnect cuts the entry out of the list and joins its neighbors.
func (e *entry[K, V]) disconnect() {
	if e.next != nil {
		e.next.prev = e.prev
	}
	if e.prev != nil {
		e.prev.next = e.next
	}
}

// chain threads all live entries in insertion order. The tail sentinel is
// allocated once per map and never removed; begin caches the earliest live
// entry so iteration does not have to scan the sparse slot table.
type chain[K comparable, V any] struct {
	begin *entry[K, V]
	tail  *entry[K, V]
}

func newChain[K comparable, V any]() *chain[K, V] {
	tail := new(entry[K, V])
	return &chain[K, V]{begin: tail, tail: tail}
}

// pushBack appends a fresh entry holding key and val just before the
// sentinel and returns it.
func (c *chain[K, V]) pushBack(key K, val V) *entry[K, V] {
	e := &entry[K, V]{key: key, val: val, prev: c.tail.prev, next: c.tail}
	e.connect()
	if e.prev == nil {
		// first live entry
		c.begin = e
	}
	return e
}

// remove unsplices e from the chain. The entry becomes garbage once the
// caller clears its slot reference.
func (c *chain[K, V]) remove(e *entry[K, V]) {
	if e == c.begin {
		c.begin = e.next
	}
	e.disconnect()
}

// empty reports whether no live entries remain on the chain.
func (c *chain[K, V]) empty() bool {
	return c.begin == c.tail
}
