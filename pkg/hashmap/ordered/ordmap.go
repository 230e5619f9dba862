package ordered

import (
	"hash/maphash"
	"iter"
)

// HashFn is a type definition for what a hash function should look like.
type HashFn[K comparable] func(key K) uint64

// defaultHashFn returns the hash function used when the caller does not
// supply one. Every map gets its own random seed.
func defaultHashFn[K comparable]() HashFn[K] {
	seed := maphash.MakeSeed()
	return func(key K) uint64 {
		return maphash.Comparable(seed, key)
	}
}

// Pair is a single key value association, as stored by the map and yielded
// by its iterators.
type Pair[K comparable, V any] struct {
	Key K
	Val V
}

// Map is an open addressing hash map that remembers insertion order. Keys
// hash into a cyclically probed slot table, while an intrusive linked list
// threads the live entries in the order they were first inserted, so
// iteration is always insertion ordered. Deletion is tombstone free: the
// vacated slot is refilled by back-shifting displaced entries, keeping
// every surviving key reachable along its probe path.
//
// Insert never overwrites: the first value stored under a key stays until
// the key is deleted. A Map is not safe for concurrent use.
type Map[K comparable, V any] struct {
	hash  HashFn[K]
	mask  uint64 // this minus one trick is what lets us mask instead of modulo
	keys  uint
	slots []*entry[K, V]
	list  *chain[K, V]
}

// NewMap returns an empty map using the default seeded hash function.
func NewMap[K comparable, V any]() *Map[K, V] {
	return NewMapWithHash[K, V](nil)
}

// NewMapWithHash returns an empty map hashing keys with hash. Passing a nil
// hash falls back to the default hash function.
func NewMapWithHash[K comparable, V any](hash HashFn[K]) *Map[K, V] {
	if hash == nil {
		hash = defaultHashFn[K]()
	}
	return &Map[K, V]{
		hash:  hash,
		mask:  InitialCapacity - 1,
		slots: make([]*entry[K, V], InitialCapacity),
		list:  newChain[K, V](),
	}
}

// FromSeq returns a map filled from seq in order. The first value yielded
// for a key wins; later duplicates are ignored, same as Insert.
func FromSeq[K comparable, V any](seq iter.Seq2[K, V]) *Map[K, V] {
	m := NewMap[K, V]()
	for key, val := range seq {
		m.Insert(key, val)
	}
	return m
}

// FromPairs returns a map filled from pairs in order, first key wins.
func FromPairs[K comparable, V any](pairs ...Pair[K, V]) *Map[K, V] {
	m := NewMap[K, V]()
	for _, p := range pairs {
		m.Insert(p.Key, p.Val)
	}
	return m
}

// Len returns the number of live entries in the map.
func (m *Map[K, V]) Len() int {
	return int(m.keys)
}

// Empty reports whether the map holds no entries.
func (m *Map[K, V]) Empty() bool {
	return m.keys == 0
}

// HashFn returns the hash function the map is using.
func (m *Map[K, V]) HashFn() HashFn[K] {
	return m.hash
}

// PercentFull returns the current load factor of the slot table.
func (m *Map[K, V]) PercentFull() float64 {
	return float64(m.keys) / float64(len(m.slots))
}

// home returns key's home position in the current slot table.
func (m *Map[K, V]) home(key K) uint64 {
	return m.hash(key) & m.mask
}

// Insert stores val under key and reports whether it did. If key is already
// present nothing happens and the existing value is kept.
func (m *Map[K, V]) Insert(key K, val V) bool {
	pos := locate(m.slots, m.home(key), key)
	if m.slots[pos] != nil {
		// first insert wins
		return false
	}
	m.placeNew(pos, key, val)
	return true
}

// placeNew appends a fresh entry to the chain, stores it at the empty slot
// pos and runs the growth check.
func (m *Map[K, V]) placeNew(pos uint64, key K, val V) {
	e := m.list.pushBack(key, val)
	e.slot = pos
	m.slots[pos] = e
	m.keys++
	m.growIfNeeded()
}

// Get returns the value stored under key, or false when key is absent.
func (m *Map[K, V]) Get(key K) (V, bool) {
	pos := locate(m.slots, m.home(key), key)
	if m.slots[pos] == nil {
		var zero V
		return zero, false
	}
	return m.slots[pos].val, true
}

// At returns the value stored under key, or ErrKeyNotFound when absent.
func (m *Map[K, V]) At(key K) (V, error) {
	pos := locate(m.slots, m.home(key), key)
	if m.slots[pos] == nil {
		var zero V
		return zero, ErrKeyNotFound
	}
	return m.slots[pos].val, nil
}

// Ref returns a pointer to the value stored under key, inserting the zero
// value first when key is absent. The pointer stays valid across growth
// (entries are relocated, never reallocated) but not across deletion of
// the key.
func (m *Map[K, V]) Ref(key K) *V {
	pos := locate(m.slots, m.home(key), key)
	if m.slots[pos] == nil {
		var zero V
		m.placeNew(pos, key, zero)
		// growth may have moved the entry to another slot
		pos = locate(m.slots, m.home(key), key)
	}
	return &m.slots[pos].val
}

// Find returns an iterator positioned on key, or End when key is absent.
func (m *Map[K, V]) Find(key K) Iterator[K, V] {
	pos := locate(m.slots, m.home(key), key)
	if m.slots[pos] == nil {
		return m.End()
	}
	return Iterator[K, V]{item: m.slots[pos]}
}

// Del removes key and reports whether it was present. The vacated slot is
// refilled by back-shifting, so no tombstones are left behind and every
// remaining key stays reachable along its probe path. Insertion order of
// the surviving entries is untouched.
func (m *Map[K, V]) Del(key K) bool {
	pos := locate(m.slots, m.home(key), key)
	if m.slots[pos] == nil {
		return false
	}
	m.list.remove(m.slots[pos])
	m.slots[pos] = nil
	m.keys--

	// repair the probe runs that pass through the hole
	next := shiftCandidate(m.slots, pos, m.home)
	for m.slots[next] != nil {
		m.slots[pos] = m.slots[next]
		m.slots[next] = nil
		m.slots[pos].slot = pos

		pos = next
		next = shiftCandidate(m.slots, pos, m.home)
	}

	// kept symmetric with Insert; size only went down so this never fires
	m.growIfNeeded()
	return true
}

// Clear removes every entry but keeps the slot table at its current
// capacity.
func (m *Map[K, V]) Clear() {
	for e := m.list.begin; e != m.list.tail; {
		next := e.next
		m.slots[e.slot] = nil
		m.list.remove(e)
		e = next
	}
	m.keys = 0
}

// Clone returns an independent deep copy built by re-inserting every pair
// in iteration order. The copy shares the hash function but no structure.
func (m *Map[K, V]) Clone() *Map[K, V] {
	other := NewMapWithHash[K, V](m.hash)
	for key, val := range m.All() {
		other.Insert(key, val)
	}
	return other
}

// CopyFrom replaces the contents of m with an independent copy of other,
// re-inserted in other's iteration order. Assigning a map to itself is a
// no-op.
func (m *Map[K, V]) CopyFrom(other *Map[K, V]) {
	if m == other {
		return
	}
	m.reset()
	for key, val := range other.All() {
		m.Insert(key, val)
	}
}

// reset drops every entry and shrinks the slot table back to the initial
// capacity. Only assignment does this; Clear keeps capacity instead.
func (m *Map[K, V]) reset() {
	m.mask = InitialCapacity - 1
	m.slots = make([]*entry[K, V], InitialCapacity)
	m.list = newChain[K, V]()
	m.keys = 0
}

// growIfNeeded doubles the slot table once size reaches three quarters of
// capacity. Called after every insert and, symmetrically, after every
// delete.
func (m *Map[K, V]) growIfNeeded() {
	if m.keys*loadFactorDen >= uint(len(m.slots))*loadFactorNum {
		m.rehash(uint64(len(m.slots)) * 2)
	}
}

// rehash rebuilds the slot table at newCap and re-places every live entry
// in chain order. Entries are relocated, never reallocated, so insertion
// order and outstanding value pointers survive.
func (m *Map[K, V]) rehash(newCap uint64) {
	m.slots = make([]*entry[K, V], newCap)
	m.mask = newCap - 1
	m.keys = 0
	for e := m.list.begin; e != m.list.tail; e = e.next {
		m.place(e)
	}
}

// place stores an already chained entry into the slot table.
func (m *Map[K, V]) place(e *entry[K, V]) {
	pos := locate(m.slots, m.home(e.key), e.key)
	if m.slots[pos] == nil {
		m.slots[pos] = e
		e.slot = pos
		m.keys++
	}
}
