package ordered

// The probe primitives below operate on the bare slot slice plus a home
// position callback and have no side effects, so they can be tested with a
// fixed key/position model independent of the chain and the hash function.
// len(slots) must be a power of two.

// locate scans the slot table cyclically starting at home and returns the
// position holding key if it is present, otherwise the first empty slot on
// the probe path. The table always keeps at least a quarter of its slots
// empty, so the scan terminates.
func locate[K comparable, V any](slots []*entry[K, V], home uint64, key K) uint64 {
	mask := uint64(len(slots)) - 1
	for i := home & mask; ; i = (i + 1) & mask {
		if slots[i] == nil || slots[i].key == key {
			return i
		}
	}
}

// shiftCandidate returns the first position after pos that is either empty
// or holds an entry that may legally move into pos. An entry at i may move
// when its home position, as reported by the home callback, does not lie in
// the cyclic interval [pos+1, i]: its probe path reaches back through pos,
// so relocating it there keeps the path intact. Entries whose home lies
// inside the interval are pinned and the scan passes over them.
func shiftCandidate[K comparable, V any](slots []*entry[K, V], pos uint64, home func(K) uint64) uint64 {
	mask := uint64(len(slots)) - 1
	for i := (pos + 1) & mask; ; i = (i + 1) & mask {
		if slots[i] == nil {
			return i
		}
		if !inCyclicRange(home(slots[i].key)&mask, (pos+1)&mask, i) {
			return i
		}
	}
}

// inCyclicRange reports whether i lies inside the cyclic closed interval
// [from, to]. When from > to the interval wraps past the end of the table.
func inCyclicRange(i, from, to uint64) bool {
	if from <= to {
		return from <= i && i <= to
	}
	return i <= to || from <= i
}
