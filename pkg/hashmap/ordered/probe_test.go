package ordered

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// slotsFrom builds a slot table of size n with the given keys placed at
// fixed positions, a minimal key/position model for exercising the probe
// primitives without a real hash function.
func slotsFrom(n int, at map[uint64]int) []*entry[int, int] {
	slots := make([]*entry[int, int], n)
	for pos, key := range at {
		slots[pos] = &entry[int, int]{key: key, slot: pos}
	}
	return slots
}

func TestInCyclicRange(t *testing.T) {
	tests := []struct {
		name        string
		i, from, to uint64
		want        bool
	}{
		{"inside plain", 3, 2, 5, true},
		{"at from", 2, 2, 5, true},
		{"at to", 5, 2, 5, true},
		{"below plain", 1, 2, 5, false},
		{"above plain", 6, 2, 5, false},
		{"wrapped low side", 1, 6, 2, true},
		{"wrapped high side", 7, 6, 2, true},
		{"wrapped at to", 2, 6, 2, true},
		{"wrapped outside", 4, 6, 2, false},
		{"single wide", 3, 3, 3, true},
		{"single wide miss", 4, 3, 3, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, inCyclicRange(tt.i, tt.from, tt.to))
		})
	}
}

func TestLocate(t *testing.T) {
	// keys 10 and 11 both hash home to slot 2 and sit in a run 2..3
	slots := slotsFrom(8, map[uint64]int{2: 10, 3: 11})

	require.Equal(t, uint64(2), locate(slots, 2, 10))
	require.Equal(t, uint64(3), locate(slots, 2, 11))
	// absent key probing the same run lands on the first empty slot after it
	require.Equal(t, uint64(4), locate(slots, 2, 12))
	// absent key with an empty home position stops right there
	require.Equal(t, uint64(6), locate(slots, 6, 13))
}

func TestLocate_Wraparound(t *testing.T) {
	slots := slotsFrom(8, map[uint64]int{6: 20, 7: 21, 0: 22})

	require.Equal(t, uint64(0), locate(slots, 6, 22))
	require.Equal(t, uint64(1), locate(slots, 6, 23))
}

func TestShiftCandidate_EmptyEndsRun(t *testing.T) {
	slots := slotsFrom(8, map[uint64]int{2: 10})
	homes := map[int]uint64{10: 2}
	home := func(k int) uint64 { return homes[k] }

	// hole at 3, slot 4 empty: nothing to shift
	require.Equal(t, uint64(4), shiftCandidate(slots, 3, home))
}

func TestShiftCandidate_SkipsPinnedEntry(t *testing.T) {
	// hole at 2; the entry at 3 is pinned (home 3 lies in [3,3]) but the
	// entry at 4 homes at 2 and may move into the hole
	slots := slotsFrom(8, map[uint64]int{3: 30, 4: 31})
	homes := map[int]uint64{30: 3, 31: 2}
	home := func(k int) uint64 { return homes[k] }

	require.Equal(t, uint64(4), shiftCandidate(slots, 2, home))
}

func TestShiftCandidate_Wraparound(t *testing.T) {
	// hole at 6; run wraps: entry at 7 homes at 7 (pinned), entry at 0
	// homes at 6 so its probe path passes through the hole
	slots := slotsFrom(8, map[uint64]int{7: 40, 0: 41})
	homes := map[int]uint64{40: 7, 41: 6}
	home := func(k int) uint64 { return homes[k] }

	require.Equal(t, uint64(0), shiftCandidate(slots, 6, home))
}

func TestShiftCandidate_MovableFirst(t *testing.T) {
	// hole at 2; entry at 3 homes at 1, i.e. before the hole, so it is the
	// immediate shift candidate
	slots := slotsFrom(8, map[uint64]int{3: 50})
	homes := map[int]uint64{50: 1}
	home := func(k int) uint64 { return homes[k] }

	require.Equal(t, uint64(3), shiftCandidate(slots, 2, home))
}
