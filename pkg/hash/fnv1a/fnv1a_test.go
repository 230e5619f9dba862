package fnv1a

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// reference vectors from the canonical FNV test suite
var vectors = []struct {
	in   string
	want uint64
}{
	{"", 0xcbf29ce484222325},
	{"a", 0xaf63dc4c8601ec8c},
	{"b", 0xaf63df4c8601f1a5},
	{"foobar", 0x85944171f73967e8},
}

func TestSum64(t *testing.T) {
	for _, tt := range vectors {
		require.Equal(t, tt.want, Sum64([]byte(tt.in)), "input %q", tt.in)
	}
}

func TestSumString64(t *testing.T) {
	for _, tt := range vectors {
		require.Equal(t, tt.want, SumString64(tt.in), "input %q", tt.in)
	}
}
