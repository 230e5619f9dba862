package fnv1a

const (
	offset64 = 14695981039346656037
	prime64  = 1099511628211
)

// Sum64 returns the 64 bit FNV-1a hash of b.
func Sum64(b []byte) uint64 {
	h := uint64(offset64)
	for _, c := range b {
		h ^= uint64(c)
		h *= prime64
	}
	return h
}

// SumString64 returns the 64 bit FNV-1a hash of s without copying it.
func SumString64(s string) uint64 {
	h := uint64(offset64)
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= prime64
	}
	return h
}
