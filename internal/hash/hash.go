package hash

import "github.com/cespare/xxhash/v2"

// Fingerprint computes the xxHash64 of b.
func Fingerprint(b []byte) uint64 {
	return xxhash.Sum64(b)
}

// FingerprintString computes the xxHash64 of s without copying it.
func FingerprintString(s string) uint64 {
	return xxhash.Sum64String(s)
}
