package datakit

import "github.com/hupe1980/datakit/internal/simd"

// Popcount returns the number of set bits in b using the active kernel set.
func Popcount(b []byte) int {
	return simd.Popcount(b)
}

// PopcountWords returns the number of set bits across words.
func PopcountWords(words []uint64) int {
	return simd.PopcountWords(words)
}
