package testutil

import (
	"math/rand"
	"slices"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Int63n returns a non-negative pseudo-random int64 in [0,n).
func (r *RNG) Int63n(n int64) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Int63n(n)
}

// Uint32n returns a pseudo-random uint32 in [0,n).
func (r *RNG) Uint32n(n uint32) uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return uint32(r.rand.Int63n(int64(n)))
}

// Bytes returns n pseudo-random bytes.
func (r *RNG) Bytes(n int) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	b := make([]byte, n)
	_, _ = r.rand.Read(b)
	return b
}

// Digits returns n random ASCII digits.
func (r *RNG) Digits(n int) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	b := make([]byte, n)
	for i := range b {
		b[i] = byte('0' + r.rand.Intn(10))
	}
	return b
}

// mixedRunes covers every UTF-8 encoding length plus combining marks and
// wide characters.
var mixedRunes = []rune{'a', 'Z', '7', ' ', 'é', 'ß', 'Ж', '\u0301', '日', '本', '한', '€', '😀', '👍', '\U0001F3FD'}

// UTF8 returns a valid UTF-8 string of n runes drawn from a mix of ASCII,
// two-, three- and four-byte sequences.
func (r *RNG) UTF8(n int) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]rune, n)
	for i := range out {
		out[i] = mixedRunes[r.rand.Intn(len(mixedRunes))]
	}
	return string(out)
}

// SortedUint32s returns up to n distinct values in [0, limit) in ascending
// order.
func (r *RNG) SortedUint32s(n int, limit uint32) []uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	if uint64(n) > uint64(limit) {
		n = int(limit)
	}
	seen := make(map[uint32]struct{}, n)
	out := make([]uint32, 0, n)
	for len(out) < n {
		v := uint32(r.rand.Int63n(int64(limit)))
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}

// Int64s returns n pseudo-random values in [lo, hi].
func (r *RNG) Int64s(n int, lo, hi int64) []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	span := uint64(hi - lo)
	out := make([]int64, n)
	for i := range out {
		var off uint64
		if span == ^uint64(0) {
			off = r.rand.Uint64()
		} else {
			off = r.rand.Uint64() % (span + 1)
		}
		out[i] = lo + int64(off)
	}
	return out
}

// Zipf returns n values in [0, imax] following a Zipf distribution with
// skew s > 1.
func (r *RNG) Zipf(n int, s float64, imax uint64) []uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	z := rand.NewZipf(r.rand, s, 1, imax)
	out := make([]uint64, n)
	for i := range out {
		out[i] = z.Uint64()
	}
	return out
}

// ScalarIntersect is the reference two-pointer intersection used to
// verify the optimized kernels.
func ScalarIntersect(a, b []uint32) []uint32 {
	out := []uint32{}
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	return out
}
