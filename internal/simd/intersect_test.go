package simd

import (
	"fmt"
	"testing"

	"github.com/hupe1980/datakit/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type intersectFn func(a, b, out []uint32) int

func intersectVariants() map[string]intersectFn {
	return map[string]intersectFn{
		"scalar":    IntersectScalar,
		"galloping": IntersectGalloping,
		"generic":   intersectGeneric,
		"128":       Intersect128,
		"256":       Intersect256,
		"active":    Intersect,
		"v1-4":      func(a, b, out []uint32) int { return swapRare(a, b, out, 4, IntersectV1) },
		"v1-8":      func(a, b, out []uint32) int { return swapRare(a, b, out, 8, IntersectV1) },
		"v3-4":      func(a, b, out []uint32) int { return swapRare(a, b, out, 4, IntersectV3) },
		"v3-8":      func(a, b, out []uint32) int { return swapRare(a, b, out, 8, IntersectV3) },
		"gallop-4":  func(a, b, out []uint32) int { return swapRare(a, b, out, 4, IntersectSIMDGalloping) },
		"gallop-8":  func(a, b, out []uint32) int { return swapRare(a, b, out, 8, IntersectSIMDGalloping) },
	}
}

func swapRare(a, b, out []uint32, lanes int, fn func(rare, freq, out []uint32, lanes int) int) int {
	if len(a) > len(b) {
		a, b = b, a
	}
	return fn(a, b, out, lanes)
}

func TestIntersectSmallCases(t *testing.T) {
	tests := []struct {
		name string
		a, b []uint32
		want []uint32
	}{
		{"both empty", nil, nil, []uint32{}},
		{"one empty", []uint32{1, 2, 3}, nil, []uint32{}},
		{"disjoint", []uint32{1, 3, 5}, []uint32{2, 4, 6}, []uint32{}},
		{"identical", []uint32{1, 2, 3}, []uint32{1, 2, 3}, []uint32{1, 2, 3}},
		{"subset", []uint32{2, 4}, []uint32{1, 2, 3, 4, 5}, []uint32{2, 4}},
		{"extremes", []uint32{0, 1<<32 - 1}, []uint32{0, 7, 1<<32 - 1}, []uint32{0, 1<<32 - 1}},
	}
	for _, tt := range tests {
		for name, fn := range intersectVariants() {
			t.Run(tt.name+"/"+name, func(t *testing.T) {
				out := make([]uint32, min(len(tt.a), len(tt.b)))
				n := fn(tt.a, tt.b, out)
				assert.Equal(t, tt.want, out[:n])
			})
		}
	}
}

// Every kernel must match the scalar two-pointer output for every size
// ratio, including the ones that select v3 and galloping.
func TestIntersectEquivalence(t *testing.T) {
	rng := testutil.NewRNG(4711)
	shapes := []struct{ small, large int }{
		{1, 1},
		{7, 9},
		{15, 17},
		{100, 120},
		{300, 1000},
		{40, 2500},
		{100, 6000},
		{3, 4000},
		{5, 9000},
		{1, 70000},
		{64, 70000},
	}
	for _, s := range shapes {
		for _, limit := range []uint32{uint32(s.large) * 2, 1 << 20, 1<<32 - 1} {
			small := rng.SortedUint32s(s.small, limit)
			large := rng.SortedUint32s(s.large, limit)
			// Guarantee overlap.
			for i := 0; i < len(small); i += 2 {
				large = insertSorted(large, small[i])
			}
			want := testutil.ScalarIntersect(small, large)

			for name, fn := range intersectVariants() {
				t.Run(fmt.Sprintf("%dx%d/%d/%s", s.small, s.large, limit, name), func(t *testing.T) {
					out := make([]uint32, len(small))
					n := fn(small, large, out)
					require.Equal(t, want, out[:n])

					out = make([]uint32, len(small))
					n = fn(large, small, out)
					require.Equal(t, want, out[:n])
				})
			}
		}
	}
}

func TestIntersectInPlace(t *testing.T) {
	rng := testutil.NewRNG(7)
	large := rng.SortedUint32s(5000, 20000)
	for _, fn := range []intersectFn{Intersect128, Intersect256, intersectGeneric} {
		small := append([]uint32(nil), large[100:400]...)
		small = append(small, 20001, 20002)
		want := testutil.ScalarIntersect(small, large)

		n := fn(small, large, small)
		assert.Equal(t, want, small[:n])
	}
}

func TestSetKernels(t *testing.T) {
	defer setKernels(ActiveISA())

	a := []uint32{1, 2, 3, 10, 11}
	b := []uint32{2, 3, 4, 11}
	for _, isa := range []ISA{Generic, SSE41, NEON, AVX2} {
		setKernels(isa)
		out := make([]uint32, 4)
		n := Intersect(a, b, out)
		assert.Equal(t, []uint32{2, 3, 11}, out[:n], isa.String())
	}
}

func TestParseISA(t *testing.T) {
	for _, isa := range []ISA{Generic, NEON, SSE41, AVX2} {
		got, ok := ParseISA(isa.String())
		require.True(t, ok)
		assert.Equal(t, isa, got)
	}
	_, ok := ParseISA("avx1024")
	assert.False(t, ok)
	assert.Equal(t, "unknown", ISA(99).String())
	assert.Equal(t, 8, AVX2.Lanes())
	assert.Equal(t, 4, SSE41.Lanes())
	assert.True(t, isISAAvailable(Generic))
}

func insertSorted(s []uint32, v uint32) []uint32 {
	lo, hi := 0, len(s)
	for lo < hi {
		mid := (lo + hi) / 2
		if s[mid] < v {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(s) && s[lo] == v {
		return s
	}
	s = append(s, 0)
	copy(s[lo+1:], s[lo:])
	s[lo] = v
	return s
}

func BenchmarkIntersect(b *testing.B) {
	rng := testutil.NewRNG(4711)
	large := rng.SortedUint32s(100000, 1<<24)
	for _, n := range []int{50, 1000, 50000} {
		small := rng.SortedUint32s(n, 1<<24)
		out := make([]uint32, n)
		for _, v := range []struct {
			name string
			fn   intersectFn
		}{{"scalar", IntersectScalar}, {"128", Intersect128}, {"256", Intersect256}} {
			b.Run(fmt.Sprintf("%s/%d", v.name, n), func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					v.fn(small, large, out)
				}
			})
		}
	}
}
