package testutil

import (
	"slices"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortedUint32s(t *testing.T) {
	rng := NewRNG(4711)

	v := rng.SortedUint32s(500, 1000)
	require.Len(t, v, 500)
	assert.True(t, slices.IsSorted(v))
	for i := 1; i < len(v); i++ {
		assert.Less(t, v[i-1], v[i])
	}
	assert.Less(t, v[len(v)-1], uint32(1000))

	assert.Len(t, rng.SortedUint32s(10, 4), 4)
}

func TestReset(t *testing.T) {
	rng := NewRNG(1)
	first := rng.Uint64()
	rng.Reset()
	assert.Equal(t, first, rng.Uint64())
	assert.Equal(t, int64(1), rng.Seed())
}

func TestUTF8(t *testing.T) {
	rng := NewRNG(4711)
	s := rng.UTF8(64)
	assert.True(t, utf8.ValidString(s))
	assert.Equal(t, 64, utf8.RuneCountInString(s))
}

func TestDigits(t *testing.T) {
	rng := NewRNG(4711)
	for _, c := range rng.Digits(100) {
		assert.True(t, c >= '0' && c <= '9')
	}
}

func TestInt64s(t *testing.T) {
	rng := NewRNG(4711)
	for _, v := range rng.Int64s(1000, -5, 5) {
		assert.GreaterOrEqual(t, v, int64(-5))
		assert.LessOrEqual(t, v, int64(5))
	}
}

func TestScalarIntersect(t *testing.T) {
	assert.Equal(t, []uint32{2, 5}, ScalarIntersect([]uint32{1, 2, 5, 9}, []uint32{2, 3, 5}))
	assert.Empty(t, ScalarIntersect(nil, []uint32{1}))
}
