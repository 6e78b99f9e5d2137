package mem

import (
	"fmt"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocAligned(t *testing.T) {
	sizes := []int{1, 10, 63, 64, 65, 100, 1024}

	for _, size := range sizes {
		buf := AllocAligned(size)
		assert.Len(t, buf, size)
		assert.Equal(t, size, cap(buf))

		addr := uintptr(unsafe.Pointer(&buf[0]))
		assert.Equal(t, uintptr(0), addr%Alignment, "Address %d should be aligned to %d for size %d", addr, Alignment, size)
	}

	assert.Nil(t, AllocAligned(0))
	assert.Nil(t, AllocAligned(-1))
}

func TestAllocAlignedUint32(t *testing.T) {
	sizes := []int{1, 10, 16, 17, 100, 1024}

	for _, size := range sizes {
		buf := AllocAlignedUint32(size)
		assert.Len(t, buf, size)

		addr := uintptr(unsafe.Pointer(&buf[0]))
		assert.Equal(t, uintptr(0), addr%Alignment, "Address %d should be aligned to %d for size %d", addr, Alignment, size)
	}

	assert.Nil(t, AllocAlignedUint32(0))
	assert.Nil(t, AllocAlignedUint32(-1))
}

func TestNextSize(t *testing.T) {
	tests := []struct {
		cur  int
		want int
	}{
		{-5, 1},
		{0, 1},
		{1, 2},
		{2, 3},
		{3, 5},
		{4, 5},
		{5, 8},
		{16, 21},
		{21, 34},
		{33, 34},
		{34, 55},
		{46368, 75025},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.cur), func(t *testing.T) {
			assert.Equal(t, tt.want, NextSize(tt.cur))
		})
	}

	assert.Equal(t, 16, NextSizeFrom(0, 16))
	assert.Equal(t, 21, NextSizeFrom(16, 16))
}

func TestNextSizeMonotonic(t *testing.T) {
	c := 0
	for i := 0; i < 200; i++ {
		n := NextSize(c)
		require.Greater(t, n, c)
		c = n
	}
}

func TestGrowUint32(t *testing.T) {
	var s []uint32
	for i := uint32(0); i < 1000; i++ {
		s = GrowUint32(s, 1)
		s = append(s, i)
	}
	require.Len(t, s, 1000)
	for i, v := range s {
		require.Equal(t, uint32(i), v)
	}

	before := cap(s)
	s = GrowUint32(s, 0)
	assert.Equal(t, before, cap(s))

	s = ShrinkUint32(s)
	assert.Equal(t, len(s), cap(s))
	assert.Equal(t, uint32(999), s[999])

	assert.Nil(t, ShrinkUint32(make([]uint32, 0, 8)))
}

func BenchmarkGrowUint32(b *testing.B) {
	for i := 0; i < b.N; i++ {
		var s []uint32
		for j := uint32(0); j < 4096; j++ {
			s = GrowUint32(s, 1)
			s = append(s, j)
		}
	}
}
