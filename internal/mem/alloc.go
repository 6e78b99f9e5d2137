package mem

import (
	"unsafe"
)

// Alignment is the byte alignment of every aligned allocation (64 bytes).
const Alignment = 64

// AllocAligned allocates a byte slice of the given size with 64-byte alignment.
// The returned slice is guaranteed to start at a memory address divisible by 64.
//
// Note: This function allocates slightly more memory than requested to ensure alignment.
// The underlying array is kept alive by the returned slice.
func AllocAligned(size int) []byte {
	if size <= 0 {
		return nil
	}

	buf := make([]byte, size+Alignment)

	ptr := unsafe.Pointer(&buf[0]) //nolint:gosec // unsafe is required for memory alignment
	addr := uintptr(ptr)
	offset := (Alignment - (addr & (Alignment - 1))) & (Alignment - 1)

	return buf[offset : offset+uintptr(size) : offset+uintptr(size)]
}

// AllocAlignedUint32 allocates a uint32 slice with length and capacity n
// and 64-byte alignment.
func AllocAlignedUint32(n int) []uint32 {
	if n <= 0 {
		return nil
	}
	byteSlice := AllocAligned(n * 4)
	ptr := unsafe.Pointer(&byteSlice[0])   //nolint:gosec // unsafe is required for memory alignment
	return unsafe.Slice((*uint32)(ptr), n) //nolint:gosec // unsafe is required for memory alignment
}

// GrowUint32 returns s with room for at least extra more elements. When
// the capacity is insufficient the contents are copied into a fresh
// aligned allocation sized by NextSize.
func GrowUint32(s []uint32, extra int) []uint32 {
	need := len(s) + extra
	if need <= cap(s) {
		return s
	}
	c := cap(s)
	for c < need {
		c = NextSize(c)
	}
	grown := AllocAlignedUint32(c)
	copy(grown, s)
	return grown[:len(s)]
}

// ShrinkUint32 returns s reallocated to exactly len(s) capacity. An empty
// slice shrinks to nil.
func ShrinkUint32(s []uint32) []uint32 {
	if len(s) == cap(s) {
		return s
	}
	if len(s) == 0 {
		return nil
	}
	out := AllocAlignedUint32(len(s))
	copy(out, s)
	return out
}
