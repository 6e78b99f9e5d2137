// Package f16 implements IEEE-754 binary16 (half precision) conversion.
//
// The linear codec stores 32- and 64-bit reals as half floats whenever the
// conversion is lossless, so every conversion here is bit-exact and uses
// round-to-nearest, ties-to-even.
package f16

import (
	"encoding/binary"
	"math"
)

// Bits is the raw binary16 bit pattern.
//
//	sign: 1 bit
//	exp:  5 bits (bias 15)
//	frac: 10 bits
type Bits uint16

const (
	signMask Bits = 0x8000
	expMask  Bits = 0x7C00
	fracMask Bits = 0x03FF

	// Smallest float32 magnitude that rounds to +Inf in binary16 (65520).
	f32Overflow uint32 = 0x477FF000
	// float32 magnitude of 2^-14, the smallest normal binary16.
	f32MinNormal uint32 = 0x38800000
	// float32 magnitude of 2^-25; anything at or below rounds to zero.
	f32Underflow uint32 = 0x33000000
)

// Known bit patterns.
const (
	PositiveZero Bits = 0x0000
	NegativeZero Bits = 0x8000
	One          Bits = 0x3C00
	PositiveInf  Bits = 0x7C00
	NegativeInf  Bits = 0xFC00
	QuietNaN     Bits = 0x7E00
	MaxValue     Bits = 0x7BFF
)

// FromFloat32 converts f to the nearest binary16 value.
func FromFloat32(f float32) Bits {
	b := math.Float32bits(f)
	sign := Bits(b>>16) & signMask
	abs := b & 0x7FFFFFFF

	switch {
	case abs > 0x7F800000:
		return sign | QuietNaN | Bits(abs>>13)&fracMask
	case abs >= f32Overflow:
		return sign | PositiveInf
	case abs >= f32MinNormal:
		v := abs - 112<<23
		m := v >> 13
		rem := v & 0x1FFF
		if rem > 0x1000 || (rem == 0x1000 && m&1 == 1) {
			m++
		}
		return sign | Bits(m)
	case abs <= f32Underflow:
		return sign
	}

	shift := 126 - abs>>23
	mant := abs&0x007FFFFF | 0x00800000
	m := mant >> shift
	rem := mant & (1<<shift - 1)
	half := uint32(1) << (shift - 1)
	if rem > half || (rem == half && m&1 == 1) {
		m++
	}
	return sign | Bits(m)
}

// FromFloat64 converts f to binary16 through float32.
func FromFloat64(f float64) Bits {
	return FromFloat32(float32(f))
}

// Float32 returns h as a float32. The conversion is exact.
func (h Bits) Float32() float32 {
	neg := h&signMask != 0
	exp := uint32(h&expMask) >> 10
	frac := uint32(h & fracMask)

	var out float32
	switch exp {
	case 0:
		out = float32(frac) * (1.0 / (1 << 24))
	case 0x1F:
		bits := uint32(0x7F800000) | frac<<13
		if neg {
			bits |= 1 << 31
		}
		return math.Float32frombits(bits)
	default:
		return math.Float32frombits(uint32(h&signMask)<<16 | (exp+112)<<23 | frac<<13)
	}
	if neg {
		out = -out
	}
	return out
}

// Float64 returns h as a float64. The conversion is exact.
func (h Bits) Float64() float64 {
	return float64(h.Float32())
}

// IsNaN reports whether h is a NaN.
func (h Bits) IsNaN() bool {
	return h&expMask == expMask && h&fracMask != 0
}

// IsInf reports whether h is an infinity.
func (h Bits) IsInf() bool {
	return h&^signMask == PositiveInf
}

// Exact32 converts f and reports whether converting back yields the same
// float32 bit pattern.
func Exact32(f float32) (Bits, bool) {
	h := FromFloat32(f)
	return h, math.Float32bits(h.Float32()) == math.Float32bits(f)
}

// AppendLE appends h to dst in little-endian byte order.
func AppendLE(dst []byte, h Bits) []byte {
	return binary.LittleEndian.AppendUint16(dst, uint16(h))
}

// LoadLE reads a little-endian half float from b.
func LoadLE(b []byte) Bits {
	return Bits(binary.LittleEndian.Uint16(b))
}
