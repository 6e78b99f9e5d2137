package numstr

import (
	"encoding/binary"
	"math"
	"math/bits"

	"github.com/hupe1980/datakit/int128"
	"github.com/hupe1980/datakit/internal/simd"
)

// MaxUint128Digits is the decimal length of 2^128 - 1.
const MaxUint128Digits = 39

const (
	maxUint64Digits = 20
	chunkDigits     = 18
)

// Parse8Digits converts eight ASCII digits, loaded little-endian so the
// most significant digit is in the lowest byte, into their value.
// The input is not validated.
func Parse8Digits(w uint64) uint64 {
	w -= 0x3030303030303030
	w = w*10 + w>>8
	w = ((w&0x000000FF000000FF)*(100+1000000<<32) +
		(w>>16&0x000000FF000000FF)*(1+10000<<32)) >> 32
	return w
}

// ParseUint64Fast converts up to 19 ASCII digits without validation or
// overflow checks.
func ParseUint64Fast(b []byte) uint64 {
	var v uint64
	for len(b) >= 8 {
		v = v*100000000 + Parse8Digits(binary.LittleEndian.Uint64(b))
		b = b[8:]
	}
	for _, c := range b {
		v = v*10 + uint64(c-'0')
	}
	return v
}

// ParseUint64FastCheckNumeric is ParseUint64Fast with digit validation.
// Overflow is still unchecked.
func ParseUint64FastCheckNumeric(b []byte) (uint64, bool) {
	if !simd.IsDigits(b) {
		return 0, false
	}
	return ParseUint64Fast(b), true
}

// IsDigits reports whether b consists only of ASCII digits.
func IsDigits(b []byte) bool {
	return simd.IsDigits(b)
}

// canonical reports whether b is a non-empty run of digits without a
// leading zero, except for "0" itself.
func canonical(b []byte) bool {
	if len(b) == 0 {
		return false
	}
	if b[0] == '0' {
		return len(b) == 1
	}
	return simd.IsDigits(b)
}

// ParseUint64 converts a canonical decimal string into a uint64.
// It rejects empty input, signs, leading zeros and overflow.
func ParseUint64(b []byte) (uint64, bool) {
	if len(b) > maxUint64Digits || !canonical(b) {
		return 0, false
	}
	if len(b) < maxUint64Digits {
		return ParseUint64Fast(b), true
	}
	hi, lo := bits.Mul64(ParseUint64Fast(b[:19]), 10)
	if hi != 0 {
		return 0, false
	}
	v, carry := bits.Add64(lo, uint64(b[19]-'0'), 0)
	if carry != 0 {
		return 0, false
	}
	return v, true
}

// ParseInt64 converts a canonical, optionally negative decimal string into
// an int64. A lone "-" and "-0" are rejected.
func ParseInt64(b []byte) (int64, bool) {
	if len(b) == 0 {
		return 0, false
	}
	neg := b[0] == '-'
	if neg {
		b = b[1:]
		if len(b) == 0 || b[0] == '0' {
			return 0, false
		}
	}
	u, ok := ParseUint64(b)
	if !ok {
		return 0, false
	}
	if neg {
		if u > 1<<63 {
			return 0, false
		}
		return int64(-u), true
	}
	if u > math.MaxInt64 {
		return 0, false
	}
	return int64(u), true
}

// ParseUint128 converts a canonical decimal string into a Uint128.
// Inputs longer than 39 digits are rejected without inspection.
func ParseUint128(b []byte) (int128.Uint128, bool) {
	if len(b) > MaxUint128Digits || !canonical(b) {
		return int128.Uint128{}, false
	}

	// Fewer than 39 digits cannot overflow.
	checked := len(b) == MaxUint128Digits
	var v int128.Uint128
	for len(b) > 0 {
		n := min(chunkDigits, len(b))
		chunk := ParseUint64Fast(b[:n])
		if !checked {
			v = v.Mul64(TenPow(n)).Add64(chunk)
		} else {
			var ok bool
			if v, ok = v.Mul64Checked(TenPow(n)); !ok {
				return int128.Uint128{}, false
			}
			if v, ok = v.AddChecked(int128.U64(chunk)); !ok {
				return int128.Uint128{}, false
			}
		}
		b = b[n:]
	}
	return v, true
}

// ParseInt128 converts a canonical, optionally negative decimal string into
// an Int128. Values outside [-2^127, 2^127-1] are rejected.
func ParseInt128(b []byte) (int128.Int128, bool) {
	if len(b) == 0 || len(b) > MaxUint128Digits+1 {
		return int128.Int128{}, false
	}
	neg := b[0] == '-'
	if neg {
		b = b[1:]
		if len(b) == 0 || b[0] == '0' {
			return int128.Int128{}, false
		}
	}
	u, ok := ParseUint128(b)
	if !ok {
		return int128.Int128{}, false
	}
	limit := int128.MinInt128.Abs()
	if neg {
		if u.Cmp(limit) > 0 {
			return int128.Int128{}, false
		}
		return u.Int128().Neg(), true
	}
	if u.Cmp(limit) >= 0 {
		return int128.Int128{}, false
	}
	return u.Int128(), true
}

// AddInt64 returns a + b and false on overflow.
func AddInt64(a, b int64) (int64, bool) {
	s := a + b
	if (s > a) != (b > 0) {
		return a, false
	}
	return s, true
}

// SubInt64 returns a - b and false on overflow.
func SubInt64(a, b int64) (int64, bool) {
	d := a - b
	if (d < a) != (b > 0) {
		return a, false
	}
	return d, true
}
