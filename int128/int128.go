// Package int128 provides 128-bit signed and unsigned integer values.
//
// Both types are plain comparable structs, safe to use as map keys and
// to copy by value. Arithmetic wraps on overflow unless the Checked
// variant is used.
package int128

import (
	"math"
	"math/big"
	"math/bits"
	"strconv"
)

// Uint128 is an unsigned 128-bit integer.
type Uint128 struct {
	Hi, Lo uint64
}

// Int128 is a signed 128-bit integer in two's complement form.
type Int128 struct {
	Hi int64
	Lo uint64
}

var (
	// MaxUint128 is 2^128 - 1.
	MaxUint128 = Uint128{Hi: math.MaxUint64, Lo: math.MaxUint64}
	// MaxInt128 is 2^127 - 1.
	MaxInt128 = Int128{Hi: math.MaxInt64, Lo: math.MaxUint64}
	// MinInt128 is -2^127.
	MinInt128 = Int128{Hi: math.MinInt64, Lo: 0}
)

// U64 returns v as a Uint128.
func U64(v uint64) Uint128 { return Uint128{Lo: v} }

// I64 returns v as an Int128.
func I64(v int64) Int128 {
	return Int128{Hi: v >> 63, Lo: uint64(v)}
}

// IsZero reports whether u == 0.
func (u Uint128) IsZero() bool { return u.Hi == 0 && u.Lo == 0 }

// IsUint64 reports whether u fits in a uint64.
func (u Uint128) IsUint64() bool { return u.Hi == 0 }

// Uint64 returns the low 64 bits of u.
func (u Uint128) Uint64() uint64 { return u.Lo }

// Cmp returns -1, 0 or +1.
func (u Uint128) Cmp(o Uint128) int {
	switch {
	case u.Hi < o.Hi:
		return -1
	case u.Hi > o.Hi:
		return 1
	case u.Lo < o.Lo:
		return -1
	case u.Lo > o.Lo:
		return 1
	}
	return 0
}

// Less reports whether u < o.
func (u Uint128) Less(o Uint128) bool { return u.Cmp(o) < 0 }

// Add returns u + o, wrapping on overflow.
func (u Uint128) Add(o Uint128) Uint128 {
	lo, carry := bits.Add64(u.Lo, o.Lo, 0)
	hi, _ := bits.Add64(u.Hi, o.Hi, carry)
	return Uint128{Hi: hi, Lo: lo}
}

// AddChecked returns u + o and false if the sum overflowed.
func (u Uint128) AddChecked(o Uint128) (Uint128, bool) {
	lo, carry := bits.Add64(u.Lo, o.Lo, 0)
	hi, carry := bits.Add64(u.Hi, o.Hi, carry)
	return Uint128{Hi: hi, Lo: lo}, carry == 0
}

// Add64 returns u + v, wrapping on overflow.
func (u Uint128) Add64(v uint64) Uint128 { return u.Add(U64(v)) }

// Sub returns u - o, wrapping on underflow.
func (u Uint128) Sub(o Uint128) Uint128 {
	lo, borrow := bits.Sub64(u.Lo, o.Lo, 0)
	hi, _ := bits.Sub64(u.Hi, o.Hi, borrow)
	return Uint128{Hi: hi, Lo: lo}
}

// Sub64 returns u - v, wrapping on underflow.
func (u Uint128) Sub64(v uint64) Uint128 { return u.Sub(U64(v)) }

// Mul64 returns u * v, wrapping on overflow.
func (u Uint128) Mul64(v uint64) Uint128 {
	hi, lo := bits.Mul64(u.Lo, v)
	return Uint128{Hi: hi + u.Hi*v, Lo: lo}
}

// Mul64Checked returns u * v and false if the product overflowed.
func (u Uint128) Mul64Checked(v uint64) (Uint128, bool) {
	hi, lo := bits.Mul64(u.Lo, v)
	ph, pl := bits.Mul64(u.Hi, v)
	if ph != 0 {
		return Uint128{}, false
	}
	hi, carry := bits.Add64(hi, pl, 0)
	return Uint128{Hi: hi, Lo: lo}, carry == 0
}

// QuoRem64 returns u / d and u % d. It panics if d is zero.
func (u Uint128) QuoRem64(d uint64) (Uint128, uint64) {
	if u.Hi < d {
		lo, r := bits.Div64(u.Hi, u.Lo, d)
		return Uint128{Lo: lo}, r
	}
	hi, r := bits.Div64(0, u.Hi, d)
	lo, r := bits.Div64(r, u.Lo, d)
	return Uint128{Hi: hi, Lo: lo}, r
}

// Rsh returns u >> n.
func (u Uint128) Rsh(n uint) Uint128 {
	switch {
	case n >= 128:
		return Uint128{}
	case n >= 64:
		return Uint128{Lo: u.Hi >> (n - 64)}
	case n == 0:
		return u
	}
	return Uint128{Hi: u.Hi >> n, Lo: u.Lo>>n | u.Hi<<(64-n)}
}

// Lsh returns u << n.
func (u Uint128) Lsh(n uint) Uint128 {
	switch {
	case n >= 128:
		return Uint128{}
	case n >= 64:
		return Uint128{Hi: u.Lo << (n - 64)}
	case n == 0:
		return u
	}
	return Uint128{Hi: u.Hi<<n | u.Lo>>(64-n), Lo: u.Lo << n}
}

// BitLen returns the minimum number of bits needed to represent u.
func (u Uint128) BitLen() int {
	if u.Hi != 0 {
		return 64 + bits.Len64(u.Hi)
	}
	return bits.Len64(u.Lo)
}

// Int128 reinterprets the bits of u as a signed value.
func (u Uint128) Int128() Int128 { return Int128{Hi: int64(u.Hi), Lo: u.Lo} }

// Float64 returns the nearest float64 to u.
func (u Uint128) Float64() float64 {
	if u.Hi == 0 {
		return float64(u.Lo)
	}
	f, _ := new(big.Float).SetInt(u.Big()).Float64()
	return f
}

// Big returns u as a *big.Int.
func (u Uint128) Big() *big.Int {
	b := new(big.Int).SetUint64(u.Hi)
	b.Lsh(b, 64)
	return b.Or(b, new(big.Int).SetUint64(u.Lo))
}

// String returns the decimal representation of u.
func (u Uint128) String() string {
	return string(u.Append(nil))
}

// Append appends the decimal representation of u to dst.
func (u Uint128) Append(dst []byte) []byte {
	if u.Hi == 0 {
		return strconv.AppendUint(dst, u.Lo, 10)
	}
	const e19 = 10_000_000_000_000_000_000
	q, r0 := u.QuoRem64(e19)
	if q.Hi == 0 {
		dst = strconv.AppendUint(dst, q.Lo, 10)
	} else {
		q2, r1 := q.QuoRem64(e19)
		dst = strconv.AppendUint(dst, q2.Lo, 10)
		dst = appendPadded19(dst, r1)
	}
	return appendPadded19(dst, r0)
}

func appendPadded19(dst []byte, v uint64) []byte {
	var buf [19]byte
	for i := len(buf) - 1; i >= 0; i-- {
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return append(dst, buf[:]...)
}

// Sign returns -1, 0 or +1.
func (i Int128) Sign() int {
	switch {
	case i.Hi < 0:
		return -1
	case i.Hi == 0 && i.Lo == 0:
		return 0
	}
	return 1
}

// IsNeg reports whether i < 0.
func (i Int128) IsNeg() bool { return i.Hi < 0 }

// IsInt64 reports whether i fits in an int64.
func (i Int128) IsInt64() bool {
	return i.Hi == int64(i.Lo)>>63
}

// Int64 returns the low 64 bits of i as an int64.
func (i Int128) Int64() int64 { return int64(i.Lo) }

// Uint128 reinterprets the bits of i as an unsigned value.
func (i Int128) Uint128() Uint128 { return Uint128{Hi: uint64(i.Hi), Lo: i.Lo} }

// Cmp returns -1, 0 or +1.
func (i Int128) Cmp(o Int128) int {
	switch {
	case i.Hi < o.Hi:
		return -1
	case i.Hi > o.Hi:
		return 1
	case i.Lo < o.Lo:
		return -1
	case i.Lo > o.Lo:
		return 1
	}
	return 0
}

// Less reports whether i < o.
func (i Int128) Less(o Int128) bool { return i.Cmp(o) < 0 }

// Neg returns -i. Negating MinInt128 yields MinInt128.
func (i Int128) Neg() Int128 {
	return Uint128{}.Sub(i.Uint128()).Int128()
}

// Add returns i + o, wrapping on overflow.
func (i Int128) Add(o Int128) Int128 {
	return i.Uint128().Add(o.Uint128()).Int128()
}

// Sub returns i - o, wrapping on overflow.
func (i Int128) Sub(o Int128) Int128 {
	return i.Uint128().Sub(o.Uint128()).Int128()
}

// Abs returns the magnitude of i. Abs(MinInt128) is 2^127.
func (i Int128) Abs() Uint128 {
	if i.Hi < 0 {
		return i.Neg().Uint128()
	}
	return i.Uint128()
}

// Float64 returns the nearest float64 to i.
func (i Int128) Float64() float64 {
	if i.IsInt64() {
		return float64(i.Int64())
	}
	f := i.Abs().Float64()
	if i.Hi < 0 {
		return -f
	}
	return f
}

// Big returns i as a *big.Int.
func (i Int128) Big() *big.Int {
	b := i.Abs().Big()
	if i.Hi < 0 {
		b.Neg(b)
	}
	return b
}

// String returns the decimal representation of i.
func (i Int128) String() string {
	return string(i.Append(nil))
}

// Append appends the decimal representation of i to dst.
func (i Int128) Append(dst []byte) []byte {
	if i.Hi < 0 {
		dst = append(dst, '-')
	}
	return i.Abs().Append(dst)
}

// FromBig converts b to a Uint128, reporting false when b is out of range.
func FromBig(b *big.Int) (Uint128, bool) {
	if b.Sign() < 0 || b.BitLen() > 128 {
		return Uint128{}, false
	}
	lo := new(big.Int).And(b, new(big.Int).SetUint64(math.MaxUint64))
	hi := new(big.Int).Rsh(b, 64)
	return Uint128{Hi: hi.Uint64(), Lo: lo.Uint64()}, true
}

// FromBigSigned converts b to an Int128, reporting false when b is out of range.
func FromBigSigned(b *big.Int) (Int128, bool) {
	if b.Sign() >= 0 {
		u, ok := FromBig(b)
		if !ok || u.Hi > math.MaxInt64 {
			return Int128{}, false
		}
		return u.Int128(), true
	}
	u, ok := FromBig(new(big.Int).Neg(b))
	if !ok || u.Cmp(MinInt128.Uint128()) > 0 {
		return Int128{}, false
	}
	return u.Int128().Neg(), true
}

// TruncFloat64 returns the integer part of |f| and reports false when f is
// NaN, infinite or when |f| >= 2^128.
func TruncFloat64(f float64) (Uint128, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Uint128{}, false
	}
	f = math.Abs(f)
	if f < 1 {
		return Uint128{}, true
	}
	frac, exp := math.Frexp(f)
	if exp > 128 {
		return Uint128{}, false
	}
	mant := uint64(math.Ldexp(frac, 53))
	if exp >= 53 {
		return U64(mant).Lsh(uint(exp - 53)), true
	}
	return U64(mant >> uint(53-exp)), true
}
