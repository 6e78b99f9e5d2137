package numstr

import (
	"math/bits"

	"github.com/hupe1980/datakit/int128"
)

const digitPairs = "00010203040506070809" +
	"10111213141516171819" +
	"20212223242526272829" +
	"30313233343536373839" +
	"40414243444546474849" +
	"50515253545556575859" +
	"60616263646566676869" +
	"70717273747576777879" +
	"80818283848586878889" +
	"90919293949596979899"

var tenPow = [...]uint64{
	1,
	10,
	100,
	1000,
	10000,
	100000,
	1000000,
	10000000,
	100000000,
	1000000000,
	10000000000,
	100000000000,
	1000000000000,
	10000000000000,
	100000000000000,
	1000000000000000,
	10000000000000000,
	100000000000000000,
	1000000000000000000,
	10000000000000000000,
}

// TenPow returns 10^n for n in [0, 19].
func TenPow(n int) uint64 {
	return tenPow[n]
}

// DigitCountUint64 returns the number of decimal digits in v.
func DigitCountUint64(v uint64) int {
	// log10(2) ~= 1233/4096
	n := (bits.Len64(v|1) * 1233) >> 12
	if v >= tenPow[n] {
		n++
	}
	return max(n, 1)
}

// DigitCountUint32 returns the number of decimal digits in v.
func DigitCountUint32(v uint32) int {
	return DigitCountUint64(uint64(v))
}

// DigitCountInt64 returns the printed length of v, including the sign.
func DigitCountInt64(v int64) int {
	if v < 0 {
		return DigitCountUint64(uint64(-v)) + 1
	}
	return DigitCountUint64(uint64(v))
}

// DigitCountUint128 returns the number of decimal digits in v.
func DigitCountUint128(v int128.Uint128) int {
	if v.IsUint64() {
		return DigitCountUint64(v.Lo)
	}
	q, _ := v.QuoRem64(tenPow[19])
	if q.IsUint64() {
		return 19 + DigitCountUint64(q.Lo)
	}
	q, _ = q.QuoRem64(tenPow[19])
	return 38 + DigitCountUint64(q.Lo)
}

// DigitCountInt128 returns the printed length of v, including the sign.
func DigitCountInt128(v int128.Int128) int {
	n := DigitCountUint128(v.Abs())
	if v.IsNeg() {
		n++
	}
	return n
}

// AppendUint64 appends the decimal form of v to dst.
func AppendUint64(dst []byte, v uint64) []byte {
	var buf [20]byte
	i := len(buf)
	for v >= 100 {
		p := (v % 100) * 2
		v /= 100
		i -= 2
		buf[i], buf[i+1] = digitPairs[p], digitPairs[p+1]
	}
	if v >= 10 {
		i -= 2
		buf[i], buf[i+1] = digitPairs[v*2], digitPairs[v*2+1]
	} else {
		i--
		buf[i] = byte('0' + v)
	}
	return append(dst, buf[i:]...)
}

// AppendInt64 appends the decimal form of v to dst.
func AppendInt64(dst []byte, v int64) []byte {
	if v < 0 {
		return AppendUint64(append(dst, '-'), uint64(-v))
	}
	return AppendUint64(dst, uint64(v))
}

// appendPadded appends exactly 19 digits of v, zero-padded on the left.
func appendPadded(dst []byte, v uint64) []byte {
	var buf [19]byte
	i := len(buf)
	for i > 1 {
		p := (v % 100) * 2
		v /= 100
		i -= 2
		buf[i], buf[i+1] = digitPairs[p], digitPairs[p+1]
	}
	buf[0] = byte('0' + v)
	return append(dst, buf[:]...)
}

// AppendUint128 appends the decimal form of v to dst.
func AppendUint128(dst []byte, v int128.Uint128) []byte {
	if v.IsUint64() {
		return AppendUint64(dst, v.Lo)
	}
	q, low := v.QuoRem64(tenPow[19])
	if q.IsUint64() {
		dst = AppendUint64(dst, q.Lo)
	} else {
		top, mid := q.QuoRem64(tenPow[19])
		dst = AppendUint64(dst, top.Lo)
		dst = appendPadded(dst, mid)
	}
	return appendPadded(dst, low)
}

// AppendInt128 appends the decimal form of v to dst.
func AppendInt128(dst []byte, v int128.Int128) []byte {
	if v.IsNeg() {
		dst = append(dst, '-')
	}
	return AppendUint128(dst, v.Abs())
}

// FormatUint64 returns the decimal form of v.
func FormatUint64(v uint64) string { return string(AppendUint64(nil, v)) }

// FormatInt64 returns the decimal form of v.
func FormatInt64(v int64) string { return string(AppendInt64(nil, v)) }

// FormatUint128 returns the decimal form of v.
func FormatUint128(v int128.Uint128) string { return string(AppendUint128(nil, v)) }

// FormatInt128 returns the decimal form of v.
func FormatInt128(v int128.Int128) string { return string(AppendInt128(nil, v)) }
