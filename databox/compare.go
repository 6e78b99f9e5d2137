package databox

import (
	"bytes"
	"cmp"
	"math"

	"github.com/hupe1980/datakit"
	"github.com/hupe1980/datakit/int128"
)

// c3b packs two tags below 8 into a dispatch key.
func c3b(a, b Type) uint8 { return uint8(a)<<3 | uint8(b) }

const c3bLimit = 1 << 3

// Compare orders two boxes and returns -1, 0 or +1.
//
// Byte strings compare bytewise with a numeric-aware tiebreak. Integers of
// any width and sign compare by value, floats compare as float64 with NaN
// above every number, and integers compare exactly against floats. Equal
// immediates compare equal. Everything else orders by tag.
func Compare(a, b *Box) int {
	c, err := CompareChecked(a, b)
	if err != nil {
		return cmp.Compare(a.typ, b.typ)
	}
	return c
}

// Equal reports whether Compare(a, b) == 0.
func Equal(a, b *Box) bool { return Compare(a, b) == 0 }

// CompareChecked is Compare returning datakit.ErrInvalidVariant when either
// tag is unknown.
func CompareChecked(a, b *Box) (int, error) {
	if !a.typ.Valid() || !b.typ.Valid() {
		bad := a.typ
		if bad.Valid() {
			bad = b.typ
		}
		return 0, datakit.NewVariantError("compare", bad.String(), datakit.ErrInvalidVariant)
	}

	if a.typ.IsBytes() && b.typ.IsBytes() {
		return compareBytes(a.Bytes(), b.Bytes()), nil
	}

	if a.typ < c3bLimit && b.typ < c3bLimit {
		switch c3b(a.typ, b.typ) {
		case c3b(Unsigned64, Unsigned64),
			c3b(Unsigned64, Signed64),
			c3b(Signed64, Unsigned64),
			c3b(Signed64, Signed64):
			return compareInteger64(a, b), nil
		case c3b(Float32, Float32),
			c3b(Float32, Double64),
			c3b(Double64, Float32),
			c3b(Double64, Double64):
			return compareFloat(a.Float64(), b.Float64()), nil
		case c3b(Unsigned64, Float32),
			c3b(Unsigned64, Double64),
			c3b(Signed64, Float32),
			c3b(Signed64, Double64),
			c3b(Unsigned128, Float32),
			c3b(Unsigned128, Double64),
			c3b(Signed128, Float32),
			c3b(Signed128, Double64):
			return compareIntegerFloat(a, b.Float64()), nil
		case c3b(Float32, Unsigned64),
			c3b(Float32, Signed64),
			c3b(Double64, Unsigned64),
			c3b(Double64, Signed64),
			c3b(Float32, Unsigned128),
			c3b(Float32, Signed128),
			c3b(Double64, Unsigned128),
			c3b(Double64, Signed128):
			return -compareIntegerFloat(b, a.Float64()), nil
		case c3b(Unsigned128, Unsigned128),
			c3b(Unsigned128, Signed128),
			c3b(Unsigned128, Unsigned64),
			c3b(Unsigned128, Signed64),
			c3b(Signed128, Unsigned128),
			c3b(Signed128, Signed128),
			c3b(Signed128, Unsigned64),
			c3b(Signed128, Signed64),
			c3b(Unsigned64, Unsigned128),
			c3b(Unsigned64, Signed128),
			c3b(Signed64, Unsigned128),
			c3b(Signed64, Signed128):
			return compareInteger128(a, b), nil
		}
		// Void and Error pairs order by tag below.
	}

	switch {
	case a.typ.IsInteger() && b.typ.IsInteger():
		return compareInteger128(a, b), nil
	case a.typ.IsInteger() && b.typ.IsFloat():
		return compareIntegerFloat(a, b.Float64()), nil
	case a.typ.IsFloat() && b.typ.IsInteger():
		return -compareIntegerFloat(b, a.Float64()), nil
	}

	if a.typ == b.typ {
		if a.typ == BytesOffset {
			if c := cmp.Compare(a.word, b.word); c != 0 {
				return c, nil
			}
			return cmp.Compare(a.n, b.n), nil
		}
		return 0, nil
	}
	return cmp.Compare(orderTag(a.typ), orderTag(b.typ)), nil
}

// orderTag places external references with the other integers when
// ordering across incompatible types.
func orderTag(t Type) Type {
	if t == ContainerReferenceExternal {
		return Unsigned64
	}
	return t
}

func isDigit(c byte) bool { return c-'0' <= 9 }

// compareBytes is a natural order over byte strings. Runs of ASCII digits
// compare by numeric value and sort where their leading digit would among
// the other bytes; everything else compares bytewise and a proper prefix
// sorts first. Runs of equal value but different length (leading zeros)
// only break ties, at the first such run, once everything else is equal.
// The result is zero only for identical inputs.
func compareBytes(a, b []byte) int {
	tie := 0
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		ca, cb := a[i], b[j]
		da, db := isDigit(ca), isDigit(cb)
		switch {
		case da && db:
			ei, ej := digitRunEnd(a, i), digitRunEnd(b, j)
			if c := compareDigitRuns(a[i:ei], b[j:ej]); c != 0 {
				return c
			}
			if tie == 0 {
				tie = cmp.Compare(ei-i, ej-j)
			}
			i, j = ei, ej
		case da:
			if cb < '0' {
				return 1
			}
			return -1
		case db:
			if ca < '0' {
				return -1
			}
			return 1
		default:
			if ca != cb {
				return cmp.Compare(ca, cb)
			}
			i++
			j++
		}
	}

	switch {
	case i < len(a):
		return 1
	case j < len(b):
		return -1
	}
	return tie
}

func digitRunEnd(b []byte, i int) int {
	for i < len(b) && isDigit(b[i]) {
		i++
	}
	return i
}

// compareDigitRuns compares two digit runs by value.
func compareDigitRuns(a, b []byte) int {
	a, b = trimZeros(a), trimZeros(b)
	if c := cmp.Compare(len(a), len(b)); c != 0 {
		return c
	}
	return bytes.Compare(a, b)
}

func trimZeros(b []byte) []byte {
	for len(b) > 0 && b[0] == '0' {
		b = b[1:]
	}
	return b
}

func compareInteger64(a, b *Box) int {
	aSigned, bSigned := a.typ == Signed64, b.typ == Signed64
	switch {
	case !aSigned && !bSigned:
		return cmp.Compare(a.word, b.word)
	case !aSigned && bSigned:
		if int64(b.word) < 0 || a.word > math.MaxInt64 {
			return 1
		}
	case aSigned && !bSigned:
		if int64(a.word) < 0 || b.word > math.MaxInt64 {
			return -1
		}
	}
	return cmp.Compare(int64(a.word), int64(b.word))
}

func compareInteger128(a, b *Box) int {
	aSigned, bSigned := a.typ.IsSigned(), b.typ.IsSigned()
	switch {
	case !aSigned && !bSigned:
		return a.Uint128().Cmp(b.Uint128())
	case !aSigned && bSigned:
		ib := b.Int128()
		ua := a.Uint128()
		if ib.IsNeg() || ua.Cmp(int128.MaxInt128.Uint128()) > 0 {
			return 1
		}
		return ua.Cmp(ib.Uint128())
	case aSigned && !bSigned:
		ia := a.Int128()
		ub := b.Uint128()
		if ia.IsNeg() || ub.Cmp(int128.MaxInt128.Uint128()) > 0 {
			return -1
		}
		return ia.Uint128().Cmp(ub)
	}
	return a.Int128().Cmp(b.Int128())
}

// compareFloat orders NaN above every number and equal to itself.
func compareFloat(x, y float64) int {
	xn, yn := math.IsNaN(x), math.IsNaN(y)
	switch {
	case xn && yn:
		return 0
	case xn:
		return 1
	case yn:
		return -1
	}
	return cmp.Compare(x, y)
}

// compareIntegerFloat compares integer box a against r without rounding
// either side.
func compareIntegerFloat(a *Box, r float64) int {
	if math.IsNaN(r) {
		return -1
	}
	if math.IsInf(r, 1) {
		return -1
	}
	if math.IsInf(r, -1) {
		return 1
	}

	var neg bool
	var mag int128.Uint128
	if a.typ.IsSigned() {
		i := a.Int128()
		neg, mag = i.IsNeg(), i.Abs()
	} else {
		mag = a.Uint128()
	}

	rneg := r < 0
	if neg != rneg {
		if neg {
			return -1
		}
		return 1
	}

	t, ok := int128.TruncFloat64(r)
	if !ok {
		// |r| >= 2^128 exceeds every integer magnitude.
		if rneg {
			return 1
		}
		return -1
	}
	c := mag.Cmp(t)
	if c == 0 && r != math.Trunc(r) {
		c = -1
	}
	if neg {
		return -c
	}
	return c
}
