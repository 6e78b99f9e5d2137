package intset

import (
	"github.com/hupe1980/datakit"
	"github.com/hupe1980/datakit/databox"
	"github.com/hupe1980/datakit/int128"
)

const (
	// BucketBits is the number of low bits stored as the offset.
	BucketBits = 20
	// Width is the number of values covered by one bucket.
	Width = 1 << BucketBits

	offsetMask = Width - 1
)

var (
	// MinKey is the smallest bucket key, holding -2^127.
	MinKey = splitSigned(int128.MinInt128).key
	// MaxKey is the largest bucket key, holding 2^128-1.
	MaxKey = splitUnsigned(int128.MaxUint128).key
)

type split struct {
	key int128.Int128
	off uint32
}

func splitUnsigned(u int128.Uint128) split {
	return split{
		key: u.Rsh(BucketBits).Int128(),
		off: uint32(u.Lo & offsetMask),
	}
}

func splitSigned(i int128.Int128) split {
	if !i.IsNeg() {
		return splitUnsigned(i.Uint128())
	}
	u := not(i.Uint128()) // -i - 1
	k := u.Rsh(BucketBits)
	return split{
		key: not(k).Int128(), // -k - 1
		off: uint32(u.Lo & offsetMask),
	}
}

func not(u int128.Uint128) int128.Uint128 {
	return int128.Uint128{Hi: ^u.Hi, Lo: ^u.Lo}
}

// Decompose returns the bucket key and offset of an integer box. Boxes
// other than Signed64, Unsigned64, Signed128 and Unsigned128 return a
// *datakit.VariantError.
func Decompose(v databox.Box) (int128.Int128, uint32, error) {
	sp, err := splitBox(v)
	return sp.key, sp.off, err
}

func splitBox(v databox.Box) (split, error) {
	switch v.Type() {
	case databox.Signed64, databox.Signed128:
		return splitSigned(v.Int128()), nil
	case databox.Unsigned64, databox.Unsigned128:
		return splitUnsigned(v.Uint128()), nil
	}
	return split{}, datakit.NewVariantError("intset decompose", v.Type().String(), nil)
}

// Compose is the inverse of Decompose. Non-negative keys produce unsigned
// boxes and negative keys signed boxes, 64-bit when the value fits.
// off must be below Width.
func Compose(key int128.Int128, off uint32) databox.Box {
	if !key.IsNeg() {
		v := key.Uint128().Lsh(BucketBits)
		v.Lo |= uint64(off)
		if v.IsUint64() {
			return databox.NewUnsigned(v.Lo)
		}
		return databox.NewUnsigned128(v)
	}
	u := not(key.Uint128()).Lsh(BucketBits) // (-key - 1) * Width
	u.Lo |= uint64(off)
	v := not(u).Int128() // -u - 1
	if v.IsInt64() {
		return databox.NewSigned(v.Int64())
	}
	return databox.NewSigned128(v)
}

// keyBox returns key as the narrowest integer box.
func keyBox(key int128.Int128) databox.Box {
	switch {
	case key.IsNeg() && key.IsInt64():
		return databox.NewSigned(key.Int64())
	case key.IsNeg():
		return databox.NewSigned128(key)
	case key.Uint128().IsUint64():
		return databox.NewUnsigned(key.Lo)
	}
	return databox.NewUnsigned128(key.Uint128())
}
