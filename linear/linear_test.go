package linear

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/hupe1980/datakit"
	"github.com/hupe1980/datakit/databox"
	"github.com/hupe1980/datakit/int128"
	"github.com/hupe1980/datakit/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encode(t *testing.T, b databox.Box) []byte {
	t.Helper()
	out, err := Append(nil, &b)
	require.NoError(t, err)
	return out
}

func TestMinimalWidthScenarios(t *testing.T) {
	assert.Equal(t, []byte{0x03, 0xFF}, encode(t, databox.NewUnsigned(255)))
	assert.Equal(t, []byte{0x05, 0x00, 0x01}, encode(t, databox.NewUnsigned(256)))
	assert.Equal(t, []byte{0x02, 0x00}, encode(t, databox.NewSigned(-1)))
	assert.Equal(t, []byte{0x15}, encode(t, databox.NewBool(true)))
	assert.Equal(t, []byte{0x16}, encode(t, databox.NewBool(false)))
	assert.Equal(t, []byte{0x17}, encode(t, databox.NewNull()))

	maxU := encode(t, databox.NewUnsigned(math.MaxUint64))
	assert.Equal(t, byte(Uint64), maxU[0])
	assert.Len(t, maxU, 9)
}

func TestIntegerWidthBoundaries(t *testing.T) {
	for w := 1; w <= 8; w++ {
		top := uint64(math.MaxUint64) >> (64 - 8*w)

		var buf Buffer
		b := databox.NewUnsigned(top)
		tag, n, err := Encode(&b, &buf)
		require.NoError(t, err)
		assert.Equal(t, w, n, "max of %d bytes", w)
		assert.Equal(t, uintTag(w), tag)
		assert.Equal(t, w, Width(tag))

		neg := databox.NewSigned(-int64(top>>1) - 1)
		tag, n, err = Encode(&neg, &buf)
		require.NoError(t, err)
		assert.True(t, tag.IsNegative())
		assert.Equal(t, w, n)
		if w < 8 {
			next := databox.NewUnsigned(top + 1)
			_, n, err = Encode(&next, &buf)
			require.NoError(t, err)
			assert.Equal(t, w+1, n, "2^%d needs one more byte", 8*w)
		}
	}
}

func TestSignedNonNegativeNormalizesToUnsigned(t *testing.T) {
	b := databox.NewSigned(300)
	out := encode(t, b)
	assert.Equal(t, byte(Uint16), out[0])

	got, n, err := DecodeFrom(out)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, databox.Unsigned64, got.Type())
	assert.Equal(t, uint64(300), got.Uint64())
}

func TestFloatDowngrade(t *testing.T) {
	tests := []struct {
		name string
		box  databox.Box
		tag  Tag
	}{
		{"half exact float", databox.NewFloat32(1.5), Real16},
		{"float needs 32", databox.NewFloat32(0.1), Real32},
		{"double to half", databox.NewDouble(-2.0), Real16},
		{"double to float", databox.NewDouble(float64(float32(0.1))), Real32},
		{"double stays", databox.NewDouble(0.1), Real64},
		{"double inf", databox.NewDouble(math.Inf(1)), Real16},
		{"double nan", databox.NewDouble(math.NaN()), Real64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := encode(t, tt.box)
			assert.Equal(t, byte(tt.tag), out[0])
			assert.Len(t, out, 1+Width(tt.tag))
		})
	}
}

func roundTrip(t *testing.T, b databox.Box) {
	t.Helper()
	first := encode(t, b)
	got, n, err := DecodeFrom(first)
	require.NoError(t, err)
	require.Equal(t, len(first), n)
	require.True(t, databox.Equal(&b, &got), "%v decoded as %v", b, got)
	assert.Equal(t, first, encode(t, got), "re-encoding %v", b)
}

func TestRoundTripPowersOfTwo(t *testing.T) {
	for k := uint(0); k < 64; k++ {
		roundTrip(t, databox.NewUnsigned(1<<k))
		roundTrip(t, databox.NewUnsigned(1<<k-1))
		if k < 63 {
			roundTrip(t, databox.NewSigned(-(1 << k)))
		}
	}
	roundTrip(t, databox.NewSigned(math.MinInt64))
}

func TestRoundTripRandom(t *testing.T) {
	rng := testutil.NewRNG(4711)
	for i := 0; i < 2000; i++ {
		v := rng.Uint64() >> uint(rng.Intn(64))
		roundTrip(t, databox.NewUnsigned(v))
		roundTrip(t, databox.NewSigned(int64(v)))
		roundTrip(t, databox.NewDouble(float64(int64(v))/3))
		roundTrip(t, databox.NewFloat32(float32(v)))
	}
}

func TestWideIntegers(t *testing.T) {
	// -2^64 is the most negative value the neg64 tag can carry.
	minNeg := int128.U64(math.MaxUint64).Int128().Neg().Sub(int128.I64(1))
	b := databox.NewSigned128(minNeg)
	out := encode(t, b)
	assert.Equal(t, byte(Neg64), out[0])

	got, _, err := DecodeFrom(out)
	require.NoError(t, err)
	assert.Equal(t, databox.Signed128, got.Type())
	assert.Equal(t, minNeg, got.Int128())
	assert.Equal(t, out, encode(t, got))

	small := databox.NewUnsigned128(int128.U64(9))
	assert.Equal(t, []byte{0x03, 0x09}, encode(t, small))

	var buf Buffer
	wide := databox.NewUnsigned128(int128.Uint128{Hi: 1})
	_, _, err = Encode(&wide, &buf)
	assert.ErrorIs(t, err, datakit.ErrUnsupportedVariant)

	tooNeg := databox.NewSigned128(minNeg.Sub(int128.I64(1)))
	_, _, err = Encode(&tooNeg, &buf)
	assert.ErrorIs(t, err, datakit.ErrUnsupportedVariant)
}

func TestUnsupportedVariants(t *testing.T) {
	var buf Buffer
	for _, b := range []databox.Box{databox.NewVoid(), databox.NewError(), databox.NewPtr(nil), databox.NewReference(1)} {
		_, _, err := Encode(&b, &buf)
		assert.ErrorIs(t, err, datakit.ErrUnsupportedVariant, b.String())
	}
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode(Invalid, nil)
	assert.ErrorIs(t, err, datakit.ErrInvalidTag)

	_, err = Decode(Tag(200), nil)
	assert.ErrorIs(t, err, datakit.ErrInvalidTag)

	_, err = Decode(Uint16, []byte{1})
	assert.ErrorIs(t, err, datakit.ErrShortBuffer)
	var de *datakit.DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, 2, de.Need)
	assert.Equal(t, 1, de.Have)

	_, err = Decode(TagBytes, []byte("x"))
	assert.ErrorIs(t, err, datakit.ErrUnsupportedVariant)

	_, _, err = DecodeFrom(nil)
	assert.ErrorIs(t, err, datakit.ErrShortBuffer)

	_, _, err = DecodeFrom([]byte{byte(TagBytes), 5, 'a'})
	assert.ErrorIs(t, err, datakit.ErrShortBuffer)

	huge := binary.AppendUvarint([]byte{byte(TagBytes)}, math.MaxUint64)
	_, _, err = DecodeFrom(append(huge, 'a'))
	assert.ErrorIs(t, err, datakit.ErrOverflow)
	assert.NotErrorIs(t, err, datakit.ErrShortBuffer)
}

func TestDecodeNeg64Boundary(t *testing.T) {
	payload := make([]byte, 8)
	binary.LittleEndian.PutUint64(payload, math.MaxInt64)
	got, err := Decode(Neg64, payload)
	require.NoError(t, err)
	assert.Equal(t, databox.Signed64, got.Type())
	assert.Equal(t, int64(math.MinInt64), got.Int64())

	binary.LittleEndian.PutUint64(payload, 1<<63)
	got, err = Decode(Neg64, payload)
	require.NoError(t, err)
	assert.Equal(t, databox.Signed128, got.Type())
	assert.Equal(t, int128.I64(math.MinInt64).Sub(int128.I64(1)), got.Int128())
}

func TestBytesValues(t *testing.T) {
	b := databox.NewBytesString("hello, world")
	out := encode(t, b)
	assert.Equal(t, byte(TagBytes), out[0])
	assert.Equal(t, byte(12), out[1])

	got, n, err := DecodeFrom(out)
	require.NoError(t, err)
	assert.Equal(t, len(out), n)
	assert.Equal(t, "hello, world", string(got.Bytes()))

	var scratch Buffer
	tag, payload, err := EncodeParts(&b, &scratch)
	require.NoError(t, err)
	assert.Equal(t, TagBytes, tag)
	parts, err := DecodeParts(tag, payload)
	require.NoError(t, err)
	assert.True(t, databox.Equal(&b, &parts))

	num := databox.NewSigned(-300)
	tag, payload, err = EncodeParts(&num, &scratch)
	require.NoError(t, err)
	assert.Equal(t, Neg16, tag)
	back, err := DecodeParts(tag, payload)
	require.NoError(t, err)
	assert.Equal(t, int64(-300), back.Int64())
}

func TestStream(t *testing.T) {
	boxes := []databox.Box{
		databox.NewUnsigned(1), databox.NewSigned(-70000), databox.NewBytesString("abc"),
		databox.NewDouble(0.1), databox.NewNull(), databox.NewFloat32(3.25),
	}
	var stream []byte
	for i := range boxes {
		var err error
		stream, err = Append(stream, &boxes[i])
		require.NoError(t, err)
	}
	for i := range boxes {
		got, n, err := DecodeFrom(stream)
		require.NoError(t, err)
		assert.True(t, databox.Equal(&boxes[i], &got), "%v vs %v", boxes[i], got)
		stream = stream[n:]
	}
	assert.Empty(t, stream)
}

func TestTagTable(t *testing.T) {
	assert.Equal(t, Tag(17), Uint64)
	assert.Equal(t, Tag(18), Real16)
	assert.Equal(t, Tag(23), TagNull)
	assert.Equal(t, 3, Width(Neg24))
	assert.Equal(t, -1, Width(TagBytes))
	assert.True(t, Neg40.IsNegative())
	assert.False(t, Uint40.IsNegative())
	assert.Equal(t, "real32", Real32.String())
}

func BenchmarkAppend(b *testing.B) {
	box := databox.NewSigned(-123456789)
	buf := make([]byte, 0, 16)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buf, _ = Append(buf[:0], &box)
	}
}
