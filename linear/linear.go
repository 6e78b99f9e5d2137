package linear

import (
	"encoding/binary"
	"math"

	"github.com/hupe1980/datakit"
	"github.com/hupe1980/datakit/databox"
	"github.com/hupe1980/datakit/endian"
	"github.com/hupe1980/datakit/int128"
	"github.com/hupe1980/datakit/internal/conv"
	"github.com/hupe1980/datakit/internal/f16"
)

// MaxPayload is the largest fixed payload.
const MaxPayload = 8

// Buffer holds the payload of one fixed-width value.
type Buffer [MaxPayload]byte

// Encode writes the minimal payload for box into dst and returns its tag
// and payload length.
//
// Non-negative signed integers are written with unsigned tags. Negative
// integers store -v-1 so that -1 fits one byte. Float32 values shrink to
// binary16 and float64 values to binary32 or binary16 whenever the round
// trip is exact. 128-bit boxes are accepted when their magnitude fits 64
// bits. Other variants fail with datakit.ErrUnsupportedVariant.
func Encode(box *databox.Box, dst *Buffer) (Tag, int, error) {
	switch box.Type() {
	case databox.Unsigned64:
		return putUnsigned(dst, box.Uint64(), false), endian.ByteWidth(box.Uint64()), nil
	case databox.Signed64:
		return encodeSigned(dst, int128.I64(box.Int64()))
	case databox.Signed128:
		return encodeSigned(dst, box.Int128())
	case databox.Unsigned128:
		u := box.Uint128()
		if !u.IsUint64() {
			return Invalid, 0, datakit.NewVariantError("linear encode", "unsigned128 above 64 bits", nil)
		}
		return putUnsigned(dst, u.Lo, false), endian.ByteWidth(u.Lo), nil
	case databox.Float32:
		t, n := putFloat32(dst, box.Float32())
		return t, n, nil
	case databox.Double64:
		d := box.Float64()
		if float64(float32(d)) == d {
			t, n := putFloat32(dst, float32(d))
			return t, n, nil
		}
		endian.Little.PutUint64(dst[:], math.Float64bits(d))
		return Real64, 8, nil
	case databox.True:
		return TagTrue, 0, nil
	case databox.False:
		return TagFalse, 0, nil
	case databox.Null:
		return TagNull, 0, nil
	}
	return Invalid, 0, datakit.NewVariantError("linear encode", box.Type().String(), nil)
}

func encodeSigned(dst *Buffer, v int128.Int128) (Tag, int, error) {
	if !v.IsNeg() {
		u := v.Uint128()
		if !u.IsUint64() {
			return Invalid, 0, datakit.NewVariantError("linear encode", "signed128 above 64 bits", nil)
		}
		return putUnsigned(dst, u.Lo, false), endian.ByteWidth(u.Lo), nil
	}
	// -v-1 == ^v in two's complement.
	m := int128.Uint128{Hi: ^uint64(v.Hi), Lo: ^v.Lo}
	if !m.IsUint64() {
		return Invalid, 0, datakit.NewVariantError("linear encode", "signed128 below -2^64", nil)
	}
	return putUnsigned(dst, m.Lo, true), endian.ByteWidth(m.Lo), nil
}

func putUnsigned(dst *Buffer, v uint64, neg bool) Tag {
	w := endian.PutUintN(dst[:], v, endian.ByteWidth(v))
	t := uintTag(w)
	if neg {
		t--
	}
	return t
}

func putFloat32(dst *Buffer, f float32) (Tag, int) {
	if h, ok := f16.Exact32(f); ok {
		endian.Little.PutUint16(dst[:], uint16(h))
		return Real16, 2
	}
	endian.Little.PutUint32(dst[:], math.Float32bits(f))
	return Real32, 4
}

// Append appends the tag and payload of box to dst. Byte boxes are written
// as TagBytes followed by a uvarint length and the bytes.
func Append(dst []byte, box *databox.Box) ([]byte, error) {
	if box.IsBytes() {
		return AppendBytes(dst, box.Bytes()), nil
	}
	var buf Buffer
	t, n, err := Encode(box, &buf)
	if err != nil {
		return dst, err
	}
	return append(append(dst, byte(t)), buf[:n]...), nil
}

// AppendBytes appends b as TagBytes, a uvarint length and the bytes.
func AppendBytes(dst []byte, b []byte) []byte {
	dst = append(dst, byte(TagBytes))
	dst = binary.AppendUvarint(dst, uint64(len(b)))
	return append(dst, b...)
}

// EncodeParts splits box into a tag and a payload view. Byte boxes yield
// TagBytes and their own bytes; the payload of other variants lives in
// scratch.
func EncodeParts(box *databox.Box, scratch *Buffer) (Tag, []byte, error) {
	if box.IsBytes() {
		return TagBytes, box.Bytes(), nil
	}
	t, n, err := Encode(box, scratch)
	if err != nil {
		return Invalid, nil, err
	}
	return t, scratch[:n], nil
}

// Decode rebuilds a box from a fixed-width tag and its payload. Extra
// payload bytes are ignored. TagBytes is rejected because its length is
// not implied by the tag; use DecodeParts or DecodeFrom.
func Decode(t Tag, payload []byte) (databox.Box, error) {
	if t == TagBytes {
		return databox.Box{}, datakit.NewVariantError("linear decode", "bytes without length", nil)
	}
	w := Width(t)
	if w < 0 {
		return databox.Box{}, datakit.NewDecodeError(uint8(t), 0, len(payload), datakit.ErrInvalidTag)
	}
	if len(payload) < w {
		return databox.Box{}, datakit.NewDecodeError(uint8(t), w, len(payload), datakit.ErrShortBuffer)
	}

	switch {
	case t.IsInteger():
		v := endian.UintN(payload, w)
		if !t.IsNegative() {
			return databox.NewUnsigned(v), nil
		}
		if i, err := conv.Uint64ToInt64(v); err == nil {
			return databox.NewSigned(-i - 1), nil
		}
		// -v-1 for v >= 2^63 needs 65 bits.
		return databox.NewSigned128(int128.U64(v).Int128().Neg().Sub(int128.I64(1))), nil
	case t == Real16:
		return databox.NewFloat32(f16.LoadLE(payload).Float32()), nil
	case t == Real32:
		return databox.NewFloat32(math.Float32frombits(endian.Little.Uint32(payload))), nil
	case t == Real64:
		return databox.NewDouble(math.Float64frombits(endian.Little.Uint64(payload))), nil
	case t == TagTrue:
		return databox.NewBool(true), nil
	case t == TagFalse:
		return databox.NewBool(false), nil
	}
	return databox.NewNull(), nil
}

// DecodeParts is Decode that also accepts TagBytes, returning a box that
// borrows payload.
func DecodeParts(t Tag, payload []byte) (databox.Box, error) {
	if t == TagBytes {
		return databox.NewBytes(payload), nil
	}
	return Decode(t, payload)
}

// DecodeFrom decodes one self-delimited value from the front of b, as
// written by Append, and returns it with the number of bytes consumed.
// Byte payloads are borrowed from b.
func DecodeFrom(b []byte) (databox.Box, int, error) {
	if len(b) == 0 {
		return databox.Box{}, 0, datakit.NewDecodeError(0, 1, 0, datakit.ErrShortBuffer)
	}
	t := Tag(b[0])
	if t != TagBytes {
		box, err := Decode(t, b[1:])
		if err != nil {
			return databox.Box{}, 0, err
		}
		return box, 1 + Width(t), nil
	}

	n, k := binary.Uvarint(b[1:])
	if k <= 0 {
		return databox.Box{}, 0, datakit.NewDecodeError(uint8(t), 1, len(b)-1, datakit.ErrShortBuffer)
	}
	start := 1 + k
	need, err := conv.Uint64ToInt(n)
	if err != nil {
		return databox.Box{}, 0, datakit.NewDecodeError(uint8(t), 0, len(b)-start, err)
	}
	if len(b)-start < need {
		return databox.Box{}, 0, datakit.NewDecodeError(uint8(t), need, len(b)-start, datakit.ErrShortBuffer)
	}
	end := start + need
	return databox.NewBytes(b[start:end:end]), end, nil
}
