// Package endian provides byte order helpers for the on-disk formats.
//
// Every multi-byte payload written by datakit is little-endian. Engine
// bundles encoding/binary's ByteOrder and AppendByteOrder so encoders can
// take a single value, and the Conform helpers normalize host words to the
// wire order.
//
//	buf = endian.Little.AppendUint32(buf, v)
//	v = endian.UintN(payload, 3)
package endian

import (
	"encoding/binary"
	"math/bits"
)

// Engine combines binary.ByteOrder and binary.AppendByteOrder.
type Engine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

var (
	// Little is the wire byte order.
	Little Engine = binary.LittleEndian
	// Big is provided for interoperability with big-endian formats.
	Big Engine = binary.BigEndian
	// Native is the host byte order.
	Native Engine = binary.NativeEndian
)

// nativeLittle is fixed for the lifetime of the process.
var nativeLittle = binary.NativeEndian.Uint16([]byte{0x01, 0x00}) == 1

// IsNativeLittle reports whether the host is little-endian.
func IsNativeLittle() bool { return nativeLittle }

// Conform16 converts a host-order word to little-endian order.
func Conform16(v uint16) uint16 {
	if nativeLittle {
		return v
	}
	return bits.ReverseBytes16(v)
}

// Conform32 converts a host-order word to little-endian order.
func Conform32(v uint32) uint32 {
	if nativeLittle {
		return v
	}
	return bits.ReverseBytes32(v)
}

// Conform64 converts a host-order word to little-endian order.
func Conform64(v uint64) uint64 {
	if nativeLittle {
		return v
	}
	return bits.ReverseBytes64(v)
}

// ByteWidth returns the number of bytes needed to hold v, at least 1.
func ByteWidth(v uint64) int {
	if v == 0 {
		return 1
	}
	return (bits.Len64(v) + 7) / 8
}

// AppendUintN appends the low width bytes of v in little-endian order.
// width must be in [1, 8].
func AppendUintN(dst []byte, v uint64, width int) []byte {
	for i := 0; i < width; i++ {
		dst = append(dst, byte(v>>(8*i)))
	}
	return dst
}

// PutUintN writes the low width bytes of v in little-endian order and
// returns width.
func PutUintN(b []byte, v uint64, width int) int {
	_ = b[width-1]
	for i := 0; i < width; i++ {
		b[i] = byte(v >> (8 * i))
	}
	return width
}

// UintN reads a width-byte little-endian unsigned integer from b.
func UintN(b []byte, width int) uint64 {
	if width == 8 {
		return binary.LittleEndian.Uint64(b)
	}
	_ = b[width-1]
	var v uint64
	for i := width - 1; i >= 0; i-- {
		v = v<<8 | uint64(b[i])
	}
	return v
}
