package databox

import (
	"math"
	"unsafe"

	"github.com/hupe1980/datakit/endian"
	"github.com/hupe1980/datakit/int128"
	"github.com/hupe1980/datakit/internal/conv"
)

// EmbedSize is the largest byte string stored inside a Box.
const EmbedSize = 8

// Box is a tagged scalar value: an integer up to 128 bits, a float, a byte
// string (owned, borrowed or embedded), an opaque pointer, or one of the
// immediates true, false, null, void and error.
//
// The zero Box is Void. A Box exclusively owns its payload when Allocated
// reports true; otherwise the bytes are borrowed and the caller keeps them
// alive and unmodified for the life of the box.
type Box struct {
	typ       Type
	allocated bool
	big       bool
	n         uint64 // byte length, 56 bits
	word      uint64 // 64-bit integers, float bits, offset or reference
	embed     [EmbedSize]byte
	buf       []byte
	ptr       any
	cell      *int128.Uint128
}

func checkedLen(n int) uint64 {
	l, err := conv.IntToLen56(n)
	if err != nil {
		panic(err)
	}
	return l
}

// NewVoid returns the void box.
func NewVoid() Box { return Box{} }

// NewError returns an error marker box.
func NewError() Box { return Box{typ: Error} }

// NewNull returns the null box.
func NewNull() Box { return Box{typ: Null} }

// NewBool returns True or False.
func NewBool(v bool) Box {
	if v {
		return Box{typ: True}
	}
	return Box{typ: False}
}

// NewSigned returns a Signed64 box.
func NewSigned(v int64) Box { return Box{typ: Signed64, word: uint64(v)} }

// NewUnsigned returns an Unsigned64 box.
func NewUnsigned(v uint64) Box { return Box{typ: Unsigned64, word: v} }

// NewSigned128 returns a Signed128 box. The value always lives in a cell,
// even when it would fit 64 bits.
func NewSigned128(v int128.Int128) Box {
	c := v.Uint128()
	return Box{typ: Signed128, big: true, cell: &c}
}

// NewUnsigned128 returns an Unsigned128 box.
func NewUnsigned128(v int128.Uint128) Box {
	c := v
	return Box{typ: Unsigned128, big: true, cell: &c}
}

// NewFloat32 returns a Float32 box.
func NewFloat32(v float32) Box {
	return Box{typ: Float32, word: uint64(math.Float32bits(v))}
}

// NewDouble returns a Double64 box.
func NewDouble(v float64) Box { return Box{typ: Double64, word: math.Float64bits(v)} }

// NewReal returns a Float32 box when v survives a round trip through
// float32 and a Double64 box otherwise.
func NewReal(v float64) Box {
	if float64(float32(v)) == v {
		return NewFloat32(float32(v))
	}
	return NewDouble(v)
}

// NewPtr wraps an opaque pointer payload.
func NewPtr(p any) Box { return Box{typ: Ptr, ptr: p} }

// NewReference returns an external container reference.
func NewReference(idx uint64) Box {
	return Box{typ: ContainerReferenceExternal, word: idx}
}

// NewContainer returns a borrowed flex or cflex aggregate. It panics if t is
// not a container type.
func NewContainer(t Type, b []byte) Box {
	if !t.IsContainer() {
		panic("databox: " + t.String() + " is not a container type")
	}
	return Box{typ: t, buf: b, n: checkedLen(len(b))}
}

// NewBytes returns a box borrowing b.
func NewBytes(b []byte) Box {
	return Box{typ: Bytes, buf: b, n: checkedLen(len(b))}
}

// NewBytesNeverFree returns a box over shared bytes that FreeData leaves
// alone.
func NewBytesNeverFree(b []byte) Box {
	return Box{typ: BytesNeverFree, buf: b, n: checkedLen(len(b))}
}

// NewBytesString returns a box borrowing the bytes of s. The view is
// read-only.
func NewBytesString(s string) Box {
	return NewBytes(unsafe.Slice(unsafe.StringData(s), len(s)))
}

// NewBytesAllowEmbed embeds b when it fits and borrows it otherwise.
func NewBytesAllowEmbed(b []byte) Box {
	var box Box
	box.updateBytesAllowEmbed(b)
	return box
}

// NewBytesAllocateOrEmbed embeds b when it fits and takes a private copy
// otherwise.
func NewBytesAllocateOrEmbed(b []byte) Box {
	if len(b) <= EmbedSize {
		return NewBytesAllowEmbed(b)
	}
	var box Box
	box.copyBytes(b)
	return box
}

// NewOffsetAllowEmbed describes base[off:off+n]. Short ranges are embedded
// immediately; longer ones become BytesOffset boxes that must be resolved
// against base before their bytes can be read.
func NewOffsetAllowEmbed(base []byte, off, n int) Box {
	if n <= EmbedSize {
		return NewBytesAllowEmbed(base[off : off+n])
	}
	return Box{typ: BytesOffset, word: uint64(off), n: checkedLen(n)}
}

func (b *Box) updateBytesAllowEmbed(p []byte) {
	b.n = checkedLen(len(p))
	if len(p) <= EmbedSize {
		b.typ = BytesEmbed
		b.buf = nil
		copy(b.embed[:], p)
		return
	}
	b.typ = Bytes
	b.buf = p
}

func (b *Box) copyBytes(p []byte) {
	b.typ = Bytes
	b.allocated = true
	b.n = checkedLen(len(p))
	b.buf = append([]byte(nil), p...)
}

// Resolve turns a BytesOffset box into a readable byte box over base.
// Other boxes are left unchanged.
func (b *Box) Resolve(base []byte) {
	if b.typ != BytesOffset {
		return
	}
	off := b.word
	b.word = 0
	b.updateBytesAllowEmbed(base[off : off+b.n])
}

// Type returns the variant tag.
func (b Box) Type() Type { return b.typ }

// Len returns the byte length of a byte variant.
func (b Box) Len() int { return int(b.n) }

// Allocated reports whether the box owns its byte payload.
func (b Box) Allocated() bool { return b.allocated }

// Big reports whether the value lives in a 128-bit cell.
func (b Box) Big() bool { return b.big }

// Offset returns the recorded offset of a BytesOffset box.
func (b Box) Offset() int { return int(b.word) }

// IsInteger reports whether the box holds an integer.
func (b Box) IsInteger() bool { return b.typ.IsInteger() }

// IsFloat reports whether the box holds a float.
func (b Box) IsFloat() bool { return b.typ.IsFloat() }

// IsBytes reports whether the box holds readable bytes.
func (b Box) IsBytes() bool { return b.typ.IsBytes() }

// IsTrue reports whether the box is the immediate true.
func (b Box) IsTrue() bool { return b.typ == True }

// Truthy reports whether the box counts as true: True, any non-zero number,
// any non-empty byte string and any non-nil pointer. Void, Null and False
// are false.
func (b Box) Truthy() bool {
	switch {
	case b.typ == True:
		return true
	case b.typ == False, b.typ == Null, b.typ == Void, b.typ == Error:
		return false
	case b.typ.IsFloat():
		return b.Float64() != 0
	case b.big:
		return !b.cell.IsZero()
	case b.typ.IsInteger():
		return b.word != 0
	case b.typ == Ptr:
		return b.ptr != nil
	}
	return b.n != 0
}

// Int64 returns the payload of a Signed64 box.
func (b Box) Int64() int64 { return int64(b.word) }

// Uint64 returns the payload of an Unsigned64 or reference box.
func (b Box) Uint64() uint64 { return b.word }

// Float32 returns the payload of a Float32 box.
func (b Box) Float32() float32 { return math.Float32frombits(uint32(b.word)) }

// Float64 returns the float payload, promoting Float32.
func (b Box) Float64() float64 {
	if b.typ == Float32 {
		return float64(b.Float32())
	}
	return math.Float64frombits(b.word)
}

// Int128 returns any integer payload as an Int128. Unsigned values above
// 2^127-1 wrap.
func (b Box) Int128() int128.Int128 {
	switch b.typ {
	case Signed64:
		return int128.I64(int64(b.word))
	case Signed128, Unsigned128:
		return b.cell.Int128()
	}
	return int128.U64(b.word).Int128()
}

// Uint128 returns any integer payload as a Uint128. Negative values wrap.
func (b Box) Uint128() int128.Uint128 {
	switch b.typ {
	case Signed64:
		return int128.I64(int64(b.word)).Uint128()
	case Signed128, Unsigned128:
		return *b.cell
	}
	return int128.U64(b.word)
}

// Ptr returns the pointer payload of a Ptr box.
func (b Box) Ptr() any { return b.ptr }

// Bytes returns the byte payload of a byte or container box. For embedded
// bytes the slice aliases the box itself.
func (b *Box) Bytes() []byte {
	switch {
	case b.typ == BytesEmbed:
		return b.embed[:b.n]
	case b.typ.IsBytes():
		return b.buf[:b.n]
	}
	return nil
}

// GetBytes returns the raw representation of the box: the byte payload
// for byte variants, the little-endian word for 64-bit scalars and four
// bytes for Float32. It reports false for variants without one.
func (b *Box) GetBytes() ([]byte, bool) {
	switch b.typ {
	case Signed64, Unsigned64, Double64:
		return endian.Little.AppendUint64(make([]byte, 0, 8), b.word), true
	case Float32:
		return endian.Little.AppendUint32(make([]byte, 0, 4), uint32(b.word)), true
	}
	if b.typ.IsBytes() {
		return b.Bytes(), true
	}
	return nil, false
}

// GetSize returns the payload size and reports false for variants whose
// size is undefined.
func (b Box) GetSize() (int, bool) {
	switch b.typ {
	case Signed64, Unsigned64, Double64:
		return 8, true
	case Float32:
		return 4, true
	case Signed128, Unsigned128:
		return 16, true
	case True, False, Null:
		return 0, true
	}
	if b.typ.IsBytes() {
		return int(b.n), true
	}
	return 0, false
}

// GetSizeMinimum is GetSize returning 0 for variants without a size.
func (b Box) GetSizeMinimum() int {
	n, _ := b.GetSize()
	return n
}
