package databox

// RetainSlots is the number of buffers in a RetainCache.
const RetainSlots = 16

// retainBase is the size of slot 0; each following slot doubles.
const retainBase = 128

// RetainCache is a caller-owned set of scratch buffers used by
// RetainBytesSelf. Slot i holds a buffer of RetainSlotSize(i) bytes or nil.
type RetainCache struct {
	Bytes [RetainSlots][]byte
}

// RetainSlotSize returns the capacity expected in slot i.
func RetainSlotSize(i int) int { return retainBase << i }

// NewRetainCache returns a cache with the first slots populated.
func NewRetainCache(slots int) *RetainCache {
	c := &RetainCache{}
	for i := 0; i < min(slots, RetainSlots); i++ {
		c.Bytes[i] = make([]byte, RetainSlotSize(i))
	}
	return c
}

// RetainBytesSelf copies a byte box's payload into private storage. Short
// payloads are embedded and return -1. Otherwise the smallest slot that
// fits is used and its index returned; when that slot is empty a fresh
// buffer is allocated and -1 returned. Non-byte boxes and payloads larger
// than the biggest slot return -2 and stay untouched.
//
// A box filled from a cache slot shares that slot's memory; the caller must
// not reuse the slot while the box is alive.
func (b *Box) RetainBytesSelf(cache *RetainCache) int {
	if !b.typ.IsBytes() {
		return -2
	}
	src := b.Bytes()
	if len(src) <= EmbedSize {
		b.embedFrom(src)
		return -1
	}

	size := retainBase
	for slot := 0; slot < RetainSlots; slot, size = slot+1, size*2 {
		if len(src) > size {
			continue
		}
		if dst := cache.Bytes[slot]; len(dst) >= len(src) {
			b.buf = dst[:copy(dst, src)]
			b.allocated = true
			return slot
		}
		b.buf = append([]byte(nil), src...)
		b.allocated = true
		return -1
	}
	return -2
}

// RetainBytesSelfExact copies the payload into dst, which the caller sized
// to at least Len bytes. Short payloads are embedded instead.
func (b *Box) RetainBytesSelfExact(dst []byte) {
	src := b.Bytes()
	if len(src) <= EmbedSize {
		b.embedFrom(src)
		return
	}
	b.buf = dst[:copy(dst, src)]
	b.allocated = true
}

func (b *Box) embedFrom(src []byte) {
	var tmp [EmbedSize]byte
	copy(tmp[:], src)
	b.embed = tmp
	b.n = uint64(len(src))
	b.typ = BytesEmbed
	b.buf = nil
	b.allocated = false
}

// AllocateIfNeeded replaces a borrowed payload with a private copy and
// reports whether it did so. A never-free box becomes an owned Bytes box. Embedded, already owned, offset and non-byte
// boxes are left alone.
func (b *Box) AllocateIfNeeded() bool {
	if b.allocated || b.typ == BytesEmbed || !b.typ.IsBytes() {
		return false
	}
	b.buf = append([]byte(nil), b.buf[:b.n]...)
	b.allocated = true
	if b.typ == BytesNeverFree {
		b.typ = Bytes
	}
	return true
}

// Copy returns a deep copy of src. Byte payloads and 128-bit cells are
// duplicated so the copy owns them; a never-free source yields a Bytes box.
func Copy(src *Box) Box {
	dst := *src
	switch {
	case src.big:
		c := *src.cell
		dst.cell = &c
	case src.typ.IsBytes() && src.typ != BytesEmbed:
		dst.buf = append(make([]byte, 0, src.n), src.buf[:src.n]...)
		dst.allocated = true
		if dst.typ == BytesNeverFree {
			dst.typ = Bytes
		}
	}
	return dst
}

// CopyBytesFromBox sets dst to a copy of src that embeds short byte
// payloads and owns longer ones.
func CopyBytesFromBox(dst, src *Box) {
	if src.typ.IsBytes() && src.typ != BytesEmbed && src.n <= EmbedSize {
		*dst = *src
		dst.embedFrom(src.Bytes())
		return
	}
	*dst = Copy(src)
}

// FreeData releases an owned Bytes payload and turns the box into Void.
// Borrowed, never-free and non-byte boxes are left unchanged.
func (b *Box) FreeData() {
	if b.allocated && b.typ == Bytes {
		*b = Box{}
	}
}

// Free releases every payload the box owns, including a 128-bit cell, and
// resets it to Void. Freeing a Void box is a no-op.
func (b *Box) Free() {
	*b = Box{}
}
