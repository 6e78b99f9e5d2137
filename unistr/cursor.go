package unistr

import (
	"unicode/utf8"

	"github.com/hupe1980/datakit/internal/simd"
)

// seqLen returns the sequence length announced by a lead byte. Continuation
// bytes and invalid leads advance by one.
func seqLen(b byte) int {
	switch {
	case b < 0xC2:
		return 1
	case b < 0xE0:
		return 2
	case b < 0xF0:
		return 3
	case b < 0xF5:
		return 4
	}
	return 1
}

func isContinuation(b byte) bool {
	return b&0xC0 == 0x80
}

// Len returns the number of code points in b: every byte that is not a
// continuation byte starts one.
func Len(b []byte) int {
	return simd.CountUTF8(b)
}

// Advance returns the byte offset reached after stepping over n code
// points, or len(b) if b ends first.
func Advance(b []byte, n int) int {
	i := 0
	for ; n > 0 && i < len(b); n-- {
		// Runs of ASCII need no table lookups.
		if b[i] < utf8.RuneSelf {
			i++
			continue
		}
		i = min(i+seqLen(b[i]), len(b))
	}
	return i
}

// Retreat returns the byte offset reached after stepping back n code points
// from pos.
func Retreat(b []byte, pos, n int) int {
	pos = min(max(pos, 0), len(b))
	for ; n > 0 && pos > 0; n-- {
		pos--
		for back := 1; pos > 0 && isContinuation(b[pos]) && back < utf8.UTFMax; back++ {
			pos--
		}
	}
	return pos
}

// Peek decodes the code point at byte offset pos without moving. ok is
// false when pos is out of range or the bytes there are malformed.
func Peek(b []byte, pos int) (r rune, ok bool) {
	if pos < 0 || pos >= len(b) {
		return utf8.RuneError, false
	}
	r, _, ok = Decode(b[pos:])
	return r, ok
}

// OffsetAt returns the byte offset of the code point with index i.
func OffsetAt(b []byte, i int) int {
	return Advance(b, i)
}

// IndexAt returns the number of code points that start before byte offset
// off.
func IndexAt(b []byte, off int) int {
	if off <= 0 {
		return 0
	}
	return Len(b[:min(off, len(b))])
}
