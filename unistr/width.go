package unistr

import (
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// CodepointWidth returns the number of terminal cells r occupies: 0 for
// controls and combining marks, 2 for East Asian wide and fullwidth
// characters, 1 otherwise.
func CodepointWidth(r rune) int {
	if r < utf8.RuneSelf {
		if r < 0x20 || r == 0x7F {
			return 0
		}
		return 1
	}
	return uniseg.StringWidth(string(r))
}

// next decodes the code point at the start of b. Malformed bytes decode as
// a single byte of width one.
func next(b []byte) (size, width int) {
	if b[0] < utf8.RuneSelf {
		return 1, CodepointWidth(rune(b[0]))
	}
	r, size := utf8.DecodeRune(b)
	if r == utf8.RuneError && size <= 1 {
		return 1, 1
	}
	return size, CodepointWidth(r)
}

// Width returns the display width of b as the sum of its code point widths.
func Width(b []byte) int {
	w := 0
	for i := 0; i < len(b); {
		size, cw := next(b[i:])
		w += cw
		i += size
	}
	return w
}

// TruncateWidth returns the byte length of the longest prefix of b whose
// width does not exceed maxWidth.
func TruncateWidth(b []byte, maxWidth int) int {
	w := 0
	for i := 0; i < len(b); {
		size, cw := next(b[i:])
		if w+cw > maxWidth {
			return i
		}
		w += cw
		i += size
	}
	return len(b)
}

// IsNarrow reports whether every well-formed code point of b has width 1.
func IsNarrow(b []byte) bool {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		i += size
		if r == utf8.RuneError && size <= 1 {
			continue
		}
		if CodepointWidth(r) != 1 {
			return false
		}
	}
	return true
}

// HasWide reports whether b contains a code point of width 2.
func HasWide(b []byte) bool {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		i += size
		if r >= utf8.RuneSelf && r != utf8.RuneError && CodepointWidth(r) == 2 {
			return true
		}
	}
	return false
}

// WidthN returns the display width of the first n code points of b.
func WidthN(b []byte, n int) int {
	w := 0
	for i := 0; i < len(b) && n > 0; n-- {
		size, cw := next(b[i:])
		w += cw
		i += size
	}
	return w
}

// IndexAtWidth returns the byte offset at which the width of the prefix
// reaches target without exceeding it, or len(b) if b is narrower.
func IndexAtWidth(b []byte, target int) int {
	w := 0
	i := 0
	for i < len(b) && w < target {
		size, cw := next(b[i:])
		if w+cw > target {
			break
		}
		w += cw
		i += size
	}
	return i
}

// WidthAt returns the display width of b before byte offset off. An offset
// inside a multi-byte sequence counts up to the start of that sequence.
func WidthAt(b []byte, off int) int {
	off = min(max(off, 0), len(b))
	for back := 0; off > 0 && off < len(b) && isContinuation(b[off]) && back < 3; back++ {
		off--
	}
	return Width(b[:off])
}

// PadWidth returns the number of single-cell spaces that widen b to
// target, or 0 if b is already at least that wide.
func PadWidth(b []byte, target int) int {
	return max(target-Width(b), 0)
}

// WidthBetween returns the display width of b[start:end], with end clamped
// to len(b). Empty or inverted ranges have width 0.
func WidthBetween(b []byte, start, end int) int {
	start = max(start, 0)
	end = min(end, len(b))
	if start >= end {
		return 0
	}
	return Width(b[start:end])
}
