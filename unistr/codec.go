package unistr

import "unicode/utf8"

// Valid reports whether b is well-formed UTF-8 without surrogates or
// overlong forms.
func Valid(b []byte) bool {
	return utf8.Valid(b)
}

// Decode returns the first code point of b and its length. ok is false for
// empty or malformed input.
func Decode(b []byte) (r rune, size int, ok bool) {
	if len(b) == 0 {
		return utf8.RuneError, 0, false
	}
	r, size = utf8.DecodeRune(b)
	if r == utf8.RuneError && size <= 1 {
		return utf8.RuneError, 0, false
	}
	return r, size, true
}

// Encode appends the UTF-8 form of r to dst. Surrogates and values above
// utf8.MaxRune are rejected and leave dst unchanged.
func Encode(dst []byte, r rune) ([]byte, bool) {
	if !utf8.ValidRune(r) {
		return dst, false
	}
	return utf8.AppendRune(dst, r), true
}

// CodepointLen returns the encoded length of r, or 0 if r cannot be
// encoded.
func CodepointLen(r rune) int {
	n := utf8.RuneLen(r)
	if n < 0 {
		return 0
	}
	return n
}

// SequenceLen returns the length announced by the lead byte of a UTF-8
// sequence, or 0 for continuation bytes and bytes that never start one.
func SequenceLen(lead byte) int {
	switch {
	case lead < utf8.RuneSelf:
		return 1
	case lead < 0xC2:
		return 0
	case lead < 0xF5:
		return seqLen(lead)
	}
	return 0
}

// ValidCount counts the code points of b while validating it. On malformed
// input ok is false and n is the count before the first bad sequence.
func ValidCount(b []byte) (n int, ok bool) {
	for i := 0; i < len(b); n++ {
		if b[i] < utf8.RuneSelf {
			i++
			continue
		}
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return n, false
		}
		i += size
	}
	return n, true
}

// ValidCountBytes returns the byte length of the first chars code points of
// b, validating them. A shorter b yields len(b). Malformed input within
// that prefix returns 0 and false.
func ValidCountBytes(b []byte, chars int) (int, bool) {
	i := 0
	for ; i < len(b) && chars > 0; chars-- {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return 0, false
		}
		i += size
	}
	return i, true
}
