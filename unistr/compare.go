package unistr

import "bytes"

// Compare orders a and b bytewise, which for valid UTF-8 is code point
// order.
func Compare(a, b []byte) int {
	return bytes.Compare(a, b)
}

// Equal reports whether a and b hold the same bytes.
func Equal(a, b []byte) bool {
	return bytes.Equal(a, b)
}

// StartsWith reports whether b begins with prefix.
func StartsWith(b, prefix []byte) bool {
	return bytes.HasPrefix(b, prefix)
}

// EndsWith reports whether b ends with suffix and the suffix starts on a
// code point boundary of b.
func EndsWith(b, suffix []byte) bool {
	if !bytes.HasSuffix(b, suffix) {
		return false
	}
	off := len(b) - len(suffix)
	return off == 0 || len(suffix) == 0 || !isContinuation(b[off])
}

// CompareN compares the first n code points of a and b bytewise.
func CompareN(a, b []byte, n int) int {
	return bytes.Compare(a[:Truncate(a, n)], b[:Truncate(b, n)])
}
