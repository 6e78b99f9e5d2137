package unistr

// Truncate returns the byte length of the first maxChars code points.
func Truncate(b []byte, maxChars int) int {
	if maxChars <= 0 {
		return 0
	}
	return Advance(b, maxChars)
}

// TruncateBytes returns the largest length not above maxBytes that does
// not split a multi-byte sequence.
func TruncateBytes(b []byte, maxBytes int) int {
	if maxBytes >= len(b) {
		return len(b)
	}
	if maxBytes <= 0 {
		return 0
	}
	n := maxBytes
	for back := 0; n > 0 && isContinuation(b[n]) && back < 3; back++ {
		n--
	}
	return n
}

// Substring returns code points [start, end) of b as a subslice. A
// negative end means the end of b. A start past the end yields an empty
// slice positioned at len(b).
func Substring(b []byte, start, end int) []byte {
	start = max(start, 0)
	from := Advance(b, start)
	if from >= len(b) {
		return b[len(b):]
	}
	if end < 0 {
		return b[from:]
	}
	if end <= start {
		return b[from:from]
	}
	to := from + Advance(b[from:], end-start)
	return b[from:to]
}

// Split cuts b before the code point with index i.
func Split(b []byte, i int) (head, tail []byte) {
	off := Truncate(b, i)
	return b[:off], b[off:]
}

// SubstringCopy copies code points [start, end) of b into dst, as selected
// by Substring, and returns the number of bytes written. When dst is too
// small the copy stops at the last whole code point that fits.
func SubstringCopy(dst, b []byte, start, end int) int {
	sub := Substring(b, start, end)
	if len(sub) > len(dst) {
		sub = sub[:TruncateBytes(sub, len(dst))]
	}
	return copy(dst, sub)
}
