package unistr

import (
	"bytes"
	"unicode/utf8"
)

// Find returns the byte offset of the first occurrence of needle in b, or
// -1. An empty needle matches at 0.
func Find(b, needle []byte) int {
	return bytes.Index(b, needle)
}

// FindLast returns the byte offset of the last occurrence of needle in b,
// or -1. An empty needle matches at len(b).
func FindLast(b, needle []byte) int {
	return bytes.LastIndex(b, needle)
}

// FindChar returns the byte offset of the first occurrence of r, or -1.
func FindChar(b []byte, r rune) int {
	if !utf8.ValidRune(r) {
		return -1
	}
	return bytes.IndexRune(b, r)
}

// FindCharLast returns the byte offset of the last occurrence of r, or -1.
func FindCharLast(b []byte, r rune) int {
	var buf [utf8.UTFMax]byte
	enc, ok := Encode(buf[:0], r)
	if !ok {
		return -1
	}
	return bytes.LastIndex(b, enc)
}

// FindCharNth returns the byte offset of the occurrence of r with index n,
// counting from 0, or -1.
func FindCharNth(b []byte, r rune, n int) int {
	var buf [utf8.UTFMax]byte
	enc, ok := Encode(buf[:0], r)
	if !ok || n < 0 {
		return -1
	}
	for i := 0; i+len(enc) <= len(b); {
		if bytes.HasPrefix(b[i:], enc) {
			if n == 0 {
				return i
			}
			n--
			i += len(enc)
			continue
		}
		i += seqLen(b[i])
	}
	return -1
}

// FindAnyChar returns the byte offset of the first code point of b that
// occurs in set, or -1.
func FindAnyChar(b, set []byte) int {
	if i := SpanNot(b, set); i < len(b) {
		return i
	}
	return -1
}

// FindNotChar returns the byte offset of the first code point of b that
// does not occur in set, or -1.
func FindNotChar(b, set []byte) int {
	if i := Span(b, set); i < len(b) {
		return i
	}
	return -1
}

// Count returns the number of non-overlapping occurrences of needle in b.
// An empty needle occurs zero times.
func Count(b, needle []byte) int {
	if len(needle) == 0 {
		return 0
	}
	return bytes.Count(b, needle)
}

// CountChar returns the number of occurrences of r in b.
func CountChar(b []byte, r rune) int {
	var buf [utf8.UTFMax]byte
	enc, ok := Encode(buf[:0], r)
	if !ok {
		return 0
	}
	return bytes.Count(b, enc)
}

// Contains reports whether needle occurs in b.
func Contains(b, needle []byte) bool {
	return bytes.Contains(b, needle)
}

// Span returns the byte length of the longest prefix of b made only of
// code points from set.
func Span(b, set []byte) int {
	return span(b, set, true)
}

// SpanNot returns the byte length of the longest prefix of b containing no
// code point from set.
func SpanNot(b, set []byte) int {
	return span(b, set, false)
}

func span(b, set []byte, in bool) int {
	i := 0
	for i < len(b) {
		n := seqLen(b[i])
		if i+n > len(b) {
			n = len(b) - i
		}
		if inSet(set, b[i:i+n]) != in {
			break
		}
		i += n
	}
	return i
}

// inSet reports whether the sequence c is one of the code points of set.
func inSet(set, c []byte) bool {
	for off := 0; off < len(set); {
		n := min(seqLen(set[off]), len(set)-off)
		if bytes.Equal(set[off:off+n], c) {
			return true
		}
		off += n
	}
	return false
}
