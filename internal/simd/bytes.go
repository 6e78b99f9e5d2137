package simd

import (
	"encoding/binary"
	"math/bits"
)

// ==============================================================================
// Byte-stream kernels
// ==============================================================================
//
// The wide variants load 16 or 32 bytes per iteration as 64-bit words and
// evaluate every byte lane with SWAR masks; the tail falls back to the
// generic loop.

const (
	highBits = 0x8080808080808080
	nibHigh  = 0xF0F0F0F0F0F0F0F0
	ascii0s  = 0x3030303030303030
	plusSix  = 0x0606060606060606
)

func countUTF8Generic(b []byte) int {
	n := 0
	for _, c := range b {
		if c&0xC0 != 0x80 {
			n++
		}
	}
	return n
}

// continuations returns the number of 10xxxxxx bytes in w.
func continuations(w uint64) int {
	return bits.OnesCount64(w & (^w << 1) & highBits)
}

func countUTF8x16(b []byte) int {
	n := 0
	i := 0
	for ; i+16 <= len(b); i += 16 {
		w0 := binary.LittleEndian.Uint64(b[i:])
		w1 := binary.LittleEndian.Uint64(b[i+8:])
		n += 16 - continuations(w0) - continuations(w1)
	}
	return n + countUTF8Generic(b[i:])
}

func countUTF8x32(b []byte) int {
	n := 0
	i := 0
	for ; i+32 <= len(b); i += 32 {
		w0 := binary.LittleEndian.Uint64(b[i:])
		w1 := binary.LittleEndian.Uint64(b[i+8:])
		w2 := binary.LittleEndian.Uint64(b[i+16:])
		w3 := binary.LittleEndian.Uint64(b[i+24:])
		n += 32 - continuations(w0) - continuations(w1) - continuations(w2) - continuations(w3)
	}
	return n + countUTF8x16(b[i:])
}

func isDigitsGeneric(b []byte) bool {
	for _, c := range b {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// digitWord reports whether all eight bytes of w are in ['0', '9'].
func digitWord(w uint64) bool {
	return w&nibHigh == ascii0s && (w+plusSix)&nibHigh == ascii0s
}

func isDigitsx16(b []byte) bool {
	i := 0
	for ; i+16 <= len(b); i += 16 {
		w0 := binary.LittleEndian.Uint64(b[i:])
		w1 := binary.LittleEndian.Uint64(b[i+8:])
		if !digitWord(w0) || !digitWord(w1) {
			return false
		}
	}
	return isDigitsGeneric(b[i:])
}

func isDigitsx32(b []byte) bool {
	i := 0
	for ; i+32 <= len(b); i += 32 {
		ok := digitWord(binary.LittleEndian.Uint64(b[i:])) &&
			digitWord(binary.LittleEndian.Uint64(b[i+8:])) &&
			digitWord(binary.LittleEndian.Uint64(b[i+16:])) &&
			digitWord(binary.LittleEndian.Uint64(b[i+24:]))
		if !ok {
			return false
		}
	}
	return isDigitsx16(b[i:])
}

func popcountGeneric(b []byte) int {
	n := 0
	for _, c := range b {
		n += bits.OnesCount8(c)
	}
	return n
}

func popcountx16(b []byte) int {
	n := 0
	i := 0
	for ; i+16 <= len(b); i += 16 {
		n += bits.OnesCount64(binary.LittleEndian.Uint64(b[i:]))
		n += bits.OnesCount64(binary.LittleEndian.Uint64(b[i+8:]))
	}
	return n + popcountGeneric(b[i:])
}

func popcountx32(b []byte) int {
	n := 0
	i := 0
	for ; i+32 <= len(b); i += 32 {
		n += bits.OnesCount64(binary.LittleEndian.Uint64(b[i:])) +
			bits.OnesCount64(binary.LittleEndian.Uint64(b[i+8:])) +
			bits.OnesCount64(binary.LittleEndian.Uint64(b[i+16:])) +
			bits.OnesCount64(binary.LittleEndian.Uint64(b[i+24:]))
	}
	return n + popcountx16(b[i:])
}

func popcountWordsGeneric(words []uint64) int {
	count := 0
	for _, w := range words {
		count += bits.OnesCount64(w)
	}
	return count
}

func popcountWordsx2(words []uint64) int {
	count := 0
	i := 0
	for ; i+2 <= len(words); i += 2 {
		count += bits.OnesCount64(words[i]) + bits.OnesCount64(words[i+1])
	}
	return count + popcountWordsGeneric(words[i:])
}

func popcountWordsx4(words []uint64) int {
	count := 0
	i := 0
	for ; i+4 <= len(words); i += 4 {
		count += bits.OnesCount64(words[i])
		count += bits.OnesCount64(words[i+1])
		count += bits.OnesCount64(words[i+2])
		count += bits.OnesCount64(words[i+3])
	}
	return count + popcountWordsGeneric(words[i:])
}
