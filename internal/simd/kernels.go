package simd

// Kernel function pointers - set once at init, zero runtime overhead.
// Generic implementations are the default; platform-specific init()
// functions override them with the wide-lane variants when available.
var (
	kernelIntersect     = intersectGeneric
	kernelCountUTF8     = countUTF8Generic
	kernelIsDigits      = isDigitsGeneric
	kernelPopcount      = popcountGeneric
	kernelPopcountWords = popcountWordsGeneric
)

// setKernels points every kernel at the implementation for isa.
func setKernels(isa ISA) {
	switch isa {
	case NEON, SSE41:
		kernelIntersect = Intersect128
		kernelCountUTF8 = countUTF8x16
		kernelIsDigits = isDigitsx16
		kernelPopcount = popcountx16
		kernelPopcountWords = popcountWordsx2
	case AVX2:
		kernelIntersect = Intersect256
		kernelCountUTF8 = countUTF8x32
		kernelIsDigits = isDigitsx32
		kernelPopcount = popcountx32
		kernelPopcountWords = popcountWordsx4
	default:
		kernelIntersect = intersectGeneric
		kernelCountUTF8 = countUTF8Generic
		kernelIsDigits = isDigitsGeneric
		kernelPopcount = popcountGeneric
		kernelPopcountWords = popcountWordsGeneric
	}
}

// ============================================================================
// Public API - dispatch through function pointers
// ============================================================================

// Intersect writes the sorted intersection of the sorted, distinct inputs
// a and b into out and returns its length.
//
// SAFETY: out must have room for min(len(a), len(b)) elements. out may
// alias the shorter input.
func Intersect(a, b, out []uint32) int {
	return kernelIntersect(a, b, out)
}

// CountUTF8 returns the number of UTF-8 code points in b, counting every
// byte that is not a continuation byte.
func CountUTF8(b []byte) int {
	return kernelCountUTF8(b)
}

// IsDigits reports whether every byte of b is an ASCII digit.
// An empty slice is all digits.
func IsDigits(b []byte) bool {
	return kernelIsDigits(b)
}

// Popcount returns the number of set bits in b.
func Popcount(b []byte) int {
	return kernelPopcount(b)
}

// PopcountWords returns the number of set bits across words.
func PopcountWords(words []uint64) int {
	return kernelPopcountWords(words)
}
