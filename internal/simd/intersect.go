package simd

// ==============================================================================
// Sorted uint32 set intersection
// ==============================================================================
//
// All variants require sorted, distinct inputs and produce exactly the
// output of IntersectScalar. The wide variants scan the larger ("freq")
// input in blocks of vectors and compare the current value of the smaller
// ("rare") input against every lane of a block at once, so the per-element
// work is branch-free compares OR-ed into a movemask.

// Ratio thresholds between the larger and smaller input that select the
// kernel. Tuned empirically; do not change without re-benchmarking.
const (
	GallopRatio = 1000
	V3Ratio     = 50
)

// v1 compares against 2 vectors per step, v3 and galloping against 32.
const (
	v1Vectors = 2
	v3Vectors = 32
)

// Intersect128 intersects with 4-lane (128-bit) blocks.
func Intersect128(a, b, out []uint32) int {
	return intersectLanes(a, b, out, 4)
}

// Intersect256 intersects with 8-lane (256-bit) blocks.
func Intersect256(a, b, out []uint32) int {
	return intersectLanes(a, b, out, 8)
}

func intersectLanes(a, b, out []uint32, lanes int) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	if len(a) > len(b) {
		a, b = b, a
	}
	switch {
	case GallopRatio*len(a) <= len(b):
		return IntersectSIMDGalloping(a, b, out, lanes)
	case V3Ratio*len(a) <= len(b):
		return IntersectV3(a, b, out, lanes)
	default:
		return IntersectV1(a, b, out, lanes)
	}
}

func intersectGeneric(a, b, out []uint32) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	if len(a) > len(b) {
		a, b = b, a
	}
	if GallopRatio*len(a) <= len(b) {
		return IntersectGalloping(a, b, out)
	}
	return IntersectScalar(a, b, out)
}

// IntersectScalar is the classical two-pointer intersection.
func IntersectScalar(a, b, out []uint32) int {
	n, i, j := 0, 0, 0
	for i < len(a) && j < len(b) {
		x, y := a[i], b[j]
		switch {
		case x < y:
			i++
		case x > y:
			j++
		default:
			out[n] = x
			n++
			i++
			j++
		}
	}
	return n
}

// gallop returns the smallest index > pos whose value is >= min, or
// len(array) if there is none. Exponential probe, then binary search.
func gallop(array []uint32, pos int, min uint32) int {
	lower := pos + 1
	if lower >= len(array) || array[lower] >= min {
		return lower
	}

	span := 1
	for lower+span < len(array) && array[lower+span] < min {
		span *= 2
	}

	upper := len(array) - 1
	if lower+span < len(array) {
		upper = lower + span
	}
	if array[upper] < min {
		return len(array)
	}

	lower += span / 2
	for lower+1 != upper {
		mid := (lower + upper) / 2
		switch {
		case array[mid] == min:
			return mid
		case array[mid] < min:
			lower = mid
		default:
			upper = mid
		}
	}
	return upper
}

// IntersectGalloping is a one-sided galloping intersection: it walks the
// smaller input and gallops through the larger one.
func IntersectGalloping(small, large, out []uint32) int {
	if len(large) < len(small) {
		small, large = large, small
	}
	if len(small) == 0 {
		return 0
	}

	n, k1, k2 := 0, 0, 0
	for {
		if large[k1] < small[k2] {
			k1 = gallop(large, k1, small[k2])
			if k1 == len(large) {
				return n
			}
		}
		if small[k2] < large[k1] {
			k2++
			if k2 == len(small) {
				return n
			}
			continue
		}
		out[n] = small[k2]
		n++
		k2++
		if k2 == len(small) {
			return n
		}
		k1 = gallop(large, k1, small[k2])
		if k1 == len(large) {
			return n
		}
	}
}

// IntersectV1 compares each rare value against a 2-vector block of freq.
// Best when both inputs have similar sizes.
//
// SAFETY: len(rare) <= len(freq). out may alias rare.
func IntersectV1(rare, freq, out []uint32, lanes int) int {
	if len(rare) == 0 || len(freq) == 0 {
		return 0
	}
	block := v1Vectors * lanes
	n, r, f := 0, 0, 0
	for r < len(rare) && f+block <= len(freq) {
		v := rare[r]
		if freq[f+block-1] < v {
			f += block
			continue
		}
		if cmpeqBlock(freq[f:f+block], v, lanes) != 0 {
			out[n] = v
			n++
		}
		r++
	}
	return n + IntersectScalar(rare[r:], freq[f:], out[n:])
}

// IntersectV3 compares each rare value against one quarter of a 32-vector
// block of freq, chosen by probing the block's quarter maxima.
//
// SAFETY: len(rare) <= len(freq). out may alias rare.
func IntersectV3(rare, freq, out []uint32, lanes int) int {
	if len(rare) == 0 || len(freq) == 0 {
		return 0
	}
	block := v3Vectors * lanes
	if len(freq) < block {
		return IntersectScalar(rare, freq, out)
	}

	n, r, f := 0, 0, 0
	for ; r < len(rare); r++ {
		v := rare[r]
		for freq[f+block-1] < v {
			f += block
			if f+block > len(freq) {
				return n + IntersectScalar(rare[r:], freq[f:], out[n:])
			}
		}
		if matchQuarter(freq[f:f+block], v, lanes) {
			out[n] = v
			n++
		}
	}
	return n
}

// IntersectSIMDGalloping gallops over 32-vector blocks of freq before
// comparing a quarter block like IntersectV3. Best when freq is orders of
// magnitude larger than rare.
//
// SAFETY: len(rare) <= len(freq). out may alias rare.
func IntersectSIMDGalloping(rare, freq, out []uint32, lanes int) int {
	if len(rare) == 0 || len(freq) == 0 {
		return 0
	}
	block := v3Vectors * lanes
	if len(freq) < block {
		return IntersectScalar(rare, freq, out)
	}

	n, r, f := 0, 0, 0
	for ; r < len(rare); r++ {
		v := rare[r]
		if freq[f+block-1] < v {
			blocks := (len(freq) - f) / block
			lastMax := func(k int) uint32 { return freq[f+k*block+block-1] }

			lo, hi := 0, 1
			for hi < blocks && lastMax(hi) < v {
				lo = hi
				hi *= 2
			}
			if hi >= blocks {
				if lastMax(blocks-1) < v {
					f += blocks * block
					return n + IntersectScalar(rare[r:], freq[f:], out[n:])
				}
				hi = blocks - 1
			}
			for lo+1 != hi {
				mid := (lo + hi) / 2
				if lastMax(mid) < v {
					lo = mid
				} else {
					hi = mid
				}
			}
			f += hi * block
		}
		if matchQuarter(freq[f:f+block], v, lanes) {
			out[n] = v
			n++
		}
	}
	return n
}

// matchQuarter reports whether v occurs in blk, a 32-vector block whose
// last element is >= v. Two probes select the 8-vector quarter that can
// contain v.
func matchQuarter(blk []uint32, v uint32, lanes int) bool {
	quarter := 8 * lanes
	var start int
	if blk[2*quarter-1] >= v {
		if blk[quarter-1] < v {
			start = quarter
		}
	} else {
		start = 2 * quarter
		if blk[3*quarter-1] < v {
			start = 3 * quarter
		}
	}
	return cmpeqBlock(blk[start:start+quarter], v, lanes) != 0
}

// cmpeqBlock compares v against every element of blk, one vector of lanes
// at a time, and returns the OR of all lane masks.
func cmpeqBlock(blk []uint32, v uint32, lanes int) uint32 {
	var acc uint32
	if lanes == 8 {
		for i := 0; i+8 <= len(blk); i += 8 {
			acc |= cmpeq8(blk[i:i+8], v)
		}
		return acc
	}
	for i := 0; i+4 <= len(blk); i += 4 {
		acc |= cmpeq4(blk[i:i+4], v)
	}
	return acc
}

func cmpeq4(vec []uint32, v uint32) uint32 {
	_ = vec[3]
	return eqMask(vec[0], v) |
		eqMask(vec[1], v)<<1 |
		eqMask(vec[2], v)<<2 |
		eqMask(vec[3], v)<<3
}

func cmpeq8(vec []uint32, v uint32) uint32 {
	_ = vec[7]
	return cmpeq4(vec[0:4], v) | cmpeq4(vec[4:8], v)<<4
}

// eqMask returns 1 if a == b and 0 otherwise, without branching.
func eqMask(a, b uint32) uint32 {
	x := a ^ b
	return ((x | -x) >> 31) ^ 1
}

// KernelFor names the variant Intersect selects for inputs of sizes na and
// nb under the active ISA.
func KernelFor(na, nb int) string {
	small, large := min(na, nb), max(na, nb)
	wide := activeISA != Generic
	switch {
	case small == 0:
		return "empty"
	case GallopRatio*small <= large:
		if wide {
			return "simd-galloping"
		}
		return "galloping"
	case !wide:
		return "scalar"
	case V3Ratio*small <= large:
		return "v3"
	}
	return "v1"
}
