package mem

import "math"

// NextSize returns the smallest Fibonacci number strictly greater than cur.
// Past the largest Fibonacci number representable in an int the size grows
// by 20% instead.
func NextSize(cur int) int {
	if cur < 1 {
		return 1
	}
	a, b := 1, 2
	for b <= cur {
		if a > math.MaxInt-b {
			return cur + cur/5 + 1
		}
		a, b = b, a+b
	}
	return b
}

// NextSizeFrom is NextSize with a floor: the result is never smaller than
// min.
func NextSizeFrom(cur, min int) int {
	n := NextSize(cur)
	if n < min {
		return min
	}
	return n
}
