package conv

import (
	"fmt"
	"math"

	"github.com/hupe1980/datakit"
)

// MaxLen56 is the largest length a box can record.
const MaxLen56 = 1<<56 - 1

// Uint64ToInt converts uint64 to int safely.
func Uint64ToInt(v uint64) (int, error) {
	if v > uint64(math.MaxInt) {
		return 0, fmt.Errorf("%w: %d cannot be converted to int (too large)", datakit.ErrOverflow, v)
	}
	return int(v), nil
}

// Uint64ToInt64 converts uint64 to int64 safely.
func Uint64ToInt64(v uint64) (int64, error) {
	if v > math.MaxInt64 {
		return 0, fmt.Errorf("%w: %d cannot be converted to int64 (too large)", datakit.ErrOverflow, v)
	}
	return int64(v), nil
}

// IntToLen56 checks that n fits the 56-bit length field of a box.
func IntToLen56(n int) (uint64, error) {
	if n < 0 || uint64(n) > MaxLen56 {
		return 0, fmt.Errorf("%w: length %d does not fit 56 bits", datakit.ErrOverflow, n)
	}
	return uint64(n), nil
}
