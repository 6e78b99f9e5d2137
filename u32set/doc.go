// Package u32set implements a dense sorted set of distinct uint32 values.
//
// The set is a single 64-byte aligned array kept in ascending order.
// Add and Remove binary search for the position and shift the tail; Merge
// produces the union with a two-pointer zipper; Intersect dispatches to the
// vectorized kernels of internal/simd, choosing galloping, block-scan or
// tight-loop variants from the size ratio of the inputs.
//
// Sets are not safe for concurrent mutation. Distinct sets are independent.
//
// # Interop
//
// ToBitmap and FromBitmap convert to and from roaring bitmaps for callers
// that need compressed storage or bitmap algebra.
package u32set
