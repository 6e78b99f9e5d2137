// Package intset implements a set of 64- and 128-bit integers stored as
// sorted buckets of 20-bit offsets.
//
// # Bucket decomposition
//
// A value v is split into a bucket key and an offset in [0, Width):
//
//	v >= 0:  key = v / Width              offset = v % Width
//	v <  0:  u = -v - 1
//	         key = -(u / Width) - 1       offset = u % Width
//
// Treating -1 as the first negative value keeps a negative-zero bucket from
// existing. Negative buckets store offsets that grow away from zero, so
// in-order traversal walks negative buckets from their highest offset down
// and non-negative buckets upward; the combined emission is ascending.
//
// Buckets live in a google/btree BTreeG keyed by int128.Int128, and each
// bucket owns a u32set.Set. Empty buckets are removed immediately.
//
// # Usage
//
//	s := intset.New()
//	s.AddInt64(-25)
//	s.AddUint64(1 << 40)
//	for v := range s.All() {
//		fmt.Println(v)
//	}
//
// Sets are not safe for concurrent use.
package intset
