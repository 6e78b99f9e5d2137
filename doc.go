// Package datakit provides the in-memory data-structure core of a
// key-value database server: a tagged value box with a total order, a
// compact binary codec, sorted integer sets with SIMD-style intersection, a
// bucketed set of 128-bit integers and a reference-counted string pool.
//
// The root package carries the ambient pieces shared by the container
// packages (the structured Logger, sentinel errors, the MetricsCollector and
// the common Options) plus the kernel report and popcount helpers.
//
// # Packages
//
//   - databox: tagged value box, comparison, ownership and retain cache
//   - linear: self-describing binary encoding of numeric boxes
//   - u32set: sorted distinct uint32 set
//   - intset: set of 128-bit integers split into buckets of sorted uint32 offsets
//   - stringpool: interned strings with reference counts and ID reuse
//   - numstr: integer parsing and formatting up to 128 bits
//   - unistr: UTF-8 cursor, search, display width and grapheme helpers
//   - int128, endian: fixed-width integer helpers
//
// # Quick Start
//
//	pool := stringpool.New(stringpool.WithLogger(datakit.NewTextLogger(nil, slog.LevelDebug)))
//	id := pool.InternString("hello")
//	s, _ := pool.LookupString(id)
//
//	set := intset.New()
//	set.AddInt64(-25)
//	for v := range set.All() {
//	    fmt.Println(v)
//	}
//
// Kernels reports which vectorized kernel set was selected at startup; set
// DATAKIT_SIMD to generic, sse41, neon or avx2 to force one.
//
// # Concurrency
//
// No container is safe for concurrent mutation. Distinct instances may be
// used from distinct goroutines without coordination.
package datakit
