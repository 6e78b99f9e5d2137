// Package testutil provides testing utilities for datakit.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, goroutine-safe random source and generators for
// sorted integer sets, digit strings and mixed-width UTF-8 text.
//
//	rng := testutil.NewRNG(4711)
//	a := rng.SortedUint32s(1000, 1<<20)
//	b := rng.SortedUint32s(50, 1<<20)
//	want := testutil.ScalarIntersect(a, b)
package testutil
