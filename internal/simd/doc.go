// Package simd provides lane-parallel kernels for sorted-set intersection
// and byte-stream scanning.
//
// # Supported Platforms
//
//   - x86-64: AVX2 (8 lanes), SSE4.1 (4 lanes)
//   - ARM64: NEON (4 lanes)
//
// The kernels are portable Go with no assembly. An ISA name selects the
// lane width of a block loop (fixed 4- or 8-element blocks compared without
// branches, or word-at-a-time byte scans) sized for that instruction set,
// which the compiler may or may not vectorize. They are not hardware
// intrinsics.
//
// Runtime CPU feature detection selects the kernel family. Set
// DATAKIT_SIMD=generic|sse41|neon|avx2 to force one; an unavailable
// choice falls back to auto-detection.
//
// # Operations
//
//   - Intersection: scalar, one-sided galloping, v1, v3, SIMD galloping
//   - Bytes: UTF-8 code point count, digit validation, popcount
//
// Every kernel returns exactly what its generic counterpart returns.
package simd
