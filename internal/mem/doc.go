// Package mem provides allocation helpers for the containers.
//
// # Growth
//
// Containers grow on a Fibonacci schedule: each reallocation picks the next
// Fibonacci number above the current capacity. Growth is sub-exponential, so
// large containers waste less slack than with doubling.
//
// # Aligned Allocation
//
// Element storage for u32 arrays is 64-byte aligned so block kernels never
// straddle a cache line at the start of the array.
package mem
