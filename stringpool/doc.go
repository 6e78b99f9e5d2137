// Package stringpool interns byte strings and hands out stable numeric IDs.
//
// Each distinct byte sequence is stored once and reference counted. Intern
// returns the existing ID and bumps its count when the bytes are already
// present; Release drops a reference and, when the count reaches zero,
// frees the copy and pushes the ID onto a free list. Freed IDs are reused
// in LIFO order before new IDs are minted. ID 0 is never assigned.
//
// The forward index maps an xxhash fingerprint of the bytes to the IDs
// sharing it, so collisions resolve by byte comparison. The reverse index
// is a slice indexed by ID that grows on a Fibonacci schedule.
//
// A Pool is not safe for concurrent use.
package stringpool
