// Package databox provides Box, a tagged scalar value used as the common
// currency of the datakit containers and codecs.
//
// A Box holds one of: a 64- or 128-bit integer (signed or unsigned), a
// float32 or float64, a byte string that is borrowed, owned or embedded
// inline when it is at most 8 bytes long, an opaque pointer, an external
// reference, or one of the immediates true, false, null, void and error.
//
// # Ordering
//
// Compare defines a total order across every variant:
//
//   - byte strings compare bytewise, with runs of digits ordered by their
//     first differing digit so "45" < "450" and "120abc" < "120zzz"
//   - integers of any width and sign compare by value
//   - floats compare as float64; NaN sorts after every number
//   - integers compare exactly against floats, so uint 10 == double 10.0
//   - equal immediates compare equal; other pairs order by tag
//
// # Ownership
//
// Constructors named New*Bytes borrow their input. NewBytesAllocateOrEmbed,
// Copy, AllocateIfNeeded and the RetainBytesSelf family produce boxes that
// own their payload (Allocated reports true). Free resets a box to Void.
package databox
