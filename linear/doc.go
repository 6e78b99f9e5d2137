// Package linear implements the compact, self-describing binary form of
// numeric and immediate boxes.
//
// Every value starts with a one-byte Tag followed by a little-endian
// payload of the minimum width that holds it:
//
//	tag 0        invalid
//	tag 1        bytes (length carried outside the tag)
//	tags 2..17   integers of 1..8 bytes, negative and unsigned alternating
//	tags 18..20  binary16, binary32, binary64
//	tags 21..23  true, false, null (no payload)
//
// Negative integers store -v-1, so -1 encodes as [0x02 0x00]. The tag table
// is an on-disk format shared across machines; it only ever grows.
//
//	buf, _ := linear.Append(nil, &box)
//	v, n, _ := linear.DecodeFrom(buf)
package linear
