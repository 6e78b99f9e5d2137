// Package hash provides the 64-bit fingerprints used to index interned
// strings and to summarize set contents in tests.
//
// All fingerprints are xxHash64. Equal fingerprints do not imply equal
// inputs; callers must compare bytes on a match.
package hash
