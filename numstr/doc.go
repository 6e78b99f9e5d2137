// Package numstr converts between decimal strings and 64/128-bit integers.
//
// The parsers accept only canonical input: ASCII digits, an optional
// leading '-' for the signed variants, and no leading zeros except for
// "0" itself, so that "00003" is never silently stored as 3. All of them
// report failure with a boolean instead of an error; overflow is a
// failure.
//
// Digit validation runs through the SIMD digit kernel and digit runs are
// converted eight at a time with a SWAR multiply.
package numstr
