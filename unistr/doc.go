// Package unistr provides UTF-8 cursor, search, width and grapheme helpers
// over byte slices, plus ASCII-only case folding.
//
// Functions never fail on malformed input. An invalid byte counts as one
// character of width one, so cursors always make progress.
//
// Display widths and grapheme segmentation follow rivo/uniseg. Code point
// counting uses the vectorized kernel from internal/simd.
package unistr
