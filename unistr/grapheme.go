package unistr

import "github.com/rivo/uniseg"

// GraphemeNext returns the byte length of the first grapheme cluster of b.
func GraphemeNext(b []byte) int {
	if len(b) == 0 {
		return 0
	}
	cluster, _, _, _ := uniseg.FirstGraphemeCluster(b, -1)
	return len(cluster)
}

// GraphemeCount returns the number of grapheme clusters in b.
func GraphemeCount(b []byte) int {
	n := 0
	state := -1
	for len(b) > 0 {
		_, b, _, state = uniseg.FirstGraphemeCluster(b, state)
		n++
	}
	return n
}

// GraphemeAdvance returns the byte offset after n grapheme clusters, or
// len(b) if b ends first.
func GraphemeAdvance(b []byte, n int) int {
	off := 0
	state := -1
	for rest := b; n > 0 && len(rest) > 0; n-- {
		var cluster []byte
		cluster, rest, _, state = uniseg.FirstGraphemeCluster(rest, state)
		off += len(cluster)
	}
	return off
}

// GraphemeAt returns the byte range of the grapheme cluster with index n.
func GraphemeAt(b []byte, n int) (start, end int, ok bool) {
	if n < 0 {
		return 0, 0, false
	}
	start = GraphemeAdvance(b, n)
	if start >= len(b) {
		return 0, 0, false
	}
	return start, start + GraphemeNext(b[start:]), true
}

// GraphemeWidth returns the display width of b counted per grapheme
// cluster, so combining sequences and emoji sequences occupy the width of
// their base character.
func GraphemeWidth(b []byte) int {
	total := 0
	state := -1
	for len(b) > 0 {
		var w int
		_, b, w, state = uniseg.FirstGraphemeCluster(b, state)
		total += w
	}
	return total
}

// GraphemeTruncate returns the byte length of the first n grapheme
// clusters.
func GraphemeTruncate(b []byte, n int) int {
	return GraphemeAdvance(b, n)
}

// GraphemeReverse reverses b in place by grapheme cluster, keeping each
// cluster's bytes in order.
func GraphemeReverse(b []byte) {
	if len(b) <= 1 {
		return
	}
	tmp := make([]byte, len(b))
	w := len(tmp)
	state := -1
	for rest := b; len(rest) > 0; {
		var cluster []byte
		cluster, rest, _, state = uniseg.FirstGraphemeCluster(rest, state)
		w -= len(cluster)
		copy(tmp[w:], cluster)
	}
	copy(b, tmp)
}
