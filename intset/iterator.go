package intset

import (
	"iter"

	"github.com/hupe1980/datakit"
	"github.com/hupe1980/datakit/databox"
	"github.com/hupe1980/datakit/int128"
	"github.com/hupe1980/datakit/u32set"
)

// Iterator walks a Set in ascending order.
//
// Any mutation of the set invalidates the iterator: the next call returns
// false and Err reports datakit.ErrIteratorInvalidated.
type Iterator struct {
	s       *Set
	gen     uint64
	cur     *bucket
	started bool
	vals    []uint32
	pos     int
	err     error
}

// Iterator returns an iterator positioned before the smallest element.
func (s *Set) Iterator() *Iterator {
	return &Iterator{s: s, gen: s.gen}
}

// Err returns the error that stopped iteration, if any.
func (it *Iterator) Err() error {
	return it.err
}

func (it *Iterator) check() bool {
	if it.err != nil {
		return false
	}
	if it.gen != it.s.gen {
		it.err = datakit.ErrIteratorInvalidated
		return false
	}
	return true
}

// advance moves to the bucket after the current one.
func (it *Iterator) advance() bool {
	var next *bucket
	switch {
	case !it.started:
		it.started = true
		next, _ = it.s.tree.Min()
	case it.cur != nil:
		it.s.tree.AscendGreaterOrEqual(it.cur, func(b *bucket) bool {
			if b.key == it.cur.key {
				return true
			}
			next = b
			return false
		})
	}
	it.cur = next
	if next == nil {
		it.vals = nil
		return false
	}
	it.vals = next.set.Values()
	it.pos = 0
	return true
}

// NextBox returns the next integer as a box.
func (it *Iterator) NextBox() (databox.Box, bool) {
	if !it.check() {
		return databox.NewVoid(), false
	}
	for it.pos >= len(it.vals) {
		if !it.advance() {
			return databox.NewVoid(), false
		}
	}
	i := it.pos
	if it.cur.key.IsNeg() {
		i = len(it.vals) - 1 - it.pos
	}
	it.pos++
	return Compose(it.cur.key, it.vals[i]), true
}

// NextBucket skips the rest of the current bucket and returns the next
// bucket key with its offsets. The returned set is owned by the Set and
// must not be modified.
func (it *Iterator) NextBucket() (databox.Box, *u32set.Set, bool) {
	if !it.check() {
		return databox.NewVoid(), nil, false
	}
	if !it.advance() {
		return databox.NewVoid(), nil, false
	}
	it.pos = len(it.vals)
	return keyBox(it.cur.key), it.cur.set, true
}

// All returns an iterator over the integers in ascending order.
func (s *Set) All() iter.Seq[databox.Box] {
	return func(yield func(databox.Box) bool) {
		it := s.Iterator()
		for v, ok := it.NextBox(); ok; v, ok = it.NextBox() {
			if !yield(v) {
				return
			}
		}
	}
}

// Buckets returns an iterator over bucket keys and their offset sets in key
// order.
func (s *Set) Buckets() iter.Seq2[int128.Int128, *u32set.Set] {
	return func(yield func(int128.Int128, *u32set.Set) bool) {
		s.tree.Ascend(func(b *bucket) bool {
			return yield(b.key, b.set)
		})
	}
}
