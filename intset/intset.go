package intset

import (
	"context"
	"log/slog"
	"runtime"
	"unsafe"

	"github.com/google/btree"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/datakit/databox"
	"github.com/hupe1980/datakit/int128"
	"github.com/hupe1980/datakit/u32set"
)

// parallelCopyBuckets is the bucket count from which Copy clones buckets
// on multiple goroutines.
const parallelCopyBuckets = 256

type bucket struct {
	key int128.Int128
	set *u32set.Set
}

func lessBucket(a, b *bucket) bool {
	return a.key.Less(b.key)
}

// Set is an ordered set of 64- and 128-bit integers.
//
// Invariants: no bucket is empty, every offset is below Width, and count is
// the total number of elements across all buckets.
type Set struct {
	tree  *btree.BTreeG[*bucket]
	count uint64
	gen   uint64
	probe bucket
	opts  options
}

// New creates an empty set.
func New(optFns ...Option) *Set {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	opts.Logger = opts.Logger.WithComponent("intset")
	return &Set{
		tree: btree.NewG(opts.degree, lessBucket),
		opts: opts,
	}
}

// Free releases every bucket. The set remains usable and empty.
func (s *Set) Free() {
	if s == nil || s.tree == nil {
		return
	}
	s.tree.Ascend(func(b *bucket) bool {
		s.opts.Metrics.RecordBucketDelete()
		b.set.Clear()
		return true
	})
	s.tree.Clear(false)
	s.count = 0
	s.gen++
}

func (s *Set) lookup(key int128.Int128) (*bucket, bool) {
	s.probe.key = key
	return s.tree.Get(&s.probe)
}

func (s *Set) insertBucket(b *bucket) {
	s.tree.ReplaceOrInsert(b)
	s.opts.Metrics.RecordBucketCreate()
	if ctx := context.Background(); s.opts.Logger.Enabled(ctx, slog.LevelDebug) {
		s.opts.Logger.LogBucketCreated(ctx, b.key.String())
	}
}

func (s *Set) deleteBucket(b *bucket) {
	s.tree.Delete(b)
	s.opts.Metrics.RecordBucketDelete()
	if ctx := context.Background(); s.opts.Logger.Enabled(ctx, slog.LevelDebug) {
		s.opts.Logger.LogBucketRemoved(ctx, b.key.String())
	}
}

func (s *Set) add(sp split) bool {
	b, ok := s.lookup(sp.key)
	if !ok {
		b = &bucket{key: sp.key, set: u32set.New()}
		s.insertBucket(b)
	}
	if !b.set.Add(sp.off) {
		return false
	}
	s.count++
	s.gen++
	return true
}

func (s *Set) remove(sp split) bool {
	b, ok := s.lookup(sp.key)
	if !ok || !b.set.Remove(sp.off) {
		return false
	}
	s.count--
	s.gen++
	if b.set.Count() == 0 {
		s.deleteBucket(b)
	}
	return true
}

func (s *Set) exists(sp split) bool {
	b, ok := s.lookup(sp.key)
	return ok && b.set.Exists(sp.off)
}

// Add inserts the integer in v and reports whether it was absent. A box
// that is not a 64- or 128-bit integer leaves the set unchanged and
// returns false.
func (s *Set) Add(v databox.Box) bool {
	sp, err := splitBox(v)
	if err != nil {
		s.opts.Logger.Warn("add rejected", "error", err)
		return false
	}
	return s.add(sp)
}

// Remove deletes the integer in v and reports whether it was present.
func (s *Set) Remove(v databox.Box) bool {
	sp, err := splitBox(v)
	if err != nil {
		return false
	}
	return s.remove(sp)
}

// Exists reports whether the integer in v is in the set.
func (s *Set) Exists(v databox.Box) bool {
	sp, err := splitBox(v)
	if err != nil {
		return false
	}
	return s.exists(sp)
}

// AddInt64 inserts v and reports whether it was absent.
func (s *Set) AddInt64(v int64) bool { return s.add(splitSigned(int128.I64(v))) }

// AddUint64 inserts v and reports whether it was absent.
func (s *Set) AddUint64(v uint64) bool { return s.add(splitUnsigned(int128.U64(v))) }

// AddInt128 inserts v and reports whether it was absent.
func (s *Set) AddInt128(v int128.Int128) bool { return s.add(splitSigned(v)) }

// AddUint128 inserts v and reports whether it was absent.
func (s *Set) AddUint128(v int128.Uint128) bool { return s.add(splitUnsigned(v)) }

// RemoveInt64 deletes v and reports whether it was present.
func (s *Set) RemoveInt64(v int64) bool { return s.remove(splitSigned(int128.I64(v))) }

// ExistsInt64 reports whether v is in the set.
func (s *Set) ExistsInt64(v int64) bool { return s.exists(splitSigned(int128.I64(v))) }

// ExistsUint64 reports whether v is in the set.
func (s *Set) ExistsUint64(v uint64) bool { return s.exists(splitUnsigned(int128.U64(v))) }

// CountElements returns the number of integers in the set.
func (s *Set) CountElements() uint64 {
	return s.count
}

// CountBuckets returns the number of non-empty buckets.
func (s *Set) CountBuckets() int {
	return s.tree.Len()
}

// Bucket returns the offsets stored under key, or nil when the bucket is
// absent. The returned set is owned by s and must not be modified.
func (s *Set) Bucket(key int128.Int128) *u32set.Set {
	if b, ok := s.lookup(key); ok {
		return b.set
	}
	return nil
}

// Bytes returns the heap bytes owned by the set, an estimate for the tree
// nodes included.
func (s *Set) Bytes() int {
	total := int(unsafe.Sizeof(*s))
	s.tree.Ascend(func(b *bucket) bool {
		total += int(unsafe.Sizeof(*b)) + int(unsafe.Sizeof(b)) + b.set.Bytes()
		return true
	})
	return total
}

// buckets returns the buckets in key order.
func (s *Set) buckets() []*bucket {
	out := make([]*bucket, 0, s.tree.Len())
	s.tree.Ascend(func(b *bucket) bool {
		out = append(out, b)
		return true
	})
	return out
}

// Copy returns a deep copy sharing no storage with s.
func (s *Set) Copy() *Set {
	c, _ := s.CopyContext(context.Background())
	return c
}

// CopyContext is Copy with cancellation. Large sets clone their buckets
// concurrently.
func (s *Set) CopyContext(ctx context.Context) (*Set, error) {
	src := s.buckets()
	dst := make([]*bucket, len(src))

	if len(src) < parallelCopyBuckets {
		for i, b := range src {
			dst[i] = &bucket{key: b.key, set: b.set.Copy()}
		}
	} else {
		workers := runtime.GOMAXPROCS(0)
		chunk := (len(src) + workers - 1) / workers
		g, gctx := errgroup.WithContext(ctx)
		for lo := 0; lo < len(src); lo += chunk {
			hi := min(lo+chunk, len(src))
			g.Go(func() error {
				for i := lo; i < hi; i++ {
					if err := gctx.Err(); err != nil {
						return err
					}
					dst[i] = &bucket{key: src[i].key, set: src[i].set.Copy()}
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	c := &Set{
		tree:  btree.NewG(s.opts.degree, lessBucket),
		count: s.count,
		opts:  s.opts,
	}
	for _, b := range dst {
		c.tree.ReplaceOrInsert(b)
		c.opts.Metrics.RecordBucketCreate()
	}
	return c, nil
}

// Equal reports whether a and b hold the same integers.
func Equal(a, b *Set) bool {
	if a == b {
		return true
	}
	if a.count != b.count || a.tree.Len() != b.tree.Len() {
		return false
	}
	bb := b.buckets()
	i := 0
	equal := true
	a.tree.Ascend(func(ba *bucket) bool {
		if ba.key != bb[i].key || !ba.set.Equal(bb[i].set) {
			equal = false
			return false
		}
		i++
		return true
	})
	return equal
}

// Subset reports whether every integer of a is also in b.
func Subset(a, b *Set) bool {
	if a == b {
		return true
	}
	if a.count > b.count {
		return false
	}
	subset := true
	a.tree.Ascend(func(ba *bucket) bool {
		bb, ok := b.lookup(ba.key)
		if !ok || !ba.set.Subset(bb.set) {
			subset = false
			return false
		}
		return true
	})
	return subset
}

// Intersect replaces the contents of result with a ∩ b and returns the
// number of integers in it. result may alias a or b.
func Intersect(a, b, result *Set) uint64 {
	as, bs := a.buckets(), b.buckets()
	out := make([]*bucket, 0, min(len(as), len(bs)))
	var total uint64

	i, j := 0, 0
	for i < len(as) && j < len(bs) {
		switch c := as[i].key.Cmp(bs[j].key); {
		case c < 0:
			i++
		case c > 0:
			j++
		default:
			set := u32set.Intersect(as[i].set, bs[j].set)
			result.opts.Metrics.RecordIntersect(u32set.Kernel(as[i].set, bs[j].set), set.Count())
			if set.Count() > 0 {
				set.Shrink()
				out = append(out, &bucket{key: as[i].key, set: set})
				total += uint64(set.Count())
			}
			i++
			j++
		}
	}

	result.Free()
	for _, bk := range out {
		result.insertBucket(bk)
	}
	result.count = total
	return total
}

// MergeInto adds every integer of b to a and returns how many were newly
// inserted. Buckets missing from a receive a copy of b's bucket.
func MergeInto(a, b *Set) uint64 {
	if a == b {
		return 0
	}
	var added uint64
	b.tree.Ascend(func(bb *bucket) bool {
		ba, ok := a.lookup(bb.key)
		if !ok {
			a.insertBucket(&bucket{key: bb.key, set: bb.set.Copy()})
			added += uint64(bb.set.Count())
			return true
		}
		added += uint64(ba.set.Merge(bb.set))
		return true
	})
	if added > 0 {
		a.count += added
		a.gen++
	}
	return added
}

// pick returns the bucket and offset position of the element with rank idx
// in bucket storage order.
func (s *Set) pick(idx uint64) (*bucket, int) {
	var (
		found *bucket
		pos   int
		seen  uint64
	)
	s.tree.Ascend(func(b *bucket) bool {
		n := uint64(b.set.Count())
		if idx < seen+n {
			found, pos = b, int(idx-seen)
			return false
		}
		seen += n
		return true
	})
	return found, pos
}

// Random returns an element chosen uniformly over all elements, not over
// buckets.
func (s *Set) Random() (databox.Box, bool) {
	if s.count == 0 {
		return databox.NewVoid(), false
	}
	b, pos := s.pick(s.opts.rand.Uint64() % s.count)
	off, _ := b.set.Get(pos)
	return Compose(b.key, off), true
}

// RandomDelete removes and returns an element chosen as by Random.
func (s *Set) RandomDelete() (databox.Box, bool) {
	if s.count == 0 {
		return databox.NewVoid(), false
	}
	b, pos := s.pick(s.opts.rand.Uint64() % s.count)
	off, _ := b.set.Get(pos)
	v := Compose(b.key, off)
	s.remove(split{key: b.key, off: off})
	return v, true
}
