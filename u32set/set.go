package u32set

import (
	"iter"
	"slices"
	"unsafe"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/datakit/internal/mem"
	"github.com/hupe1980/datakit/internal/simd"
)

// Source supplies random numbers. *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	Uint64() uint64
}

// Set is a sorted set of distinct uint32 values.
//
// Invariant: vals[i] < vals[i+1] for every valid i.
type Set struct {
	vals []uint32
}

// New creates an empty set.
func New(optFns ...Option) *Set {
	var o options
	for _, fn := range optFns {
		fn(&o)
	}
	s := &Set{}
	if o.capacity > 0 {
		s.vals = mem.AllocAlignedUint32(o.capacity)[:0]
	}
	return s
}

// FromSlice creates a set holding the distinct values of vals. vals is not
// retained.
func FromSlice(vals []uint32) *Set {
	s := &Set{}
	if len(vals) == 0 {
		return s
	}
	s.vals = mem.AllocAlignedUint32(len(vals))
	copy(s.vals, vals)
	slices.Sort(s.vals)
	s.vals = slices.Compact(s.vals)
	return s
}

// search returns the position of x and whether it is present. When absent
// the position is where x would be inserted.
func (s *Set) search(x uint32) (int, bool) {
	n := len(s.vals)
	if n == 0 {
		return 0, false
	}
	// Appends and prepends are the common case for monotonic inserts.
	if x > s.vals[n-1] {
		return n, false
	}
	if x < s.vals[0] {
		return 0, false
	}
	return slices.BinarySearch(s.vals, x)
}

// Add inserts x and reports whether it was absent.
func (s *Set) Add(x uint32) bool {
	pos, found := s.search(x)
	if found {
		return false
	}
	s.vals = mem.GrowUint32(s.vals, 1)
	s.vals = s.vals[:len(s.vals)+1]
	copy(s.vals[pos+1:], s.vals[pos:])
	s.vals[pos] = x
	return true
}

// Remove deletes x and reports whether it was present.
func (s *Set) Remove(x uint32) bool {
	pos, found := s.search(x)
	if !found {
		return false
	}
	s.removeAt(pos)
	return true
}

func (s *Set) removeAt(pos int) {
	copy(s.vals[pos:], s.vals[pos+1:])
	s.vals = s.vals[:len(s.vals)-1]
}

// Exists reports whether x is in the set.
func (s *Set) Exists(x uint32) bool {
	_, found := s.search(x)
	return found
}

// Count returns the number of elements.
func (s *Set) Count() int {
	return len(s.vals)
}

// Cap returns the number of elements the set can hold without growing.
func (s *Set) Cap() int {
	return cap(s.vals)
}

// Bytes returns the heap bytes owned by the set, header included.
func (s *Set) Bytes() int {
	return int(unsafe.Sizeof(*s)) + 4*cap(s.vals)
}

// Get returns the element at position i in ascending order.
func (s *Set) Get(i int) (uint32, bool) {
	if i < 0 || i >= len(s.vals) {
		return 0, false
	}
	return s.vals[i], true
}

// Values returns the elements in ascending order. The slice aliases the set
// and is valid until the next mutation.
func (s *Set) Values() []uint32 {
	return s.vals
}

// Min returns the smallest element.
func (s *Set) Min() (uint32, bool) {
	if len(s.vals) == 0 {
		return 0, false
	}
	return s.vals[0], true
}

// Max returns the largest element.
func (s *Set) Max() (uint32, bool) {
	if len(s.vals) == 0 {
		return 0, false
	}
	return s.vals[len(s.vals)-1], true
}

// Iterate calls fn for each element in ascending order until fn returns
// false.
func (s *Set) Iterate(fn func(uint32) bool) {
	for _, v := range s.vals {
		if !fn(v) {
			return
		}
	}
}

// All returns an iterator over the elements in ascending order.
func (s *Set) All() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		s.Iterate(yield)
	}
}

// Backward returns an iterator over the elements in descending order.
func (s *Set) Backward() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		for i := len(s.vals) - 1; i >= 0; i-- {
			if !yield(s.vals[i]) {
				return
			}
		}
	}
}

// Copy returns a deep copy with capacity trimmed to the element count.
func (s *Set) Copy() *Set {
	c := &Set{}
	if len(s.vals) > 0 {
		c.vals = mem.AllocAlignedUint32(len(s.vals))
		copy(c.vals, s.vals)
	}
	return c
}

// Shrink releases unused capacity.
func (s *Set) Shrink() {
	s.vals = mem.ShrinkUint32(s.vals)
}

// Clear removes every element and releases the storage.
func (s *Set) Clear() {
	s.vals = nil
}

// Equal reports whether s and other hold the same elements.
func (s *Set) Equal(other *Set) bool {
	return slices.Equal(s.vals, other.vals)
}

// Subset reports whether every element of s is in other.
func (s *Set) Subset(other *Set) bool {
	if len(s.vals) > len(other.vals) {
		return false
	}
	j := 0
	for _, v := range s.vals {
		for j < len(other.vals) && other.vals[j] < v {
			j++
		}
		if j == len(other.vals) || other.vals[j] != v {
			return false
		}
		j++
	}
	return true
}

// Merge adds every element of src to s and returns how many were newly
// inserted.
func (s *Set) Merge(src *Set) int {
	if len(src.vals) == 0 {
		return 0
	}
	if len(s.vals) == 0 {
		s.vals = mem.GrowUint32(s.vals[:0], len(src.vals))[:len(src.vals)]
		copy(s.vals, src.vals)
		return len(src.vals)
	}

	a, b := s.vals, src.vals
	out := mem.AllocAlignedUint32(len(a) + len(b))[:0]
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)

	added := len(out) - len(a)
	s.vals = out
	return added
}

// Intersect returns a new set holding the elements common to a and b.
func Intersect(a, b *Set) *Set {
	out := &Set{}
	IntersectInto(out, a, b)
	return out
}

// IntersectInto replaces the contents of dst with a ∩ b and returns the
// result size. dst may alias a or b.
func IntersectInto(dst, a, b *Set) int {
	n := min(len(a.vals), len(b.vals))
	if n == 0 {
		dst.vals = dst.vals[:0]
		return 0
	}

	buf := dst.vals
	if cap(buf) < n || dst == a || dst == b {
		buf = mem.AllocAlignedUint32(n)
	}
	k := simd.Intersect(a.vals, b.vals, buf[:n])
	dst.vals = buf[:k]
	return k
}

// Kernel names the intersection variant selected for a and b.
func Kernel(a, b *Set) string {
	return simd.KernelFor(len(a.vals), len(b.vals))
}

// Random returns a uniformly chosen element.
func (s *Set) Random(r Source) (uint32, bool) {
	if len(s.vals) == 0 {
		return 0, false
	}
	return s.vals[r.Uint64()%uint64(len(s.vals))], true
}

// RandomDelete removes and returns a uniformly chosen element.
func (s *Set) RandomDelete(r Source) (uint32, bool) {
	if len(s.vals) == 0 {
		return 0, false
	}
	pos := int(r.Uint64() % uint64(len(s.vals)))
	v := s.vals[pos]
	s.removeAt(pos)
	return v, true
}

// ToBitmap returns the set as a roaring bitmap.
func (s *Set) ToBitmap() *roaring.Bitmap {
	bm := roaring.New()
	bm.AddMany(s.vals)
	return bm
}

// FromBitmap creates a set from the values of bm.
func FromBitmap(bm *roaring.Bitmap) *Set {
	s := &Set{}
	if bm == nil || bm.IsEmpty() {
		return s
	}
	vals := bm.ToArray()
	s.vals = mem.AllocAlignedUint32(len(vals))
	copy(s.vals, vals)
	return s
}
