package u32set

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/datakit/testutil"
)

func requireSorted(t *testing.T, s *Set) {
	t.Helper()
	v := s.Values()
	for i := 1; i < len(v); i++ {
		require.Less(t, v[i-1], v[i], "not strictly ascending at %d", i)
	}
	require.LessOrEqual(t, s.Count(), s.Cap())
}

func TestAddRemoveExists(t *testing.T) {
	s := New()
	assert.Equal(t, 0, s.Count())

	assert.True(t, s.Add(5))
	assert.True(t, s.Add(1))
	assert.True(t, s.Add(9))
	assert.True(t, s.Add(3))
	assert.False(t, s.Add(5))
	assert.Equal(t, []uint32{1, 3, 5, 9}, s.Values())

	assert.True(t, s.Exists(3))
	assert.False(t, s.Exists(4))
	assert.False(t, s.Exists(0))
	assert.False(t, s.Exists(10))

	assert.True(t, s.Remove(3))
	assert.False(t, s.Remove(3))
	assert.False(t, s.Remove(100))
	assert.Equal(t, []uint32{1, 5, 9}, s.Values())
	requireSorted(t, s)
}

func TestBoundaryValues(t *testing.T) {
	s := New()
	assert.True(t, s.Add(math.MaxUint32))
	assert.True(t, s.Add(0))
	assert.True(t, s.Exists(math.MaxUint32))
	assert.True(t, s.Exists(0))

	lo, ok := s.Min()
	require.True(t, ok)
	assert.Equal(t, uint32(0), lo)
	hi, ok := s.Max()
	require.True(t, ok)
	assert.Equal(t, uint32(math.MaxUint32), hi)
}

func TestEmpty(t *testing.T) {
	s := New()
	_, ok := s.Min()
	assert.False(t, ok)
	_, ok = s.Max()
	assert.False(t, ok)
	_, ok = s.Get(0)
	assert.False(t, ok)
	_, ok = s.Random(rand.New(rand.NewPCG(1, 2)))
	assert.False(t, ok)
	_, ok = s.RandomDelete(rand.New(rand.NewPCG(1, 2)))
	assert.False(t, ok)
	assert.False(t, s.Remove(1))
	assert.True(t, s.Equal(New()))
	assert.True(t, s.Subset(New()))
}

func TestWithCapacity(t *testing.T) {
	s := New(WithCapacity(100))
	assert.Equal(t, 100, s.Cap())
	for i := uint32(0); i < 100; i++ {
		s.Add(i)
	}
	assert.Equal(t, 100, s.Cap())
	s.Add(100)
	assert.Greater(t, s.Cap(), 100)

	assert.Equal(t, 0, New(WithCapacity(-1)).Cap())
}

func TestGrowthAndShrink(t *testing.T) {
	s := New()
	for i := uint32(0); i < 1000; i++ {
		s.Add(999 - i)
	}
	requireSorted(t, s)
	assert.Equal(t, 1000, s.Count())
	assert.GreaterOrEqual(t, s.Cap(), 1000)

	before := s.Bytes()
	for i := uint32(0); i < 900; i++ {
		require.True(t, s.Remove(i))
	}
	s.Shrink()
	assert.Equal(t, 100, s.Cap())
	assert.Less(t, s.Bytes(), before)
	v, ok := s.Get(0)
	require.True(t, ok)
	assert.Equal(t, uint32(900), v)
}

func TestFromSlice(t *testing.T) {
	in := []uint32{7, 3, 3, 9, 1, 7}
	s := FromSlice(in)
	assert.Equal(t, []uint32{1, 3, 7, 9}, s.Values())
	assert.Equal(t, []uint32{7, 3, 3, 9, 1, 7}, in, "input must not be modified")

	assert.Equal(t, 0, FromSlice(nil).Count())
}

func TestMerge(t *testing.T) {
	a := FromSlice([]uint32{1, 3, 5, 7})
	b := FromSlice([]uint32{2, 3, 6, 7, 8})
	added := a.Merge(b)
	assert.Equal(t, 3, added)
	assert.Equal(t, []uint32{1, 2, 3, 5, 6, 7, 8}, a.Values())
	requireSorted(t, a)

	assert.Equal(t, 0, a.Merge(b))
	assert.Equal(t, 0, a.Merge(New()))
}

func TestMergeIntoEmptyEqualsSource(t *testing.T) {
	rng := testutil.NewRNG(7)
	b := FromSlice(rng.SortedUint32s(500, 1<<20))
	a := New()
	assert.Equal(t, b.Count(), a.Merge(b))
	assert.True(t, a.Equal(b))

	a.Add(1 << 21)
	assert.False(t, b.Exists(1<<21), "merge must copy, not share")
}

func TestMergeRandom(t *testing.T) {
	rng := testutil.NewRNG(11)
	for round := 0; round < 50; round++ {
		av := rng.SortedUint32s(rng.Intn(200), 1000)
		bv := rng.SortedUint32s(rng.Intn(200), 1000)
		a, b := FromSlice(av), FromSlice(bv)

		oracle := roaring.BitmapOf(av...)
		oracle.Or(roaring.BitmapOf(bv...))

		added := a.Merge(b)
		requireSorted(t, a)
		assert.Equal(t, int(oracle.GetCardinality())-len(av), added)
		assert.Equal(t, oracle.ToArray(), append([]uint32{}, a.Values()...))
	}
}

func TestSubsetEqual(t *testing.T) {
	a := FromSlice([]uint32{2, 4})
	b := FromSlice([]uint32{1, 2, 3, 4})

	assert.True(t, a.Subset(b))
	assert.False(t, b.Subset(a))
	assert.True(t, a.Subset(a))
	assert.False(t, FromSlice([]uint32{2, 5}).Subset(b))
	assert.False(t, FromSlice([]uint32{9}).Subset(b))

	assert.False(t, a.Equal(b))
	assert.True(t, b.Equal(b.Copy()))
}

func TestCopyIsIndependent(t *testing.T) {
	a := FromSlice([]uint32{1, 2, 3})
	c := a.Copy()
	c.Add(4)
	a.Remove(1)
	assert.Equal(t, []uint32{2, 3}, a.Values())
	assert.Equal(t, []uint32{1, 2, 3, 4}, c.Values())
	assert.Equal(t, 0, New().Copy().Count())
}

func TestIntersect(t *testing.T) {
	a := FromSlice([]uint32{1, 3, 5, 7, 9})
	b := FromSlice([]uint32{3, 4, 5, 9, 10})
	out := Intersect(a, b)
	assert.Equal(t, []uint32{3, 5, 9}, out.Values())

	assert.Equal(t, 0, Intersect(a, New()).Count())
	assert.Equal(t, "empty", Kernel(a, New()))
}

func TestIntersectIntoAliasing(t *testing.T) {
	a := FromSlice([]uint32{1, 2, 3, 4, 5, 6})
	b := FromSlice([]uint32{2, 4, 6, 8})

	n := IntersectInto(a, a, b)
	assert.Equal(t, 3, n)
	assert.Equal(t, []uint32{2, 4, 6}, a.Values())
	assert.Equal(t, []uint32{2, 4, 6, 8}, b.Values())

	c := FromSlice([]uint32{4, 6, 100})
	n = IntersectInto(b, c, b)
	assert.Equal(t, 2, n)
	assert.Equal(t, []uint32{4, 6}, b.Values())

	dst := FromSlice([]uint32{99, 100, 101, 102, 103})
	IntersectInto(dst, a, New())
	assert.Equal(t, 0, dst.Count())
}

// TestIntersectMatchesScalar checks every size regime against the classic
// two-pointer intersection and a roaring oracle.
func TestIntersectMatchesScalar(t *testing.T) {
	rng := testutil.NewRNG(42)
	shapes := []struct {
		name   string
		na, nb int
		limit  uint32
	}{
		{"balanced", 300, 300, 1000},
		{"v3 ratio", 20, 2000, 5000},
		{"gallop ratio", 3, 5000, 1 << 20},
		{"tiny", 1, 1, 2},
		{"disjoint-ish", 100, 100, 1 << 30},
	}
	for _, sh := range shapes {
		t.Run(sh.name, func(t *testing.T) {
			for round := 0; round < 20; round++ {
				av := rng.SortedUint32s(sh.na, sh.limit)
				bv := rng.SortedUint32s(sh.nb, sh.limit)
				a, b := FromSlice(av), FromSlice(bv)

				want := testutil.ScalarIntersect(av, bv)
				got := Intersect(a, b).Values()
				if len(want) == 0 {
					assert.Empty(t, got)
				} else {
					assert.Equal(t, want, got)
				}

				oracle := roaring.And(a.ToBitmap(), b.ToBitmap())
				assert.Equal(t, int(oracle.GetCardinality()), len(got))
				assert.NotEmpty(t, Kernel(a, b))
			}
		})
	}
}

func TestRandom(t *testing.T) {
	s := FromSlice([]uint32{10, 20, 30, 40})
	r := testutil.NewRNG(3)
	seen := map[uint32]bool{}
	for i := 0; i < 200; i++ {
		v, ok := s.Random(r)
		require.True(t, ok)
		require.True(t, s.Exists(v))
		seen[v] = true
	}
	assert.Len(t, seen, 4)

	for s.Count() > 0 {
		before := s.Count()
		v, ok := s.RandomDelete(r)
		require.True(t, ok)
		assert.False(t, s.Exists(v))
		assert.Equal(t, before-1, s.Count())
	}
}

func TestIterate(t *testing.T) {
	s := FromSlice([]uint32{1, 2, 3, 4})
	var got []uint32
	s.Iterate(func(v uint32) bool {
		got = append(got, v)
		return v < 2
	})
	assert.Equal(t, []uint32{1, 2}, got)

	got = got[:0]
	for v := range s.All() {
		got = append(got, v)
	}
	assert.Equal(t, []uint32{1, 2, 3, 4}, got)

	got = got[:0]
	for v := range s.Backward() {
		got = append(got, v)
		if v == 3 {
			break
		}
	}
	assert.Equal(t, []uint32{4, 3}, got)
}

func TestBitmapRoundTrip(t *testing.T) {
	rng := testutil.NewRNG(5)
	vals := rng.SortedUint32s(1000, math.MaxUint32)
	s := FromSlice(vals)

	bm := s.ToBitmap()
	assert.Equal(t, uint64(s.Count()), bm.GetCardinality())
	for _, v := range vals[:50] {
		assert.True(t, bm.Contains(v))
	}

	back := FromBitmap(bm)
	assert.True(t, s.Equal(back))
	assert.Equal(t, 0, FromBitmap(nil).Count())
	assert.Equal(t, 0, FromBitmap(roaring.New()).Count())
}

func TestClear(t *testing.T) {
	s := FromSlice([]uint32{1, 2})
	s.Clear()
	assert.Equal(t, 0, s.Count())
	assert.Equal(t, 0, s.Cap())
	assert.True(t, s.Add(1))
}

func BenchmarkAdd(b *testing.B) {
	rng := testutil.NewRNG(1)
	vals := make([]uint32, 4096)
	for i := range vals {
		vals[i] = rng.Uint32n(1 << 20)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := New()
		for _, v := range vals {
			s.Add(v)
		}
	}
}

func BenchmarkIntersect(b *testing.B) {
	rng := testutil.NewRNG(2)
	x := FromSlice(rng.SortedUint32s(1000, 1<<16))
	y := FromSlice(rng.SortedUint32s(20000, 1<<16))
	dst := New()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		IntersectInto(dst, x, y)
	}
}
