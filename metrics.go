package datakit

import "sync/atomic"

// MetricsCollector receives structural events from the containers.
// Implement this interface to integrate with monitoring systems.
//
// Collectors are called on the caller's goroutine and must not block.
type MetricsCollector interface {
	// RecordIntern is called after each intern. reused is true when the
	// string was already present.
	RecordIntern(reused bool)

	// RecordRelease is called after each successful release. freed is true
	// when the reference count reached zero.
	RecordRelease(freed bool)

	// RecordBucketCreate is called when a big-set bucket is created.
	RecordBucketCreate()

	// RecordBucketDelete is called when an emptied bucket is removed.
	RecordBucketDelete()

	// RecordIntersect is called after a set intersection with the name of
	// the kernel and the number of elements produced.
	RecordIntersect(kernel string, n int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordIntern(bool)            {}
func (NoopMetricsCollector) RecordRelease(bool)           {}
func (NoopMetricsCollector) RecordBucketCreate()          {}
func (NoopMetricsCollector) RecordBucketDelete()          {}
func (NoopMetricsCollector) RecordIntersect(string, int) {}

// BasicMetricsCollector provides simple in-memory counters.
type BasicMetricsCollector struct {
	InternCount      atomic.Int64
	InternReused     atomic.Int64
	ReleaseCount     atomic.Int64
	ReleaseFreed     atomic.Int64
	BucketCreates    atomic.Int64
	BucketDeletes    atomic.Int64
	IntersectCount   atomic.Int64
	IntersectResults atomic.Int64
}

// RecordIntern implements MetricsCollector.
func (b *BasicMetricsCollector) RecordIntern(reused bool) {
	b.InternCount.Add(1)
	if reused {
		b.InternReused.Add(1)
	}
}

// RecordRelease implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRelease(freed bool) {
	b.ReleaseCount.Add(1)
	if freed {
		b.ReleaseFreed.Add(1)
	}
}

// RecordBucketCreate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBucketCreate() {
	b.BucketCreates.Add(1)
}

// RecordBucketDelete implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBucketDelete() {
	b.BucketDeletes.Add(1)
}

// RecordIntersect implements MetricsCollector.
func (b *BasicMetricsCollector) RecordIntersect(_ string, n int) {
	b.IntersectCount.Add(1)
	b.IntersectResults.Add(int64(n))
}

// Stats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) Stats() BasicMetricsStats {
	return BasicMetricsStats{
		InternCount:      b.InternCount.Load(),
		InternReused:     b.InternReused.Load(),
		ReleaseCount:     b.ReleaseCount.Load(),
		ReleaseFreed:     b.ReleaseFreed.Load(),
		BucketCreates:    b.BucketCreates.Load(),
		BucketDeletes:    b.BucketDeletes.Load(),
		IntersectCount:   b.IntersectCount.Load(),
		IntersectResults: b.IntersectResults.Load(),
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector.
type BasicMetricsStats struct {
	InternCount      int64
	InternReused     int64
	ReleaseCount     int64
	ReleaseFreed     int64
	BucketCreates    int64
	BucketDeletes    int64
	IntersectCount   int64
	IntersectResults int64
}

// LiveBuckets returns created minus deleted buckets.
func (s BasicMetricsStats) LiveBuckets() int64 {
	return s.BucketCreates - s.BucketDeletes
}
