package intset

import (
	"math/rand/v2"

	"github.com/hupe1980/datakit"
	"github.com/hupe1980/datakit/u32set"
)

// Source supplies random numbers for Random and RandomDelete.
type Source = u32set.Source

// DefaultDegree is the branching degree of the bucket tree.
const DefaultDegree = 32

// Option configures a Set.
type Option func(*options)

type options struct {
	datakit.Options
	rand   Source
	degree int
}

func defaultOptions() options {
	return options{
		Options: datakit.DefaultOptions(),
		rand:    globalSource{},
		degree:  DefaultDegree,
	}
}

// WithLogger sets the logger for bucket lifecycle events.
func WithLogger(l *datakit.Logger) Option {
	return func(o *options) {
		o.SetLogger(l)
	}
}

// WithMetrics sets the metrics collector.
func WithMetrics(mc datakit.MetricsCollector) Option {
	return func(o *options) {
		o.SetMetrics(mc)
	}
}

// WithRandSource sets the random source used by Random and RandomDelete.
// The default draws from math/rand/v2's global generator.
func WithRandSource(src Source) Option {
	return func(o *options) {
		if src == nil {
			src = globalSource{}
		}
		o.rand = src
	}
}

// WithDegree sets the branching degree of the bucket tree.
func WithDegree(d int) Option {
	return func(o *options) {
		if d >= 2 {
			o.degree = d
		}
	}
}

type globalSource struct{}

func (globalSource) Uint64() uint64 { return rand.Uint64() }
