package stringpool

import "github.com/hupe1980/datakit"

// DefaultInitialCapacity is the initial number of reverse index slots.
const DefaultInitialCapacity = 16

// Option configures a Pool.
type Option func(*options)

type options struct {
	datakit.Options
	initialCapacity int
}

func defaultOptions() options {
	return options{
		Options:         datakit.DefaultOptions(),
		initialCapacity: DefaultInitialCapacity,
	}
}

// WithInitialCapacity sets the number of reverse index slots allocated up
// front.
func WithInitialCapacity(n int) Option {
	return func(o *options) {
		if n > 1 {
			o.initialCapacity = n
		}
	}
}

// WithLogger sets the logger for reset and recycle events.
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
