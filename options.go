package datakit

// Options holds the configuration shared by every container. Container
// packages embed it in their own option structs.
type Options struct {
	Logger  *Logger
	Metrics MetricsCollector
}

// DefaultOptions returns Options with a discarding logger and no-op metrics.
func DefaultOptions() Options {
	return Options{
		Logger:  NoopLogger(),
		Metrics: NoopMetricsCollector{},
	}
}

// SetLogger sets the logger. A nil logger restores the no-op logger.
func (o *Options) SetLogger(l *Logger) {
	if l == nil {
		l = NoopLogger()
	}
	o.Logger = l
}

// SetMetrics sets the metrics collector. A nil collector restores the
// no-op collector.
func (o *Options) SetMetrics(mc MetricsCollector) {
	if mc == nil {
		mc = NoopMetricsCollector{}
	}
	o.Metrics = mc
}
