package u32set

// Option configures a Set.
type Option func(*options)

type options struct {
	capacity int
}

// WithCapacity preallocates room for n elements.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}
