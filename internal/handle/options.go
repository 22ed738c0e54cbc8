package handle

import "log/slog"

// Option configures a Table during creation.
//
// Example:
//
//	t := handle.New[vecmath.Vec2](
//	    handle.WithCapacity(1024),
//	    handle.WithLimit(1<<20),
//	)
type Option func(*options)

// options holds optional configuration for Table creation.
type options struct {
	capacity int
	limit    int
	logger   *slog.Logger
}

// defaultOptions returns the default table options.
func defaultOptions() options {
	return options{
		capacity: 64,
		limit:    0, // unlimited
		logger:   nil,
	}
}

// WithCapacity preallocates room for n slots.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.capacity = n
		}
	}
}

// WithLimit caps the number of live values. Insert fails with ErrTableFull
// once the cap is reached. Zero means unlimited.
func WithLimit(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.limit = n
		}
	}
}

// WithLogger sets a table-specific logger. By default the table logs
// through vecmath.Logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
