package ringq

import "log/slog"

// An Option configures a [Queue] created by [New].
type Option func(*options)

type options struct {
	alloc  Allocator
	logger *slog.Logger
}

func defaultOptions() options {
	return options{
		alloc:  HeapAllocator{},
		logger: slog.Default(),
	}
}

// WithAllocator makes the queue take its elements from a. A nil a
// selects [HeapAllocator].
func WithAllocator(a Allocator) Option {
	return func(o *options) {
		if a == nil {
			a = HeapAllocator{}
		}
		o.alloc = a
	}
}

// WithLogger sets the logger that the queue reports failed and
// rejected operations to. Nothing is logged at levels above debug.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = slog.Default()
		}
		o.logger = l
	}
}
