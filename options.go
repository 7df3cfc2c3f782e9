package pixconv

import "log/slog"

// Option configures a Registry during creation.
//
// Example:
//
//	// Registry with the built-in conversions
//	r := pixconv.NewRegistry()
//
//	// Empty registry with a dedicated logger and two workers
//	r := pixconv.NewRegistry(pixconv.WithoutBuiltins(),
//	    pixconv.WithLogger(logger), pixconv.WithWorkers(2))
type Option func(*options)

// options holds optional configuration for Registry creation.
type options struct {
	logger    *slog.Logger
	builtins  bool
	workers   int
	chunkSize int
}

// DefaultChunkSize is the number of samples per parallel work item.
const DefaultChunkSize = 16384

// defaultOptions returns the default registry options.
func defaultOptions() options {
	return options{
		logger:    nil, // falls back to Logger()
		builtins:  true,
		workers:   0, // GOMAXPROCS
		chunkSize: DefaultChunkSize,
	}
}

// WithLogger sets the logger used by the Registry instead of the package
// logger. Passing nil restores the package logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithoutBuiltins creates an empty Registry. Conversions must then be added
// with Register.
func WithoutBuiltins() Option {
	return func(o *options) {
		o.builtins = false
	}
}

// WithWorkers sets the number of goroutines used by ConvertParallel.
// Zero or negative means GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithChunkSize sets the number of samples per parallel work item.
// Values below 1 keep DefaultChunkSize.
func WithChunkSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.chunkSize = n
		}
	}
}
