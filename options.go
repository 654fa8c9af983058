package kohonen

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/hupe1980/kohonen/codec"
)

type options struct {
	source           Source
	codec            codec.Codec
	metricsCollector MetricsCollector
	logger           *Logger
}

func defaultOptions() options {
	return options{
		source:           rand.New(rand.NewSource(time.Now().UnixNano())),
		codec:            codec.Default,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
}

// Option configures a Session.
type Option func(*options)

// WithSource injects the pseudo-random source used for weight initialization
// and pattern sampling. Supply a seeded source for reproducible runs.
//
// If nil is passed, the default time-seeded source is kept.
func WithSource(src Source) Option {
	return func(o *options) {
		if src != nil {
			o.source = src
		}
	}
}

// WithSeed is shorthand for WithSource with a math/rand source seeded by seed.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.source = rand.New(rand.NewSource(seed))
	}
}

// WithCodec configures the codec used to encode snapshots.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &kohonen.BasicMetricsCollector{}
//	s := kohonen.New(kohonen.WithMetricsCollector(metrics))
//	// ... train and classify ...
//	stats := metrics.GetStats()
//	fmt.Printf("Trains: %d, Avg latency: %dns\n", stats.TrainCount, stats.TrainAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := kohonen.NewJSONLogger(slog.LevelInfo)
//	s := kohonen.New(kohonen.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}
