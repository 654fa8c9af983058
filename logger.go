package kohonen

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with map-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithNeurons adds a neurons (K) field to the logger.
func (l *Logger) WithNeurons(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("neurons", k),
	}
}

// WithDimension adds a dimension (D) field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// LogTrain logs a completed or rejected training call. Callers scope l with
// WithNeurons and WithDimension.
func (l *Logger) LogTrain(ctx context.Context, cfg TrainingConfig, stats TrainStats, err error) {
	if err != nil {
		l.ErrorContext(ctx, "train failed",
			"iterations", cfg.Iterations,
			"learning_rate", cfg.LearningRate,
			"mode", cfg.Mode.String(),
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "train completed",
		"iterations", stats.Iterations,
		"learning_rate", cfg.LearningRate,
		"mode", cfg.Mode.String(),
		"dead_neurons", stats.Dead(),
	)
}

// LogChunk logs chunked training progress.
func (l *Logger) LogChunk(ctx context.Context, done, total int) {
	l.DebugContext(ctx, "train progress",
		"done", done,
		"total", total,
	)
}

// LogClassify logs a classification.
func (l *Logger) LogClassify(ctx context.Context, winner int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "classify failed",
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "classify completed",
		"winner", winner,
	)
}
