package anneal

import "log/slog"

// Logger defines methods for structured logging at wave granularity.
//
// Compatible with slog-style and zap.SugaredLogger-style loggers: every
// method accepts a message plus alternating key-value pairs.
type Logger interface {
	// Debug logs a message at DebugLevel with structured key-value fields.
	Debug(msg string, keysAndValues ...any)

	// Info logs a message at InfoLevel with structured key-value fields.
	Info(msg string, keysAndValues ...any)
}

// SlogLogger adapts a *slog.Logger to the Logger interface.
type SlogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger wraps logger; a nil argument wraps slog.Default().
func NewSlogLogger(logger *slog.Logger) *SlogLogger {
	if logger == nil {
		logger = slog.Default()
	}

	return &SlogLogger{logger: logger}
}

// Debug implements Logger.
func (l *SlogLogger) Debug(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

// Info implements Logger.
func (l *SlogLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Info(msg, keysAndValues...)
}

// nopLogger discards everything; used when ParallelParams.Logger is nil.
type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
