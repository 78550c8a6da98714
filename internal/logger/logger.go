// Package logger provides logging abstractions for dbexec.
// It supports standard library log/slog, go.uber.org/zap, and allows custom
// logger implementations.
package logger

import (
	"context"
	"log/slog"

	"go.uber.org/zap"
)

// Logger defines the logging interface for dbexec.
// Implementations should handle structured logging with key-value pairs.
type Logger interface {
	// Debug logs debug-level messages with optional key-value pairs
	Debug(msg string, args ...any)
	// Info logs informational messages with optional key-value pairs
	Info(msg string, args ...any)
	// Warn logs warning messages with optional key-value pairs
	Warn(msg string, args ...any)
	// Error logs error messages with optional key-value pairs
	Error(msg string, args ...any)
	// DebugEnabled reports whether debug-level output would be emitted.
	// The executor checks this before formatting per-command debug messages.
	DebugEnabled() bool
}

// NoopLogger is a logger that does nothing (zero overhead when logging is disabled).
// This is the default logger used when no logger is configured.
type NoopLogger struct{}

// Debug does nothing.
func (n *NoopLogger) Debug(_ string, _ ...any) {}

// Info does nothing.
func (n *NoopLogger) Info(_ string, _ ...any) {}

// Warn does nothing.
func (n *NoopLogger) Warn(_ string, _ ...any) {}

// Error does nothing.
func (n *NoopLogger) Error(_ string, _ ...any) {}

// DebugEnabled reports false.
func (n *NoopLogger) DebugEnabled() bool { return false }

// SlogAdapter wraps log/slog.Logger to implement the Logger interface.
// This allows seamless integration with the standard library's structured logging.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new logger adapter wrapping an slog.Logger.
// The provided logger must not be nil.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Debug logs a debug-level message with structured key-value pairs.
func (a *SlogAdapter) Debug(msg string, args ...any) {
	a.logger.Debug(msg, args...)
}

// Info logs an info-level message with structured key-value pairs.
func (a *SlogAdapter) Info(msg string, args ...any) {
	a.logger.Info(msg, args...)
}

// Warn logs a warning-level message with structured key-value pairs.
func (a *SlogAdapter) Warn(msg string, args ...any) {
	a.logger.Warn(msg, args...)
}

// Error logs an error-level message with structured key-value pairs.
func (a *SlogAdapter) Error(msg string, args ...any) {
	a.logger.Error(msg, args...)
}

// DebugEnabled reports whether the wrapped slog.Logger emits debug records.
func (a *SlogAdapter) DebugEnabled() bool {
	return a.logger.Enabled(context.Background(), slog.LevelDebug)
}

// ZapAdapter wraps a zap.SugaredLogger to implement the Logger interface.
// The sugared form takes the same alternating key-value arguments as slog.
type ZapAdapter struct {
	logger *zap.SugaredLogger
}

// NewZapAdapter creates a new logger adapter wrapping a zap.Logger.
// The provided logger must not be nil.
func NewZapAdapter(logger *zap.Logger) *ZapAdapter {
	return &ZapAdapter{logger: logger.Sugar()}
}

// Debug logs a debug-level message with structured key-value pairs.
func (a *ZapAdapter) Debug(msg string, args ...any) {
	a.logger.Debugw(msg, args...)
}

// Info logs an info-level message with structured key-value pairs.
func (a *ZapAdapter) Info(msg string, args ...any) {
	a.logger.Infow(msg, args...)
}

// Warn logs a warning-level message with structured key-value pairs.
func (a *ZapAdapter) Warn(msg string, args ...any) {
	a.logger.Warnw(msg, args...)
}

// Error logs an error-level message with structured key-value pairs.
func (a *ZapAdapter) Error(msg string, args ...any) {
	a.logger.Errorw(msg, args...)
}

// DebugEnabled reports whether the wrapped zap logger emits debug entries.
func (a *ZapAdapter) DebugEnabled() bool {
	return a.logger.Desugar().Core().Enabled(zap.DebugLevel)
}
