package pebbleutil

import (
	"context"

	"github.com/cockroachdb/pebble"
	"github.com/sirupsen/logrus"
)

// NewLogger returns a pebble logger writing to l.
// A nil l disables logging.
func NewLogger(l logrus.FieldLogger) pebble.Logger {
	if l == nil {
		return NoopLoggerAndTracer{}
	}
	return &Logger{l: l.WithField("component", "pebble")}
}

// Logger forwards pebble logs and trace events to logrus.
// Trace events are logged at debug level.
type Logger struct {
	l logrus.FieldLogger
}

// Infof implements LoggerAndTracer.
func (l *Logger) Infof(format string, args ...interface{}) { l.l.Infof(format, args...) }

// Errorf implements LoggerAndTracer.
func (l *Logger) Errorf(format string, args ...interface{}) { l.l.Errorf(format, args...) }

// Fatalf implements LoggerAndTracer.
func (l *Logger) Fatalf(format string, args ...interface{}) { l.l.Fatalf(format, args...) }

// Eventf implements LoggerAndTracer.
func (l *Logger) Eventf(ctx context.Context, format string, args ...interface{}) {
	l.l.Debugf(format, args...)
}

// IsTracingEnabled implements LoggerAndTracer.
func (l *Logger) IsTracingEnabled(ctx context.Context) bool {
	if ll, ok := l.l.(*logrus.Entry); ok {
		return ll.Logger.IsLevelEnabled(logrus.DebugLevel)
	}
	return false
}

// NoopLoggerAndTracer does no logging and tracing.
type NoopLoggerAndTracer struct{}

// Infof implements LoggerAndTracer.
func (l NoopLoggerAndTracer) Infof(format string, args ...interface{}) {}

// Errorf implements LoggerAndTracer.
func (l NoopLoggerAndTracer) Errorf(format string, args ...interface{}) {}

// Fatalf implements LoggerAndTracer.
func (l NoopLoggerAndTracer) Fatalf(format string, args ...interface{}) {}

// Eventf implements LoggerAndTracer.
func (l NoopLoggerAndTracer) Eventf(ctx context.Context, format string, args ...interface{}) {
}

// IsTracingEnabled implements LoggerAndTracer.
func (l NoopLoggerAndTracer) IsTracingEnabled(ctx context.Context) bool {
	return false
}
