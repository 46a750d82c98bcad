package log

import (
	"context"
	"testing"

	"go.uber.org/zap/zapcore"
)

// Wrapper defines a simple interface to wrap logging functions.
//
// As principles, library code should:
//
// 1. Not do any logging.
// The library code should communicate errors back to the caller,
// and let the caller decide how to deal with them
// (log them, ignore them, panic, etc.)
//
// 2. In some rare cases, 1 is not possible,
// for example the error might happen in a background goroutine.
// In those cases some logging is necessary,
// but those should be kept at minimal,
// and the library code should provide control to the caller on how to do
// those logging.
//
// Propagation codecs are such a case: a malformed header must never fail the
// request, so the only way to surface it is through a Wrapper.
type Wrapper func(ctx context.Context, msg string)

// Log is the nil-safe way of calling a log.Wrapper.
//
// If w is nil it does nothing.
func (w Wrapper) Log(ctx context.Context, msg string) {
	if w != nil {
		w(ctx, msg)
	}
}

// NopWrapper is a Wrapper implementation that does nothing.
func NopWrapper(_ context.Context, _ string) {}

// ZapWrapper wraps zap log package into a Wrapper.
//
// It uses the logger attached to the context object by Attach when there is
// one, and the global logger otherwise.
// Levels ToZapLevel doesn't know (see Level.Valid) log nothing.
func ZapWrapper(logLevel Level) Wrapper {
	level := logLevel.ToZapLevel()
	return func(ctx context.Context, msg string) {
		logger := C(ctx)
		switch level {
		case zapcore.DebugLevel:
			logger.Debug(msg)
		case zapcore.InfoLevel:
			logger.Info(msg)
		case zapcore.WarnLevel:
			logger.Warn(msg)
		case zapcore.ErrorLevel:
			logger.Error(msg)
		}
	}
}

// TestWrapper is a wrapper can be used in test codes.
//
// It fails the test when called.
func TestWrapper(tb testing.TB) Wrapper {
	return func(_ context.Context, msg string) {
		tb.Errorf("logger called with msg: %q", msg)
	}
}

// CountingWrapper returns a Wrapper that records every message it is called
// with into msgs, for tests that expect logging to happen.
func CountingWrapper(msgs *[]string) Wrapper {
	return func(_ context.Context, msg string) {
		*msgs = append(*msgs, msg)
	}
}
