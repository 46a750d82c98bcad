package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var globalLogger = zap.NewNop().Sugar()

// Level is a log level in its configuration form,
// as in the logLevel field of tracing.Config.
type Level string

// Supported Level values.
const (
	NopLevel   Level = "nop"
	DebugLevel Level = "debug"
	InfoLevel  Level = "info"
	WarnLevel  Level = "warn"
	ErrorLevel Level = "error"

	// ZapNopLevel is above every level zap logs at.
	ZapNopLevel zapcore.Level = zapcore.FatalLevel + 1
)

// ToZapLevel converts l into the zap level.
//
// Unknown values (including NopLevel) convert to ZapNopLevel.
func (l Level) ToZapLevel() zapcore.Level {
	switch l {
	case DebugLevel:
		return zapcore.DebugLevel
	case InfoLevel:
		return zapcore.InfoLevel
	case WarnLevel:
		return zapcore.WarnLevel
	case ErrorLevel:
		return zapcore.ErrorLevel
	}
	return ZapNopLevel
}

// Valid reports whether l is one of the supported Level values.
func (l Level) Valid() bool {
	switch l {
	case NopLevel, DebugLevel, InfoLevel, WarnLevel, ErrorLevel:
		return true
	}
	return false
}

// JSONConfig returns the zap configuration InitLogger uses at level.
func JSONConfig(level Level) zap.Config {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level.ToZapLevel())
	cfg.Encoding = "json"
	cfg.EncoderConfig.MessageKey = "message"
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	return cfg
}

// InitLogger replaces the global logger with a JSON one logging at level.
//
// NopLevel and empty level disable logging.
func InitLogger(level Level) error {
	if level == "" || level == NopLevel {
		globalLogger = zap.NewNop().Sugar()
		return nil
	}
	return InitLoggerWithConfig(JSONConfig(level))
}

// InitLoggerWithConfig replaces the global logger with one built from cfg.
func InitLoggerWithConfig(cfg zap.Config) error {
	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return err
	}
	globalLogger = l.Sugar()
	return nil
}

// Debugf logs a templated message at debug level.
func Debugf(template string, args ...interface{}) {
	globalLogger.Debugf(template, args...)
}

// Sync flushes the global logger.
func Sync() error {
	return globalLogger.Sync()
}

// With returns the global logger with args added as context.
func With(args ...interface{}) *zap.SugaredLogger {
	return globalLogger.With(args...)
}
