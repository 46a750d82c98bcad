package log

import (
	"context"

	"go.uber.org/zap"
)

type contextKey struct{}

// TraceIDKey is the field the trace id is logged under by loggers from
// Attach.
const TraceIDKey = "trace_id"

// AttachArgs are the fields pre-filled into the logger created by Attach.
//
// Zero values are not attached.
type AttachArgs struct {
	// TraceID in its 32 hex chars wire form.
	TraceID string

	AdditionalPairs map[string]interface{}
}

// Attach returns a context carrying a logger derived from C(ctx) with args
// added as fields.
//
// ZapWrapper logs through it, so messages about a request carry its trace id.
func Attach(ctx context.Context, args AttachArgs) context.Context {
	logger := C(ctx)
	if args.TraceID != "" {
		logger = logger.Desugar().With(zap.String(TraceIDKey, args.TraceID)).Sugar()
	}
	for k, v := range args.AdditionalPairs {
		logger = logger.With(k, v)
	}
	return context.WithValue(ctx, contextKey{}, logger)
}

// C returns the logger attached to ctx by Attach, or the global logger.
//
// It never returns nil.
func C(ctx context.Context) *zap.SugaredLogger {
	if logger, ok := ctx.Value(contextKey{}).(*zap.SugaredLogger); ok && logger != nil {
		return logger
	}
	return globalLogger
}
