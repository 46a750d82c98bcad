package tracing

import (
	"context"

	"github.com/reddit/tracecontext.go/log"
)

type contextKey struct{}

// ContextWithSpanContext attaches sc to ctx.
func ContextWithSpanContext(ctx context.Context, sc SpanContext) context.Context {
	return context.WithValue(ctx, contextKey{}, sc)
}

// SpanContextFromContext returns the SpanContext attached to ctx by
// ContextWithSpanContext.
func SpanContextFromContext(ctx context.Context) (SpanContext, bool) {
	sc, ok := ctx.Value(contextKey{}).(SpanContext)
	return sc, ok
}

type traceStateKey struct{}

// contextWithTraceState remembers the incoming tracestate so that outgoing
// requests made with ctx can forward the foreign members.
func contextWithTraceState(ctx context.Context, value string) context.Context {
	return context.WithValue(ctx, traceStateKey{}, value)
}

func traceStateFromContext(ctx context.Context) (string, bool) {
	value, ok := ctx.Value(traceStateKey{}).(string)
	return value, ok
}

// attach attaches sc (made a real trace first, see SpanContext.EnsureTrace)
// to ctx, together with a logger carrying its trace id.
func attach(ctx context.Context, sc SpanContext) (context.Context, SpanContext) {
	sc = sc.EnsureTrace()
	ctx = ContextWithSpanContext(ctx, sc)
	ctx = log.Attach(ctx, log.AttachArgs{TraceID: sc.TraceID().Hex()})
	return ctx, sc
}

func orDefault(c *W3CCodec) *W3CCodec {
	if c != nil {
		return c
	}
	return DefaultW3CCodec()
}
