package tracing

import (
	"fmt"

	opentracing "github.com/opentracing/opentracing-go"
)

var _ opentracing.SpanContext = SpanContext{}

// Flags is the Jaeger flags byte of a SpanContext.
type Flags byte

// Flags values.
const (
	// FlagSampled marks the trace as to be recorded.
	FlagSampled Flags = 1

	// FlagDebug marks the trace as forced by a debug id.
	// It's never read from or written to traceparent.
	FlagDebug Flags = 2
)

// SpanContext is the propagated part of a span.
//
// It's an immutable value. The zero value is not valid.
type SpanContext struct {
	traceID  TraceID
	spanID   SpanID
	parentID SpanID
	flags    Flags
	debugID  string

	// hasDebugID is set for debug-only contexts, the debug id may be empty.
	hasDebugID bool
}

// NewSpanContext creates a SpanContext.
func NewSpanContext(traceID TraceID, spanID, parentID SpanID, flags Flags) SpanContext {
	return SpanContext{
		traceID:  traceID,
		spanID:   spanID,
		parentID: parentID,
		flags:    flags,
	}
}

// SpanContextWithDebugID creates a debug-only SpanContext,
// which carries nothing but debugID.
// debugID may be empty: the header being present is what matters.
//
// See SpanContext.EnsureTrace.
func SpanContextWithDebugID(debugID string) SpanContext {
	return SpanContext{debugID: debugID, hasDebugID: true}
}

// TraceID returns the trace id.
func (sc SpanContext) TraceID() TraceID {
	return sc.traceID
}

// SpanID returns the id of the span this context belongs to.
func (sc SpanContext) SpanID() SpanID {
	return sc.spanID
}

// ParentID returns the id of the remote parent span, 0 for root spans.
func (sc SpanContext) ParentID() SpanID {
	return sc.parentID
}

// Flags returns the flags byte.
func (sc SpanContext) Flags() Flags {
	return sc.flags
}

// DebugID returns the debug id, if any.
func (sc SpanContext) DebugID() string {
	return sc.debugID
}

// IsSampled reports whether FlagSampled is set.
func (sc SpanContext) IsSampled() bool {
	return sc.flags&FlagSampled != 0
}

// IsDebug reports whether FlagDebug is set.
func (sc SpanContext) IsDebug() bool {
	return sc.flags&FlagDebug != 0
}

// IsValid reports whether sc has both a trace id and a span id,
// which is required for injection.
func (sc SpanContext) IsValid() bool {
	return sc.traceID.IsValid() && sc.spanID != 0
}

// IsDebugIDContainerOnly reports whether sc was created by
// SpanContextWithDebugID and carries no trace.
func (sc SpanContext) IsDebugIDContainerOnly() bool {
	return !sc.traceID.IsValid() && sc.hasDebugID
}

// EnsureTrace returns sc itself unless it's a debug-only container,
// in which case it returns a new root context that keeps the debug id and is
// both sampled and debug.
func (sc SpanContext) EnsureTrace() SpanContext {
	if !sc.IsDebugIDContainerOnly() {
		return sc
	}
	root := NewSpanContext(NewTraceID(), NewSpanID(), 0, FlagSampled|FlagDebug)
	root.debugID = sc.debugID
	return root
}

// ContextAsString returns the Jaeger text form of sc:
//
//	{trace-id}:{span-id}:{parent-id}:{flags}
//
// all in compact hex. It's the value of our tracestate entry.
func (sc SpanContext) ContextAsString() string {
	return fmt.Sprintf("%s:%s:%s:%x", sc.traceID, sc.spanID, sc.parentID, byte(sc.flags))
}

// String implements fmt.Stringer.
func (sc SpanContext) String() string {
	return sc.ContextAsString()
}

// ForeachBaggageItem implements opentracing.SpanContext.
//
// We don't support any extra baggage items, so it's a noop.
func (sc SpanContext) ForeachBaggageItem(handler func(k, v string) bool) {}
