package tracing

import (
	"net/http"

	opentracing "github.com/opentracing/opentracing-go"
)

// ExtractFromHTTPRequest extracts the SpanContext from the headers of an
// incoming request.
//
// If codec is nil, DefaultW3CCodec() is used.
func ExtractFromHTTPRequest(codec *W3CCodec, r *http.Request) (SpanContext, bool) {
	return orDefault(codec).Extract(r.Context(), opentracing.HTTPHeadersCarrier(r.Header))
}

// HTTPServerMiddleware returns a middleware that extracts the SpanContext from
// incoming requests and attaches it to the request context,
// to be retrieved by SpanContextFromContext.
//
// A debug-only context is turned into a new sampled and debug trace first.
// Requests without a usable context are passed through unchanged.
// The incoming tracestate, if any, is remembered so InjectHTTPRequest can
// forward it.
//
// If codec is nil, DefaultW3CCodec() is used.
func HTTPServerMiddleware(codec *W3CCodec) func(http.Handler) http.Handler {
	codec = orDefault(codec)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			carrier := opentracing.HTTPHeadersCarrier(r.Header)
			sc, ok := codec.Extract(r.Context(), carrier)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}
			ctx, _ := attach(r.Context(), sc)
			if state, found, err := lookup(carrier, TraceStateKey); err == nil && found {
				ctx = contextWithTraceState(ctx, state)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// InjectHTTPRequest injects the SpanContext attached to the request's context
// into its headers, for an outgoing call.
//
// It returns false and leaves req untouched when there's no valid SpanContext
// in the context.
//
// If codec is nil, DefaultW3CCodec() is used.
func InjectHTTPRequest(codec *W3CCodec, req *http.Request) bool {
	ctx := req.Context()
	sc, ok := SpanContextFromContext(ctx)
	if !ok || !sc.IsValid() {
		return false
	}
	if req.Header == nil {
		req.Header = make(http.Header)
	}
	if state, ok := traceStateFromContext(ctx); ok && req.Header.Get(TraceStateKey) == "" {
		req.Header.Set(TraceStateKey, state)
	}
	orDefault(codec).Inject(ctx, sc, opentracing.HTTPHeadersCarrier(req.Header))
	return true
}
