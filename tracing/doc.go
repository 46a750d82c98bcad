// Package tracing provides W3C Trace Context propagation for spans, with a
// Jaeger vendor entry in tracestate.
//
// A W3CCodec reads the traceparent header (and the jaeger-debug-id fallback)
// out of a carrier into a SpanContext, and writes a SpanContext back as
// traceparent plus a merged tracestate:
//
//	sc, ok := codec.Extract(ctx, opentracing.HTTPHeadersCarrier(r.Header))
//	...
//	codec.Inject(ctx, sc, opentracing.HTTPHeadersCarrier(req.Header))
//
// Malformed or missing headers never fail a request,
// Extract simply reports that there is no context to continue from.
//
// HTTP, gRPC and thrift helpers wrap the codec for each transport,
// and Propagator exposes it through the opentracing Inject/Extract contract.
package tracing
