package tracing

import (
	"context"

	"github.com/apache/thrift/lib/go/thrift"
)

var _ Carrier = (*ThriftCarrier)(nil)

// ThriftCarrier is a Carrier over the THeader headers of a context object.
//
// It reads both the headers received by a thrift server and the ones
// already set to be written, and every Set adds the key to the write header
// list. Use Context to get the context object to make the thrift call with.
type ThriftCarrier struct {
	ctx context.Context
}

// NewThriftCarrier creates a ThriftCarrier over ctx.
func NewThriftCarrier(ctx context.Context) *ThriftCarrier {
	return &ThriftCarrier{ctx: ctx}
}

// Context returns the context object with all the headers set so far.
func (c *ThriftCarrier) Context() context.Context {
	return c.ctx
}

// ForeachKey implements opentracing.TextMapReader.
//
// Received headers are visited first, then the ones to be written.
func (c *ThriftCarrier) ForeachKey(handler func(key, val string) error) error {
	seen := make(map[string]bool)
	for _, keys := range [][]string{
		thrift.GetReadHeaderList(c.ctx),
		thrift.GetWriteHeaderList(c.ctx),
	} {
		for _, key := range keys {
			if seen[key] {
				continue
			}
			seen[key] = true
			value, ok := thrift.GetHeader(c.ctx, key)
			if !ok {
				continue
			}
			if err := handler(key, value); err != nil {
				return err
			}
		}
	}
	return nil
}

// Set implements opentracing.TextMapWriter.
func (c *ThriftCarrier) Set(key, val string) {
	c.ctx = thrift.SetHeader(c.ctx, key, val)
	headers := thrift.GetWriteHeaderList(c.ctx)
	for _, h := range headers {
		if h == key {
			return
		}
	}
	written := make([]string, 0, len(headers)+1)
	written = append(written, headers...)
	c.ctx = thrift.SetWriteHeaderList(c.ctx, append(written, key))
}

// ExtractFromThriftContext extracts the SpanContext from the thrift headers
// of ctx.
//
// If codec is nil, DefaultW3CCodec() is used.
func ExtractFromThriftContext(ctx context.Context, codec *W3CCodec) (SpanContext, bool) {
	return orDefault(codec).Extract(ctx, NewThriftCarrier(ctx))
}

// InjectThriftContext returns a context object with sc injected as thrift
// headers, to be used in thrift client calls.
//
// The tracestate received by the thrift server handling ctx, if any,
// is used as the base of the merge.
//
// If codec is nil, DefaultW3CCodec() is used.
func InjectThriftContext(ctx context.Context, codec *W3CCodec, sc SpanContext) context.Context {
	carrier := NewThriftCarrier(ctx)
	orDefault(codec).Inject(ctx, sc, carrier)
	return carrier.Context()
}

// StartFromThriftContext extracts the SpanContext from the thrift headers of
// ctx and attaches it to the returned context object,
// to be retrieved by SpanContextFromContext.
//
// It's meant to be called at the beginning of thrift handlers.
func StartFromThriftContext(ctx context.Context, codec *W3CCodec) context.Context {
	if sc, ok := ExtractFromThriftContext(ctx, codec); ok {
		ctx, _ = attach(ctx, sc)
	}
	return ctx
}
