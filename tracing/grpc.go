package tracing

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

var _ Carrier = MetadataCarrier(nil)

// MetadataCarrier is a Carrier over gRPC metadata.
type MetadataCarrier metadata.MD

// ForeachKey implements opentracing.TextMapReader.
//
// Keys with multiple values are visited once per value, in order.
func (c MetadataCarrier) ForeachKey(handler func(key, val string) error) error {
	for key, values := range c {
		for _, value := range values {
			if err := handler(key, value); err != nil {
				return err
			}
		}
	}
	return nil
}

// Set implements opentracing.TextMapWriter.
func (c MetadataCarrier) Set(key, val string) {
	metadata.MD(c).Set(key, val)
}

// ExtractFromIncomingContext extracts the SpanContext from the incoming gRPC
// metadata in ctx.
//
// If codec is nil, DefaultW3CCodec() is used.
func ExtractFromIncomingContext(ctx context.Context, codec *W3CCodec) (SpanContext, bool) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return SpanContext{}, false
	}
	return orDefault(codec).Extract(ctx, MetadataCarrier(md))
}

// InjectToOutgoingContext returns a context with sc injected into its outgoing
// gRPC metadata.
//
// When the outgoing metadata has no tracestate,
// the incoming one is used as the base of the merge.
//
// If codec is nil, DefaultW3CCodec() is used.
func InjectToOutgoingContext(ctx context.Context, codec *W3CCodec, sc SpanContext) context.Context {
	out, _ := metadata.FromOutgoingContext(ctx)
	out = out.Copy()
	if len(out.Get(TraceStateKey)) == 0 {
		if in, ok := metadata.FromIncomingContext(ctx); ok {
			if state := in.Get(TraceStateKey); len(state) > 0 {
				out.Set(TraceStateKey, state...)
			}
		}
	}
	orDefault(codec).Inject(ctx, sc, MetadataCarrier(out))
	return metadata.NewOutgoingContext(ctx, out)
}

// UnaryServerInterceptor returns a grpc.UnaryServerInterceptor that extracts
// the SpanContext from incoming metadata and attaches it to the handler's
// context, to be retrieved by SpanContextFromContext.
//
// If codec is nil, DefaultW3CCodec() is used.
func UnaryServerInterceptor(codec *W3CCodec) grpc.UnaryServerInterceptor {
	codec = orDefault(codec)
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		if sc, ok := ExtractFromIncomingContext(ctx, codec); ok {
			ctx, _ = attach(ctx, sc)
		}
		return handler(ctx, req)
	}
}

// UnaryClientInterceptor returns a grpc.UnaryClientInterceptor that injects
// the SpanContext attached to the call's context into its outgoing metadata.
//
// If codec is nil, DefaultW3CCodec() is used.
func UnaryClientInterceptor(codec *W3CCodec) grpc.UnaryClientInterceptor {
	codec = orDefault(codec)
	return func(
		ctx context.Context,
		method string,
		req, reply interface{},
		cc *grpc.ClientConn,
		invoker grpc.UnaryInvoker,
		opts ...grpc.CallOption,
	) error {
		if sc, ok := SpanContextFromContext(ctx); ok && sc.IsValid() {
			ctx = InjectToOutgoingContext(ctx, codec, sc)
		}
		return invoker(ctx, method, req, reply, cc, opts...)
	}
}
