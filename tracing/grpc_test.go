package tracing

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

func TestMetadataCarrier(t *testing.T) {
	md := metadata.Pairs(
		TraceParentKey, "first",
		TraceParentKey, "second",
	)
	values, found, err := lastValues(MetadataCarrier(md), TraceParentKey)
	if err != nil {
		t.Fatal(err)
	}
	if !found[0] || values[0] != "second" {
		t.Errorf("Expected the last value to win, got %q", values[0])
	}

	MetadataCarrier(md).Set(TraceParentKey, "third")
	if diff := cmp.Diff([]string{"third"}, md.Get(TraceParentKey)); diff != "" {
		t.Errorf("Set mismatch (-want +got):\n%s", diff)
	}
}

func TestGRPCInterceptors(t *testing.T) {
	codec := newTestCodec(t, Config{})
	server := UnaryServerInterceptor(codec)
	client := UnaryClientInterceptor(codec)

	var outgoing metadata.MD
	invoker := func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		outgoing, _ = metadata.FromOutgoingContext(ctx)
		return nil
	}

	var sc SpanContext
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		var ok bool
		sc, ok = SpanContextFromContext(ctx)
		if !ok {
			t.Fatal("Expected SpanContext in handler context")
		}
		return nil, client(ctx, "/test.Service/Method", req, nil, nil, invoker)
	}

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(
		TraceParentKey, testTraceParent,
		TraceStateKey, "jaeger=old,foo=bar",
	))
	if _, err := server(ctx, nil, &grpc.UnaryServerInfo{FullMethod: "/test.Service/Method"}, handler); err != nil {
		t.Fatal(err)
	}

	if sc.TraceID() != testTraceID || sc.ParentID() != testParentID || !sc.IsSampled() {
		t.Errorf("Unexpected SpanContext %v", sc)
	}
	want := metadata.Pairs(
		TraceParentKey, "00-"+testTraceID.Hex()+"-"+sc.SpanID().Hex()+"-01",
		TraceStateKey, "jaeger="+sc.ContextAsString()+",foo=bar",
	)
	if diff := cmp.Diff(want, outgoing); diff != "" {
		t.Errorf("Outgoing metadata mismatch (-want +got):\n%s", diff)
	}
}

func TestGRPCInterceptorsWithoutContext(t *testing.T) {
	server := UnaryServerInterceptor(nil)
	client := UnaryClientInterceptor(nil)

	invoker := func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		if md, ok := metadata.FromOutgoingContext(ctx); ok {
			t.Errorf("Expected no outgoing metadata, got %v", md)
		}
		return nil
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		if sc, ok := SpanContextFromContext(ctx); ok {
			t.Errorf("Expected no SpanContext, got %v", sc)
		}
		return nil, client(ctx, "/test.Service/Method", req, nil, nil, invoker)
	}
	if _, err := server(context.Background(), nil, &grpc.UnaryServerInfo{}, handler); err != nil {
		t.Fatal(err)
	}
}

func TestInjectToOutgoingContextKeepsExistingMetadata(t *testing.T) {
	ctx := metadata.AppendToOutgoingContext(context.Background(), "x-other", "value")
	sc := NewSpanContext(testTraceID, testParentID, 0, FlagSampled)
	ctx = InjectToOutgoingContext(ctx, nil, sc)

	md, _ := metadata.FromOutgoingContext(ctx)
	want := metadata.Pairs(
		"x-other", "value",
		TraceParentKey, testTraceParent,
		TraceStateKey, "jaeger="+sc.ContextAsString(),
	)
	if diff := cmp.Diff(want, md); diff != "" {
		t.Errorf("Outgoing metadata mismatch (-want +got):\n%s", diff)
	}
}
