package tracing

import (
	"errors"
	"net/http"
	"testing"

	opentracing "github.com/opentracing/opentracing-go"

	"github.com/reddit/tracecontext.go/log"
)

var _ interface {
	Inject(opentracing.SpanContext, interface{}, interface{}) error
	Extract(interface{}, interface{}) (opentracing.SpanContext, error)
} = Propagator{}

func TestPropagatorInject(t *testing.T) {
	sc := NewSpanContext(testTraceID, testParentID, 0, FlagSampled)
	noop := opentracing.NoopTracer{}.StartSpan("noop").Context()

	for _, c := range []struct {
		label   string
		sm      opentracing.SpanContext
		format  interface{}
		carrier interface{}
		err     error
	}{
		{
			label:   "text-map",
			sm:      sc,
			format:  opentracing.TextMap,
			carrier: opentracing.TextMapCarrier{},
		},
		{
			label:   "http-headers",
			sm:      &sc,
			format:  opentracing.HTTPHeaders,
			carrier: opentracing.HTTPHeadersCarrier(http.Header{}),
		},
		{
			label:   "nil-pointer",
			sm:      (*SpanContext)(nil),
			format:  opentracing.TextMap,
			carrier: opentracing.TextMapCarrier{},
			err:     opentracing.ErrInvalidSpanContext,
		},
		{
			label:   "invalid-span-context",
			sm:      SpanContextWithDebugID(testDebugID),
			format:  opentracing.TextMap,
			carrier: opentracing.TextMapCarrier{},
			err:     opentracing.ErrInvalidSpanContext,
		},
		{
			label:   "foreign-span-context",
			sm:      noop,
			format:  opentracing.TextMap,
			carrier: opentracing.TextMapCarrier{},
			err:     opentracing.ErrInvalidSpanContext,
		},
		{
			label:   "binary",
			sm:      sc,
			format:  opentracing.Binary,
			carrier: opentracing.TextMapCarrier{},
			err:     opentracing.ErrUnsupportedFormat,
		},
		{
			label:   "invalid-carrier",
			sm:      sc,
			format:  opentracing.TextMap,
			carrier: map[string]string{},
			err:     opentracing.ErrInvalidCarrier,
		},
	} {
		t.Run(c.label, func(t *testing.T) {
			err := Propagator{}.Inject(c.sm, c.format, c.carrier)
			if !errors.Is(err, c.err) {
				t.Fatalf("Expected error %v, got %v", c.err, err)
			}
			if c.err != nil {
				return
			}
			r := c.carrier.(Reader)
			value, found, err := lookup(r, TraceParentKey)
			if err != nil || !found {
				t.Fatalf("Expected traceparent in carrier, got %v, %v", found, err)
			}
			if value != testTraceParent {
				t.Errorf("Expected traceparent %q, got %q", testTraceParent, value)
			}
		})
	}
}

func TestPropagatorExtract(t *testing.T) {
	header := http.Header{}
	header.Set(TraceParentKey, testTraceParent)

	for _, c := range []struct {
		label   string
		format  interface{}
		carrier interface{}
		err     error
	}{
		{
			label:   "http-headers",
			format:  opentracing.HTTPHeaders,
			carrier: opentracing.HTTPHeadersCarrier(header),
		},
		{
			label:   "text-map",
			format:  opentracing.TextMap,
			carrier: opentracing.TextMapCarrier{TraceParentKey: testTraceParent},
		},
		{
			label:   "not-found",
			format:  opentracing.TextMap,
			carrier: opentracing.TextMapCarrier{},
			err:     opentracing.ErrSpanContextNotFound,
		},
		{
			label:   "malformed",
			format:  opentracing.TextMap,
			carrier: opentracing.TextMapCarrier{TraceParentKey: testTraceParent[:20]},
			err:     opentracing.ErrSpanContextNotFound,
		},
		{
			label:   "binary",
			format:  opentracing.Binary,
			carrier: opentracing.TextMapCarrier{},
			err:     opentracing.ErrUnsupportedFormat,
		},
		{
			label:   "invalid-carrier",
			format:  opentracing.TextMap,
			carrier: header,
			err:     opentracing.ErrInvalidCarrier,
		},
	} {
		t.Run(c.label, func(t *testing.T) {
			p := Propagator{Codec: newTestCodec(t, Config{Logger: log.NopWrapper})}
			sm, err := p.Extract(c.format, c.carrier)
			if !errors.Is(err, c.err) {
				t.Fatalf("Expected error %v, got %v", c.err, err)
			}
			if c.err != nil {
				return
			}
			sc, ok := sm.(SpanContext)
			if !ok {
				t.Fatalf("Expected SpanContext, got %T", sm)
			}
			if sc.TraceID() != testTraceID || sc.ParentID() != testParentID {
				t.Errorf("Unexpected context extracted: %v", sc)
			}
		})
	}
}
