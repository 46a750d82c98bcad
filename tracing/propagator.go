package tracing

import (
	"context"

	opentracing "github.com/opentracing/opentracing-go"
)

// Propagator exposes a W3CCodec through the Inject/Extract contract of
// opentracing.Tracer, so it can back the propagation part of a Tracer
// implementation.
//
// It supports opentracing.TextMap and opentracing.HTTPHeaders formats.
type Propagator struct {
	// Codec is the codec used, nil means DefaultW3CCodec().
	Codec *W3CCodec
}

func (p Propagator) codec() *W3CCodec {
	if p.Codec != nil {
		return p.Codec
	}
	return DefaultW3CCodec()
}

// Inject implements the Inject part of opentracing.Tracer.
//
// sm must be a valid SpanContext (or *SpanContext),
// otherwise opentracing.ErrInvalidSpanContext is returned.
func (p Propagator) Inject(sm opentracing.SpanContext, format interface{}, carrier interface{}) error {
	var sc SpanContext
	switch v := sm.(type) {
	case SpanContext:
		sc = v
	case *SpanContext:
		if v == nil {
			return opentracing.ErrInvalidSpanContext
		}
		sc = *v
	default:
		return opentracing.ErrInvalidSpanContext
	}
	if !sc.IsValid() {
		return opentracing.ErrInvalidSpanContext
	}

	if err := checkFormat(format); err != nil {
		return err
	}
	c, ok := carrier.(Carrier)
	if !ok {
		return opentracing.ErrInvalidCarrier
	}
	p.codec().Inject(context.Background(), sc, c)
	return nil
}

// Extract implements the Extract part of opentracing.Tracer.
//
// The returned opentracing.SpanContext is always a SpanContext.
// When there's no usable context in the carrier,
// opentracing.ErrSpanContextNotFound is returned.
func (p Propagator) Extract(format interface{}, carrier interface{}) (opentracing.SpanContext, error) {
	if err := checkFormat(format); err != nil {
		return nil, err
	}
	r, ok := carrier.(Reader)
	if !ok {
		return nil, opentracing.ErrInvalidCarrier
	}
	sc, ok := p.codec().Extract(context.Background(), r)
	if !ok {
		return nil, opentracing.ErrSpanContextNotFound
	}
	return sc, nil
}

func checkFormat(format interface{}) error {
	switch format {
	case opentracing.TextMap, opentracing.HTTPHeaders:
		return nil
	default:
		return opentracing.ErrUnsupportedFormat
	}
}
