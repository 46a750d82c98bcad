package tracing

import (
	"errors"
)

// ErrMalformedTraceParent is wrapped by every error parsing a traceparent
// value.
//
// Extract never returns it, it's only logged, as malformed headers must not
// fail the request they came with.
var ErrMalformedTraceParent = errors.New("tracing: malformed traceparent")
