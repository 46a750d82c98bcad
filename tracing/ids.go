package tracing

import (
	"fmt"
	"strconv"

	"github.com/reddit/tracecontext.go/randbp"
)

// TraceID is a 128-bit trace id.
type TraceID struct {
	High, Low uint64
}

// NewTraceID returns a random, non-zero TraceID.
func NewTraceID() TraceID {
	high, low := randbp.R.Uint128()
	return TraceID{High: high, Low: low}
}

// IsValid returns false for the all zero TraceID.
func (t TraceID) IsValid() bool {
	return t.High != 0 || t.Low != 0
}

// Hex returns the 32 lowercase hex chars form used by traceparent.
func (t TraceID) Hex() string {
	return fmt.Sprintf("%016x%016x", t.High, t.Low)
}

// String returns the compact hex form used by the Jaeger text format,
// omitting the high half when it's zero.
func (t TraceID) String() string {
	if t.High == 0 {
		return fmt.Sprintf("%x", t.Low)
	}
	return fmt.Sprintf("%x%016x", t.High, t.Low)
}

// TraceIDFromHex parses a TraceID from up to 32 hex chars.
func TraceIDFromHex(s string) (TraceID, error) {
	var id TraceID
	if len(s) == 0 || len(s) > 32 {
		return id, fmt.Errorf("tracing: trace id %q must be 1 to 32 hex chars", s)
	}
	if len(s) > 16 {
		split := len(s) - 16
		high, err := strconv.ParseUint(s[:split], 16, 64)
		if err != nil {
			return id, fmt.Errorf("tracing: parsing trace id %q: %w", s, err)
		}
		id.High = high
		s = s[split:]
	}
	low, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return TraceID{}, fmt.Errorf("tracing: parsing trace id %q: %w", s, err)
	}
	id.Low = low
	return id, nil
}

// SpanID is a 64-bit span id.
type SpanID uint64

// NewSpanID returns a random, non-zero SpanID.
func NewSpanID() SpanID {
	return SpanID(randbp.R.NonZeroUint64())
}

// Hex returns the 16 lowercase hex chars form used by traceparent.
func (s SpanID) Hex() string {
	return fmt.Sprintf("%016x", uint64(s))
}

// String returns the compact hex form used by the Jaeger text format.
func (s SpanID) String() string {
	return strconv.FormatUint(uint64(s), 16)
}

// SpanIDFromHex parses a SpanID from up to 16 hex chars.
func SpanIDFromHex(s string) (SpanID, error) {
	if len(s) == 0 || len(s) > 16 {
		return 0, fmt.Errorf("tracing: span id %q must be 1 to 16 hex chars", s)
	}
	id, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("tracing: parsing span id %q: %w", s, err)
	}
	return SpanID(id), nil
}
