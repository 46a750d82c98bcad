package tracing

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/reddit/tracecontext.go/log"
)

// W3CCodec converts SpanContexts to and from W3C traceparent/tracestate
// headers.
//
// It's immutable after creation and safe for concurrent use.
// The carriers passed to it are not: they are owned by the caller.
type W3CCodec struct {
	vendorKey     string
	debugIDHeader string
	maxEntries    int
	maxEntrySize  int
	logger        log.Wrapper
}

var defaultCodec = mustNewW3CCodec(Config{})

// DefaultW3CCodec returns the codec created from an empty Config.
func DefaultW3CCodec() *W3CCodec {
	return defaultCodec
}

// NewW3CCodec creates a W3CCodec from cfg.
func NewW3CCodec(cfg Config) (*W3CCodec, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("tracing.NewW3CCodec: %w", err)
	}
	cfg = cfg.withDefaults()
	return &W3CCodec{
		vendorKey:     cfg.VendorKey,
		debugIDHeader: cfg.DebugIDHeader,
		maxEntries:    cfg.MaxTraceStateEntries,
		maxEntrySize:  cfg.MaxTraceStateEntrySize,
		logger:        cfg.Logger,
	}, nil
}

func mustNewW3CCodec(cfg Config) *W3CCodec {
	c, err := NewW3CCodec(cfg)
	if err != nil {
		panic(err)
	}
	return c
}

// Extract reads a SpanContext out of carrier.
//
// It returns:
//
// - the SpanContext continuing the trace in traceparent, with a new SpanID and
// the incoming span as the parent;
//
// - a debug-only SpanContext (see SpanContextWithDebugID) when there's no
// traceparent but there's a debug id header;
//
// - false when there's neither, or traceparent is malformed.
//
// Keys are matched case-insensitively and the last match wins.
// When traceparent is present the debug id header is ignored.
func (c *W3CCodec) Extract(ctx context.Context, carrier Reader) (SpanContext, bool) {
	values, found, err := lastValues(carrier, TraceParentKey, c.debugIDHeader)
	if err != nil {
		c.logger.Log(ctx, "Failed to read trace context from carrier: "+err.Error())
		extractTotal.WithLabelValues(extractResultMalformed).Inc()
		return SpanContext{}, false
	}
	traceParent, debugID := values[0], values[1]

	if !found[0] {
		if found[1] {
			extractTotal.WithLabelValues(extractResultDebug).Inc()
			return SpanContextWithDebugID(debugID), true
		}
		extractTotal.WithLabelValues(extractResultNone).Inc()
		return SpanContext{}, false
	}

	sc, err := parseTraceParent(traceParent)
	if err != nil {
		c.logger.Log(ctx, fmt.Sprintf("Malformed traceparent in carrier: %q, %v", traceParent, err))
		extractTotal.WithLabelValues(extractResultMalformed).Inc()
		return SpanContext{}, false
	}
	extractTotal.WithLabelValues(extractResultContext).Inc()
	return sc, true
}

// ValidTraceParent reports whether candidate has a valid traceparent shape:
//
// 1. It's exactly TraceParentHeaderSize long,
// or longer with a delimiter right after that;
//
// 2. There's a delimiter right before the trace id, span id and flags fields.
//
// Nothing else is checked here, the contents of the fields are only checked
// when they are parsed.
func ValidTraceParent(candidate string) bool {
	size := flagsField.end()
	switch {
	case len(candidate) < size:
		return false
	case len(candidate) > size && candidate[size] != TraceParentDelimiter:
		return false
	}
	for _, f := range traceParentLayout[1:] {
		if candidate[f.delimiterIndex()] != TraceParentDelimiter {
			return false
		}
	}
	return true
}

// parseTraceParent parses a traceparent into a SpanContext with a newly
// minted SpanID, the incoming span id being its parent.
//
// The trace is sampled only when the flags field is exactly 1.
func parseTraceParent(candidate string) (SpanContext, error) {
	if !ValidTraceParent(candidate) {
		return SpanContext{}, fmt.Errorf("%w: invalid length or delimiters", ErrMalformedTraceParent)
	}

	traceID, err := TraceIDFromHex(traceIDField.from(candidate))
	if err != nil {
		return SpanContext{}, fmt.Errorf("%w: %s: %v", ErrMalformedTraceParent, traceIDField.name, err)
	}
	parentID, err := SpanIDFromHex(spanIDField.from(candidate))
	if err != nil {
		return SpanContext{}, fmt.Errorf("%w: %s: %v", ErrMalformedTraceParent, spanIDField.name, err)
	}
	flags, err := strconv.ParseUint(flagsField.from(candidate), 16, 8)
	if err != nil {
		return SpanContext{}, fmt.Errorf("%w: %s: %v", ErrMalformedTraceParent, flagsField.name, err)
	}

	var sampled Flags
	if flags == uint64(FlagSampled) {
		sampled = FlagSampled
	}
	return NewSpanContext(traceID, NewSpanID(), parentID, sampled), nil
}

// formatTraceParent renders sc as a traceparent, always exactly
// TraceParentHeaderSize long.
func formatTraceParent(sc SpanContext) string {
	flags := "00"
	if sc.IsSampled() {
		flags = "01"
	}
	var sb strings.Builder
	sb.Grow(TraceParentHeaderSize)
	sb.WriteString(TraceParentVersion)
	sb.WriteByte(TraceParentDelimiter)
	sb.WriteString(sc.TraceID().Hex())
	sb.WriteByte(TraceParentDelimiter)
	sb.WriteString(sc.SpanID().Hex())
	sb.WriteByte(TraceParentDelimiter)
	sb.WriteString(flags)
	return sb.String()
}

// Inject writes sc into carrier.
//
// traceparent is always written, with sc's own SpanID which becomes the
// parent id on the receiving side.
//
// tracestate gets our entry (VendorKey=sc.ContextAsString()) as its first
// member, followed by the incoming members not starting with VendorKey,
// in their original order.
// When the incoming tracestate already has MaxTraceStateEntries members,
// or our entry would be larger than MaxTraceStateEntrySize,
// tracestate is left untouched.
func (c *W3CCodec) Inject(ctx context.Context, sc SpanContext, carrier Carrier) {
	carrier.Set(TraceParentKey, formatTraceParent(sc))

	value, found, err := lookup(carrier, TraceStateKey)
	if err != nil {
		c.logger.Log(ctx, "Failed to read tracestate from carrier: "+err.Error())
		found = false
	}
	incoming := splitTraceState(value, found)

	merged, result := c.mergeTraceState(sc, incoming)
	injectTraceStateTotal.WithLabelValues(result).Inc()
	if result != traceStateResultWritten {
		return
	}
	carrier.Set(TraceStateKey, merged)
}

// splitTraceState normalizes the incoming tracestate into its list members.
//
// An absent header is an empty list. Empty members (as in "a,,b" or "")
// and the optional whitespace around members are dropped.
func splitTraceState(value string, found bool) []string {
	if !found {
		return nil
	}
	members := strings.Split(value, traceStateListDelimiter)
	entries := members[:0]
	for _, m := range members {
		if m = strings.TrimSpace(m); m != "" {
			entries = append(entries, m)
		}
	}
	return entries
}

func (c *W3CCodec) mergeTraceState(sc SpanContext, incoming []string) (string, string) {
	if len(incoming) >= c.maxEntries {
		return "", traceStateResultTooManyEntries
	}
	value := sc.ContextAsString()
	if len(c.vendorKey)+len(traceStateKVDelimiter)+len(value) > c.maxEntrySize {
		return "", traceStateResultEntryTooLarge
	}

	foreign := filterEntries(incoming, func(entry string) bool {
		return !strings.HasPrefix(entry, c.vendorKey)
	})
	entries := append([]string{c.vendorKey + traceStateKVDelimiter + value}, foreign...)
	return strings.Join(entries, traceStateListDelimiter), traceStateResultWritten
}

func filterEntries(entries []string, keep func(string) bool) []string {
	kept := make([]string, 0, len(entries))
	for _, e := range entries {
		if keep(e) {
			kept = append(kept, e)
		}
	}
	return kept
}
