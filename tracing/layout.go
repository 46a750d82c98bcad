package tracing

// Carrier keys.
//
// They are matched case-insensitively when read, and written as-is.
const (
	TraceParentKey = "traceparent"
	TraceStateKey  = "tracestate"

	// DefaultVendorKey is the tracestate key reserved for our own entry.
	DefaultVendorKey = "jaeger"
	// DefaultDebugIDHeader carries a debug id used to force a sampled trace
	// when there's no traceparent.
	DefaultDebugIDHeader = "jaeger-debug-id"
)

// traceparent layout.
const (
	TraceParentVersion   = "00"
	TraceParentDelimiter = '-'

	// TraceParentHeaderSize is the length of a traceparent without extension
	// fields: 2 + 1 + 32 + 1 + 16 + 1 + 2.
	TraceParentHeaderSize = 55
)

// tracestate limits.
const (
	DefaultMaxTraceStateEntries   = 32
	DefaultMaxTraceStateEntrySize = 256

	traceStateListDelimiter = ","
	traceStateKVDelimiter   = "="
)

// traceParentField is a fixed width field of the traceparent value.
type traceParentField struct {
	name   string
	offset int
	width  int
}

// next returns the field following f after a single delimiter.
func (f traceParentField) next(name string, width int) traceParentField {
	return traceParentField{
		name:   name,
		offset: f.end() + 1,
		width:  width,
	}
}

func (f traceParentField) end() int {
	return f.offset + f.width
}

// delimiterIndex is the index of the delimiter right before f.
func (f traceParentField) delimiterIndex() int {
	return f.offset - 1
}

// from slices f out of a value that passed ValidTraceParent.
func (f traceParentField) from(traceParent string) string {
	return traceParent[f.offset:f.end()]
}

var (
	versionField = traceParentField{name: "version", offset: 0, width: len(TraceParentVersion)}
	traceIDField = versionField.next("trace-id", 32)
	spanIDField  = traceIDField.next("span-id", 16)
	flagsField   = spanIDField.next("flags", 2)

	// traceParentLayout is consumed by both ValidTraceParent and
	// parseTraceParent.
	traceParentLayout = []traceParentField{
		versionField,
		traceIDField,
		spanIDField,
		flagsField,
	}
)
