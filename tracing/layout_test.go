package tracing

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTraceParentLayout(t *testing.T) {
	want := []traceParentField{
		{name: "version", offset: 0, width: 2},
		{name: "trace-id", offset: 3, width: 32},
		{name: "span-id", offset: 36, width: 16},
		{name: "flags", offset: 53, width: 2},
	}
	if diff := cmp.Diff(want, traceParentLayout, cmp.AllowUnexported(traceParentField{})); diff != "" {
		t.Errorf("traceParentLayout mismatch (-want +got):\n%s", diff)
	}
	if got := flagsField.end(); got != TraceParentHeaderSize {
		t.Errorf("Expected layout to end at %d, got %d", TraceParentHeaderSize, got)
	}
}

func TestTraceParentFieldFrom(t *testing.T) {
	const tp = "00-0af7651916cd43dd8448eb211c80319c-b7ad6b7169203331-01"
	for _, c := range []struct {
		field traceParentField
		want  string
	}{
		{field: versionField, want: "00"},
		{field: traceIDField, want: "0af7651916cd43dd8448eb211c80319c"},
		{field: spanIDField, want: "b7ad6b7169203331"},
		{field: flagsField, want: "01"},
	} {
		t.Run(c.field.name, func(t *testing.T) {
			if got := c.field.from(tp); got != c.want {
				t.Errorf("Expected %q, got %q", c.want, got)
			}
			if c.field.offset > 0 && tp[c.field.delimiterIndex()] != TraceParentDelimiter {
				t.Errorf("Expected delimiter at %d", c.field.delimiterIndex())
			}
		})
	}
}
