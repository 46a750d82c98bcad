package errorsbp_test

import (
	"errors"
	"testing"

	"github.com/reddit/tracecontext.go/errorsbp"
)

var errEmpty = errors.New("must not be empty")

func TestBatch(t *testing.T) {
	var batch errorsbp.Batch
	if err := batch.Compile(); err != nil {
		t.Errorf("Empty batch should compile to nil, got %v", err)
	}

	batch.Add(nil)
	batch.AddPrefix("vendorKey", errEmpty)
	if err := batch.Compile(); err == nil || err.Error() != "vendorKey: must not be empty" {
		t.Errorf("Single error batch should compile to that error, got %v", err)
	}

	batch.AddPrefix("debugIDHeader", errEmpty)
	err := batch.Compile()
	if got := errorsbp.BatchSize(err); got != 2 {
		t.Errorf("BatchSize got %d, want 2", got)
	}
	if !errors.Is(err, errEmpty) {
		t.Errorf("Expected errors.Is(%v, errEmpty) to be true", err)
	}
	const want = "errorsbp: 2 errors: vendorKey: must not be empty; debugIDHeader: must not be empty"
	if err.Error() != want {
		t.Errorf("Error() got %q, want %q", err.Error(), want)
	}
}

func TestBatchFlatten(t *testing.T) {
	var inner errorsbp.Batch
	inner.Add(errEmpty, errors.New("other"))

	var outer errorsbp.Batch
	outer.AddPrefix("config", inner)
	if got := outer.Len(); got != 2 {
		t.Fatalf("Expected nested batch to be flattened into 2 errors, got %d", got)
	}
	if got := outer.GetErrors()[0].Error(); got != "config: must not be empty" {
		t.Errorf("Unexpected first error %q", got)
	}
}

func TestBatchSize(t *testing.T) {
	if got := errorsbp.BatchSize(nil); got != 0 {
		t.Errorf("BatchSize(nil) got %d, want 0", got)
	}
	if got := errorsbp.BatchSize(errEmpty); got != 1 {
		t.Errorf("BatchSize(single) got %d, want 1", got)
	}
}
