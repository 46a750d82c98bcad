package errorsbp

import (
	"errors"
	"strconv"
	"strings"
)

var _ error = Batch{}

// Batch collects every error found during a multi-step check, such as
// validating all the fields of a configuration, so they can be reported at
// once instead of one per run.
//
// The zero value is an empty Batch ready to use.
type Batch struct {
	errs []error
}

func (be Batch) Error() string {
	msgs := make([]string, len(be.errs))
	for i, err := range be.errs {
		msgs[i] = err.Error()
	}
	return "errorsbp: " + strconv.Itoa(len(be.errs)) + " errors: " + strings.Join(msgs, "; ")
}

// Len returns the number of errors in the batch.
func (be Batch) Len() int {
	return len(be.errs)
}

// Is reports whether any error in the batch matches target.
func (be Batch) Is(target error) bool {
	for _, err := range be.errs {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// As sets *v to the batch when v is a *Batch,
// or to the first error in the batch matching it otherwise.
func (be Batch) As(v interface{}) bool {
	if target, ok := v.(*Batch); ok {
		*target = be
		return true
	}
	for _, err := range be.errs {
		if errors.As(err, v) {
			return true
		}
	}
	return false
}

// Add is AddPrefix without a prefix.
func (be *Batch) Add(errs ...error) {
	be.AddPrefix("", errs...)
}

// AddPrefix adds the non-nil errs to the batch, each reported as
//
//	"<prefix>: <err>"
//
// prefix is usually the name of the field the errors are about.
// A Batch among errs is flattened, every error it holds is added instead.
func (be *Batch) AddPrefix(prefix string, errs ...error) {
	for _, err := range errs {
		if err == nil {
			continue
		}
		if inner, ok := err.(Batch); ok {
			be.AddPrefix(prefix, inner.errs...)
			continue
		}
		if prefix != "" {
			err = &fieldError{field: prefix, err: err}
		}
		be.errs = append(be.errs, err)
	}
}

// Compile returns nil for an empty batch, the only error for a batch of one,
// and the batch itself otherwise.
func (be Batch) Compile() error {
	switch len(be.errs) {
	case 0:
		return nil
	case 1:
		return be.errs[0]
	}
	return be
}

// GetErrors returns a copy of the errors in the batch.
func (be Batch) GetErrors() []error {
	return append([]error(nil), be.errs...)
}

type fieldError struct {
	field string
	err   error
}

func (e *fieldError) Error() string {
	return e.field + ": " + e.err.Error()
}

func (e *fieldError) Unwrap() error {
	return e.err
}

// BatchSize returns Len() when err is a Batch,
// 1 for any other non-nil error and 0 for nil.
func BatchSize(err error) int {
	var be Batch
	switch {
	case err == nil:
		return 0
	case errors.As(err, &be):
		return be.Len()
	}
	return 1
}
