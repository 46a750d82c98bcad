// Package errorsbp provides Batch, which can be used to compile multiple
// errors into a single one.
//
// It's used by configuration validation to report every invalid field at
// once instead of only the first one:
//
//	var batch errorsbp.Batch
//	batch.AddPrefix("vendorKey", validateKey(cfg.VendorKey))
//	batch.AddPrefix("debugIDHeader", validateKey(cfg.DebugIDHeader))
//	return batch.Compile()
//
// This package is not thread-safe.
// The same batch should not be operated on different goroutines concurrently.
package errorsbp
