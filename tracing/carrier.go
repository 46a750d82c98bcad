package tracing

import (
	"strings"

	opentracing "github.com/opentracing/opentracing-go"
)

// Reader is the read half of a carrier: an ordered sequence of key/value
// pairs.
//
// opentracing.TextMapCarrier, opentracing.HTTPHeadersCarrier,
// MetadataCarrier and ThriftCarrier all implement it.
type Reader = opentracing.TextMapReader

// Carrier can be both iterated and written to.
//
// Inject needs both: it reads the incoming tracestate before writing the
// merged one back.
type Carrier interface {
	opentracing.TextMapReader
	opentracing.TextMapWriter
}

var (
	_ Carrier = opentracing.TextMapCarrier(nil)
	_ Carrier = opentracing.HTTPHeadersCarrier(nil)
)

// lastValues iterates r once and returns,
// for every key in keys, the value of the last entry matching it
// case-insensitively.
//
// Last match wins: when a key appears more than once,
// the value seen last in the carrier's iteration order is returned.
func lastValues(r Reader, keys ...string) (values []string, found []bool, err error) {
	values = make([]string, len(keys))
	found = make([]bool, len(keys))
	err = r.ForeachKey(func(key, value string) error {
		for i, k := range keys {
			if strings.EqualFold(key, k) {
				values[i] = value
				found[i] = true
			}
		}
		return nil
	})
	return values, found, err
}

// lookup returns the value of the last entry in r matching key
// case-insensitively.
func lookup(r Reader, key string) (string, bool, error) {
	values, found, err := lastValues(r, key)
	return values[0], found[0], err
}
