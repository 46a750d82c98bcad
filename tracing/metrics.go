package tracing

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/reddit/tracecontext.go/internal/prometheusbpint"
)

const (
	promNamespace = "tracecontext"

	resultLabel = "result"
)

// extract results.
const (
	extractResultContext   = "context"
	extractResultDebug     = "debug"
	extractResultNone      = "none"
	extractResultMalformed = "malformed"
)

// tracestate inject results.
const (
	traceStateResultWritten        = "written"
	traceStateResultTooManyEntries = "too_many_entries"
	traceStateResultEntryTooLarge  = "entry_too_large"
)

var (
	extractTotal = promauto.With(prometheusbpint.GlobalRegistry).NewCounterVec(prometheus.CounterOpts{
		Namespace: promNamespace,
		Name:      "extract_total",
		Help:      "Total number of W3C trace context extractions by result",
	}, []string{resultLabel})

	injectTraceStateTotal = promauto.With(prometheusbpint.GlobalRegistry).NewCounterVec(prometheus.CounterOpts{
		Namespace: promNamespace,
		Name:      "inject_tracestate_total",
		Help:      "Total number of tracestate merges on inject by result",
	}, []string{resultLabel})
)
