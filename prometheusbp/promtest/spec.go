package promtest

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/reddit/tracecontext.go/errorsbp"
)

var (
	errPrefix         = errors.New("the prefix is not at the beginning of the metric name")
	errLength         = errors.New("metric name should have a minimum of 3 parts, like prefix_name_suffix")
	errCount          = errors.New("wrong metric count for prefix")
	errPrometheusLint = errors.New("problem with Prometheus GatherAndLint")
)

// ValidateSpec validates that the Prometheus metrics exposed by the default
// gatherer whose names begin with metricPrefix are lint-clean, follow the
// <prefix>_<name>_<suffix> naming convention, and that there are exactly
// wantMetricCount of them.
func ValidateSpec(tb testing.TB, metricPrefix string, wantMetricCount int) {
	tb.Helper()
	if err := validateSpec(prometheus.DefaultGatherer, metricPrefix, wantMetricCount); err != nil {
		tb.Error(err)
	}
}

func validateSpec(gatherer prometheus.Gatherer, metricPrefix string, wantMetricCount int) error {
	var batch errorsbp.Batch
	families, err := gatherer.Gather()
	if err != nil {
		return err
	}

	var count int
	for _, m := range families {
		name := m.GetName()
		if !strings.HasPrefix(name, metricPrefix) {
			continue
		}
		count++
		batch.Add(validateName(name, metricPrefix))
		problems, err := testutil.GatherAndLint(gatherer, name)
		batch.Add(err)
		for _, p := range problems {
			batch.Add(fmt.Errorf("%w: metric %s, problem %s", errPrometheusLint, name, p.Text))
		}
	}
	if count != wantMetricCount {
		batch.Add(fmt.Errorf("%w: got %d, want %d", errCount, count, wantMetricCount))
	}
	return batch.Compile()
}

func validateName(name, prefix string) error {
	var batch errorsbp.Batch
	if parts := strings.Split(name, "_"); len(parts) < 3 {
		batch.Add(fmt.Errorf("%w: got %d parts", errLength, len(parts)))
	}
	if !strings.HasPrefix(name, prefix+"_") {
		batch.Add(fmt.Errorf("%w: got %s, want prefix %s_", errPrefix, name, prefix))
	}
	return batch.Compile()
}
