package promtest

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// PrometheusMetricTest stores information about a metric to use for testing.
type PrometheusMetricTest struct {
	tb          testing.TB
	metric      prometheus.Collector
	name        string
	initValue   float64
	labelValues []string
}

// NewPrometheusMetricTest creates a new test object for a Prometheus metric.
// It stores the current value of the metric along with the metric name.
func NewPrometheusMetricTest(tb testing.TB, name string, metric prometheus.Collector, labelValues ...string) *PrometheusMetricTest {
	p := &PrometheusMetricTest{
		tb:          tb,
		metric:      metric,
		name:        name,
		labelValues: labelValues,
	}
	p.initValue = p.getValue()
	return p
}

// CheckDelta checks that the metric value changed exactly delta since
// NewPrometheusMetricTest was called.
func (p *PrometheusMetricTest) CheckDelta(delta float64) {
	p.tb.Helper()
	if got := p.getValue() - p.initValue; got != delta {
		p.tb.Errorf("%s metric delta: wanted %v, got %v", p.name, delta, got)
	}
}

func (p *PrometheusMetricTest) getValue() float64 {
	p.tb.Helper()
	var (
		metric prometheus.Metric
		err    error
	)
	switch m := p.metric.(type) {
	case *prometheus.CounterVec:
		metric, err = m.GetMetricWithLabelValues(p.labelValues...)
	case *prometheus.GaugeVec:
		metric, err = m.GetMetricWithLabelValues(p.labelValues...)
	default:
		p.tb.Fatalf("not supported type %T", m)
	}
	if err != nil {
		p.tb.Fatalf("get %s metric err %v", p.name, err)
	}

	var out dto.Metric
	if err := metric.Write(&out); err != nil {
		p.tb.Fatalf("write %s metric err %v", p.name, err)
	}
	switch {
	case out.Counter != nil:
		return out.GetCounter().GetValue()
	case out.Gauge != nil:
		return out.GetGauge().GetValue()
	}
	p.tb.Fatalf("%s metric is neither a counter nor a gauge", p.name)
	return 0
}
