package promtest

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestValidateSpec(t *testing.T) {
	labels := []string{"result"}
	for _, c := range []struct {
		label   string
		name    string
		prefix  string
		count   int
		wantErr error
	}{
		{
			label:  "ok",
			name:   "codec_extract_total",
			prefix: "codec",
			count:  1,
		},
		{
			label:   "lint",
			name:    "codec_extract_boop",
			prefix:  "codec",
			count:   1,
			wantErr: errPrometheusLint,
		},
		{
			label:   "count",
			name:    "codec_extract_total",
			prefix:  "codec",
			count:   10,
			wantErr: errCount,
		},
		{
			label:   "length",
			name:    "codec_total",
			prefix:  "codec",
			count:   1,
			wantErr: errLength,
		},
	} {
		t.Run(c.label, func(t *testing.T) {
			reg := prometheus.NewRegistry()
			counter := prometheus.NewCounterVec(prometheus.CounterOpts{
				Name: c.name,
				Help: "Test help message",
			}, labels)
			reg.MustRegister(counter)
			counter.WithLabelValues("context").Inc()

			err := validateSpec(reg, c.prefix, c.count)
			if c.wantErr == nil {
				if err != nil {
					t.Errorf("Expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, c.wantErr) {
				t.Errorf("Expected %v, got %v", c.wantErr, err)
			}
		})
	}
}

func TestCheckDelta(t *testing.T) {
	counter := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "codec_delta_total",
		Help: "Test help message",
	}, []string{"result"})
	p := NewPrometheusMetricTest(t, "delta", counter, "written")
	counter.WithLabelValues("written").Add(2)
	p.CheckDelta(2)
}
