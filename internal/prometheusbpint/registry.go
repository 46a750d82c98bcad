// Package prometheusbpint provides the prometheus registry shared by the
// packages of this module.
package prometheusbpint

import (
	"github.com/prometheus/client_golang/prometheus"
)

// GlobalRegistry is the registerer all metrics of this module register with.
//
// It defaults to prometheus.DefaultRegisterer so the metrics are exported by
// promhttp.Handler without extra wiring.
var GlobalRegistry prometheus.Registerer = prometheus.DefaultRegisterer
