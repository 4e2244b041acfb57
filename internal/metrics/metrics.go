package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var accessAttempts = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "sharevault_access_attempts_total",
		Help: "Total share link access attempts by outcome",
	},
	[]string{"outcome"},
)

// RecordAccessAttempt counts one access attempt with its audit outcome.
func RecordAccessAttempt(outcome string) {
	accessAttempts.WithLabelValues(outcome).Inc()
}
