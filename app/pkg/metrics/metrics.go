package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestTotal counts HTTP requests by method, route and status.
	RequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hangar_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)
	// RequestDuration is the latency of HTTP requests.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hangar_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
	// MutationsTotal counts store mutations by entity, operation and result.
	MutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hangar_mutations_total",
			Help: "Total number of create/update/delete operations",
		},
		[]string{"entity", "operation", "status"},
	)
)

func Mutation(entity, operation string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	MutationsTotal.WithLabelValues(entity, operation, status).Inc()
}
