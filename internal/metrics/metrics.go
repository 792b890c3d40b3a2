package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts served requests by route template and status.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "alhayat",
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "route", "status"})

	// RequestDuration observes request latency by route template.
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "alhayat",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	// ContentFallbacks counts page slots that kept their defaults.
	ContentFallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "alhayat",
		Name:      "content_fallbacks_total",
		Help:      "Content slots rendered from defaults because the store read failed or was empty.",
	}, []string{"table", "reason"})

	// AdminMutations counts editor writes by table, operation and outcome.
	AdminMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "alhayat",
		Name:      "admin_mutations_total",
		Help:      "Admin create, update and delete operations.",
	}, []string{"table", "op", "result"})
)

// Result maps an error to the label used by the mutation counter.
func Result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
