package graphql

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "portal",
		Subsystem: "graphql",
		Name:      "requests_total",
		Help:      "Total number of upstream GraphQL requests broken down by operation and result.",
	}, []string{"operation", "result"})

	requestLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "portal",
		Subsystem: "graphql",
		Name:      "latency_seconds",
		Help:      "Latency distribution for upstream GraphQL requests.",
		Buckets: []float64{
			0.005, 0.01, 0.02, 0.05,
			0.1, 0.2, 0.5,
			1, 2, 5, 10,
		},
	}, []string{"operation", "result"})
)

func resultLabel(err error) string {
	if err == nil {
		return "ok"
	}
	var gqlErrs Errors
	var httpErr *HTTPError
	switch {
	case asErrors(err, &gqlErrs):
		return "graphql_error"
	case asHTTPError(err, &httpErr):
		return "http_error"
	default:
		return "transport_error"
	}
}
