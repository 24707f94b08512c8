// Package metrics holds the process-wide Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DistanceFallbacks counts distance estimates that fell back to the
	// great-circle approximation.
	DistanceFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "distance_fallback_total",
			Help: "Total number of distance estimates computed without the mapping provider",
		},
	)

	NotificationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notification_delivery_failures_total",
			Help: "Total number of failed notification deliveries",
		},
		[]string{"kind"},
	)

	// OutboundCalls counts calls to collaborating services by outcome:
	// ok, not_found, retried, failed.
	OutboundCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "outbound_calls_total",
			Help: "Total number of calls to collaborating services",
		},
		[]string{"service", "outcome"},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	DistanceCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "distance_cache_lookups_total",
			Help: "Total number of distance cache lookups",
		},
		[]string{"result"}, // hit, miss, error
	)
)
