// Package metrics defines the Prometheus collectors for the server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequests counts handled requests by method, route, and status class.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wealthplanner_http_requests_total",
		Help: "Handled HTTP requests.",
	}, []string{"method", "route", "status"})

	// HTTPDuration tracks request latency by route.
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "wealthplanner_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	// ProjectionDuration tracks the compute time of projection runs.
	ProjectionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "wealthplanner_projection_duration_seconds",
		Help:    "Projection engine compute time.",
		Buckets: prometheus.ExponentialBuckets(1e-5, 4, 10),
	})

	// CacheRequests counts projection cache lookups by result (hit or miss).
	CacheRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wealthplanner_projection_cache_requests_total",
		Help: "Projection cache lookups.",
	}, []string{"result"})
)
