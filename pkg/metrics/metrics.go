package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint", "status"},
	)
	BackendRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "listings_backend_requests_total",
			Help: "Total number of calls to the listings backend",
		},
		[]string{"operation", "outcome"},
	)
	BackendRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "listings_backend_request_duration_seconds",
			Help:    "Listings backend call duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
	StaleResponsesDiscarded = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "listings_stale_responses_discarded_total",
			Help: "Property loads whose result was dropped because a newer load was issued",
		},
	)
	ContactSubmissionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contact_submissions_total",
			Help: "Contact inquiry submissions by outcome",
		},
		[]string{"outcome"},
	)
	ActiveSessions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "browser_active_sessions",
			Help: "Number of in-memory browsing sessions",
		},
	)
)

var registerOnce sync.Once

func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(HTTPRequestsTotal)
		prometheus.MustRegister(HTTPRequestDuration)
		prometheus.MustRegister(BackendRequestsTotal)
		prometheus.MustRegister(BackendRequestDuration)
		prometheus.MustRegister(StaleResponsesDiscarded)
		prometheus.MustRegister(ContactSubmissionsTotal)
		prometheus.MustRegister(ActiveSessions)
	})
}
