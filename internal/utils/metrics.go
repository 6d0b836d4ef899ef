package utils

import (
	"time"

	"premier-properties/pkg/metrics"
)

func RecordBackendCall(operation string, start time.Time, err error) {
	metrics.BackendRequestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	metrics.BackendRequestsTotal.WithLabelValues(operation, outcome).Inc()
}
