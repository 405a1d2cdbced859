package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "staffroster_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "staffroster_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	employeesDeactivated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "staffroster_employees_deactivated_total",
		Help: "Count of employee soft deletes",
	})

	availabilityBatchSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "staffroster_availability_batch_size",
		Help:    "Number of records per nested availability create",
		Buckets: []float64{1, 2, 5, 7, 14, 28},
	})

	idempotencyReplays = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "staffroster_idempotency_total",
		Help: "Idempotency-Key handling outcomes",
	}, []string{"outcome"})
)

// ObserveHTTPRequest records an HTTP request metric
func ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	httpRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// EmployeeDeactivated counts a successful soft delete.
func EmployeeDeactivated() {
	employeesDeactivated.Inc()
}

// ObserveAvailabilityBatch records how many records one nested create stored.
func ObserveAvailabilityBatch(size int) {
	availabilityBatchSize.Observe(float64(size))
}

// ObserveIdempotency records a replay, conflict, or stored outcome.
func ObserveIdempotency(outcome string) {
	idempotencyReplays.WithLabelValues(outcome).Inc()
}
