package apiclient

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// requestsTotal counts outbound API requests.
	// Labels: method (GET/POST/PATCH/DELETE), status (numeric code or "error").
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "admin_api_requests_total",
			Help: "Total number of outbound admin API requests",
		},
		[]string{"method", "status"},
	)

	// requestDuration tracks outbound request duration distribution.
	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "admin_api_request_duration_seconds",
			Help:    "Outbound admin API request duration distribution",
			Buckets: []float64{0.01, 0.05, 0.1, 0.2, 0.5, 1.0, 2.0, 5.0},
		},
		[]string{"method"},
	)
)

// recordRequest records one settled outbound request.
func recordRequest(method string, status int, duration time.Duration) {
	requestsTotal.WithLabelValues(method, statusLabel(status)).Inc()
	requestDuration.WithLabelValues(method).Observe(duration.Seconds())
}
