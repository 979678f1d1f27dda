// Package metrics exposes Prometheus collectors for the HTTP API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestTotal counts HTTP requests by method, route label and status.
	RequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trivia_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "trivia_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
	// QuizOutcomes counts quiz draws by whether a question was served.
	QuizOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trivia_quiz_draws_total",
			Help: "Quiz next-question draws by outcome",
		},
		[]string{"outcome"},
	)
)
