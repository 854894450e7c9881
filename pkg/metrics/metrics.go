package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	// Message status changes, including creation (from "")
	MessageTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "outreach_message_transitions_total",
			Help: "Total number of message status transitions",
		},
		[]string{"from", "to"},
	)

	// Rows written by LinkedIn discovery and job import
	DiscoveredRows = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "outreach_discovered_rows_total",
			Help: "Total number of rows created from the LinkedIn directory",
		},
		[]string{"kind"}, // kind: job, employee, mutual
	)

	GeneratorLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "outreach_generator_latency_ms",
			Help:    "Career tool generation latency in milliseconds",
			Buckets: prometheus.ExponentialBuckets(100, 2, 10), // 100ms to ~100s
		},
		[]string{"tool", "status"},
	)
)

func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

func IncrementMessageTransition(from, to string) {
	MessageTransitions.WithLabelValues(from, to).Inc()
}

func AddDiscoveredRows(kind string, n int) {
	if n > 0 {
		DiscoveredRows.WithLabelValues(kind).Add(float64(n))
	}
}

func RecordGeneratorLatency(tool, status string, duration time.Duration) {
	GeneratorLatency.WithLabelValues(tool, status).Observe(float64(duration.Milliseconds()))
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// HTTPMiddleware times every request. The route pattern is used as the path
// label so ids in the URL do not blow up cardinality.
func HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rw, r)

		path := r.Pattern
		if path == "" {
			path = "unmatched"
		}
		RecordHTTPRequestDuration(r.Method, path, strconv.Itoa(rw.status), time.Since(start))
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }
