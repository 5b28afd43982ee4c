// Package metrics defines the process-wide Prometheus collectors shared by
// the HTTP middleware and the webhook handler. Collectors use the client
// library's atomic primitives, so concurrent increments from in-flight
// requests never lose updates.
//
// Label cardinality is kept bounded on purpose:
//
//   - path:   the registered route template, not the raw URL
//   - status: numeric status code as a string (e.g. "200")
//   - result: webhook outcome, a closed set of four values
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Webhook outcome label values for WebhookRequests.
const (
	ResultCreated          = "created"
	ResultDuplicate        = "duplicate"
	ResultInvalidSignature = "invalid_signature"
	ResultValidationError  = "validation_error"
)

var (
	// HTTPRequests counts completed requests by route path and status code.
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"path", "status"},
	)

	// WebhookRequests counts webhook processing outcomes. Exactly one
	// increment per POST /webhook call, labeled created, duplicate,
	// invalid_signature, or validation_error.
	WebhookRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webhook_requests_total",
			Help: "Total webhook processing outcomes.",
		},
		[]string{"result"},
	)

	// RequestLatency records wall-clock request latency in milliseconds from
	// request start to response sent. Bucket boundaries are fixed; the
	// implicit +Inf bucket closes the set.
	RequestLatency = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "request_latency_ms",
			Help:    "Request latency in milliseconds.",
			Buckets: []float64{100, 500, 1000, 2000, 5000},
		},
	)
)

func init() {
	prometheus.MustRegister(HTTPRequests, WebhookRequests, RequestLatency)
}
