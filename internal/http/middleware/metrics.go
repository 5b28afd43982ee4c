// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file exposes Prometheus instrumentation for HTTP traffic. The Metrics()
// middleware records the request counter and the latency histogram declared in
// the process-wide internal/metrics package, with careful attention to label
// cardinality:
//
//   - path:   the registered Gin route (e.g. /messages); falls back to the
//     raw URL path when no route matched
//   - status: numeric status code as a string (e.g. "200", "404")
//
// All collectors are safe for concurrent use.
package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-message-ingest/internal/metrics"
)

// Metrics returns a Gin middleware that instruments requests with Prometheus.
//
// Usage:
//
//	r := gin.New()
//	r.Use(middleware.Metrics())
//	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
//
// Semantics:
//   - Increments http_requests_total(path, status) once per completed request,
//     regardless of route or outcome
//   - Observes request_latency_ms with wall-clock latency from request start
//     to response sent
//
// Notes:
//   - The "path" label uses the registered route (c.FullPath()) to avoid
//     unbounded label cardinality from raw URLs. If no route matched (e.g. 404),
//     it falls back to c.Request.URL.Path.
//   - The webhook outcome counter is not recorded here: only the webhook
//     handler knows the result label, so it increments metrics.WebhookRequests
//     itself, exactly once per call.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latencyMS := float64(time.Since(start)) / float64(time.Millisecond)
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		status := strconv.Itoa(c.Writer.Status())

		metrics.HTTPRequests.WithLabelValues(path, status).Inc()
		metrics.RequestLatency.Observe(latencyMS)
	}
}
