// Health probe HTTP handlers.
//
// Two probes with deliberately different strictness:
//   - GET /health/live   always 200 once the process serves traffic
//   - GET /health/ready  200 only when the store is reachable/migrated AND
//     the webhook secret is configured; otherwise 503 with a reason
//
// Readiness gates on the secret because an instance without one rejects
// every webhook with a configuration fault; keeping it out of the load
// balancer is the correct failure mode.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthLive is the liveness probe.
func (h *Handlers) HealthLive(c *gin.Context) {
	ok(c, http.StatusOK, gin.H{"status": "ok"})
}

// HealthReady is the readiness probe.
func (h *Handlers) HealthReady(c *gin.Context) {
	if h.secret == "" {
		ok(c, http.StatusServiceUnavailable, gin.H{
			"status": "not ready",
			"reason": "webhook secret not set",
		})
		return
	}
	if !h.svc.Ready(c.Request.Context()) {
		ok(c, http.StatusServiceUnavailable, gin.H{
			"status": "not ready",
			"reason": "database not ready",
		})
		return
	}
	ok(c, http.StatusOK, gin.H{"status": "ready"})
}
