package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tbourn/go-message-ingest/internal/metrics"
)

func TestMetrics_CountsByRouteAndStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(Metrics())
	r.GET("/messages", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{}) })

	before := testutil.ToFloat64(metrics.HTTPRequests.WithLabelValues("/messages", "200"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/messages", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("GET /messages -> %d", w.Code)
	}

	after := testutil.ToFloat64(metrics.HTTPRequests.WithLabelValues("/messages", "200"))
	if after-before != 1 {
		t.Fatalf("expected one increment for /messages 200, got %v", after-before)
	}
}

func TestMetrics_RawPathFallbackOn404(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(Metrics())

	before := testutil.ToFloat64(metrics.HTTPRequests.WithLabelValues("/nope", "404"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("GET /nope -> %d", w.Code)
	}

	after := testutil.ToFloat64(metrics.HTTPRequests.WithLabelValues("/nope", "404"))
	if after-before != 1 {
		t.Fatalf("expected one increment for unmatched path, got %v", after-before)
	}
}

func TestMetrics_RouteTemplateNotRawURL(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(Metrics())
	r.GET("/things/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	before := testutil.ToFloat64(metrics.HTTPRequests.WithLabelValues("/things/:id", "200"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/things/42", nil))

	after := testutil.ToFloat64(metrics.HTTPRequests.WithLabelValues("/things/:id", "200"))
	if after-before != 1 {
		t.Fatalf("expected route template label, got delta %v", after-before)
	}
	// The raw URL must not have produced its own series.
	if got := testutil.ToFloat64(metrics.HTTPRequests.WithLabelValues("/things/42", "200")); got != 0 {
		t.Fatalf("raw URL leaked into path label: %v", got)
	}
}
