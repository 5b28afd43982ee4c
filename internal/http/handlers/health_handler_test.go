package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-message-ingest/internal/services"
)

func TestHealthLive_Always200(t *testing.T) {
	// Liveness must not depend on the store: break it first.
	r, db := newTestRouter(t, testSecret)
	if err := db.Exec("DROP TABLE messages").Error; err != nil {
		t.Fatalf("drop: %v", err)
	}

	body := getJSON(t, r, "/health/live", http.StatusOK)
	if body["status"] != "ok" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestHealthReady_OK(t *testing.T) {
	r, _ := newTestRouter(t, testSecret)

	body := getJSON(t, r, "/health/ready", http.StatusOK)
	if body["status"] != "ready" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestHealthReady_MissingSecret(t *testing.T) {
	// Whitespace-only counts as unset, same as config.HasWebhookSecret.
	for _, secret := range []string{"", "   "} {
		r, _ := newTestRouter(t, secret)

		body := getJSON(t, r, "/health/ready", http.StatusServiceUnavailable)
		if body["status"] != "not ready" || body["reason"] != "webhook secret not set" {
			t.Fatalf("secret %q: unexpected body: %v", secret, body)
		}
	}
}

func TestHealthReady_DatabaseNotReady(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// Open but never migrated: table missing means not ready.
	db := newTestDB(t)
	if err := db.Exec("DROP TABLE messages").Error; err != nil {
		t.Fatalf("drop: %v", err)
	}
	h := New(&services.MessageService{DB: db}, testSecret)

	r := gin.New()
	r.GET("/health/ready", h.HealthReady)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
	body := getJSON(t, r, "/health/ready", http.StatusServiceUnavailable)
	if body["reason"] != "database not ready" {
		t.Fatalf("unexpected body: %v", body)
	}
}
