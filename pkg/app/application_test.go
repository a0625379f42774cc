package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"

	"smarttour/internal/health"
	"smarttour/pkg/client"
	"smarttour/pkg/config"
	"smarttour/pkg/logger"
)

type pingHandler struct{}

func (pingHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/ping", func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusOK)
	})
	router.POST("/api/v1/ping", func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusCreated)
	})
}

func testConfig() *config.Config {
	return &config.Config{
		Port:              "0",
		RateLimitRequests: 2,
		RateLimitWindow:   time.Minute,
		RequestTimeout:    time.Second,
		IdempotencyTTL:    time.Hour,
		MaxRequestSize:    1024,
		ReadTimeout:       time.Second,
		WriteTimeout:      time.Second,
		IdleTimeout:       time.Second,
		ShutdownTimeout:   time.Second,
		Log:               logger.Discard(),
		Client:            client.NewClient(),
	}
}

func TestApplication_Routing(t *testing.T) {
	a := NewApplication(testConfig())
	a.SetApp(pingHandler{}, map[string]health.Check{
		"mongo": func(ctx context.Context) error { return nil },
	})
	defer a.idempotencyStore.Stop()
	defer a.rateLimiter.Stop()

	h := a.Handler()

	do := func(method, path, contentType, body string) int {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		if contentType != "" {
			req.Header.Set("Content-Type", contentType)
		}
		req.Header.Set("X-Client-ID", "test")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	if got := do(http.MethodGet, "/ready", "", ""); got != http.StatusOK {
		t.Errorf("/ready = %d", got)
	}
	if got := do(http.MethodPost, "/api/v1/ping", "text/plain", "hi"); got != http.StatusUnsupportedMediaType {
		t.Errorf("text body = %d", got)
	}
	if got := do(http.MethodGet, "/api/v1/ping", "", ""); got != http.StatusOK {
		t.Errorf("first ping = %d", got)
	}
	if got := do(http.MethodGet, "/api/v1/ping", "", ""); got != http.StatusOK {
		t.Errorf("second ping = %d", got)
	}
	if got := do(http.MethodGet, "/api/v1/ping", "", ""); got != http.StatusTooManyRequests {
		t.Errorf("third ping should be rate limited, got %d", got)
	}
	if got := do(http.MethodGet, "/health", "", ""); got != http.StatusOK {
		t.Errorf("health must bypass the rate limiter, got %d", got)
	}
}

func TestApplication_ShutdownHooks(t *testing.T) {
	a := NewApplication(testConfig())
	a.SetApp(pingHandler{}, nil)

	var order []string
	a.OnShutdown(func(ctx context.Context) { order = append(order, "sessions") })
	a.OnShutdown(func(ctx context.Context) { order = append(order, "kafka") })

	a.gracefulShutdown()

	if strings.Join(order, ",") != "sessions,kafka" {
		t.Errorf("hooks ran as %v", order)
	}
}
