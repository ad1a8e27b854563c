package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	apihttp "github.com/dsjohal14/learnhub/internal/http"
	"github.com/dsjohal14/learnhub/internal/libs/config"
	"github.com/dsjohal14/learnhub/internal/libs/obs"
	"github.com/dsjohal14/learnhub/internal/scope/catalog"
)

func testRouter(t *testing.T, cfg *config.Config) http.Handler {
	t.Helper()
	c, err := catalog.Default()
	if err != nil {
		t.Fatalf("failed to load catalog: %v", err)
	}
	obs.InitLogger("error")
	logger := obs.Logger("test")
	return setupRouter(apihttp.NewHandler(c, logger), cfg, logger)
}

func TestSetupRouterRoutes(t *testing.T) {
	r := testRouter(t, &config.Config{})

	tests := []struct {
		method string
		path   string
		status int
	}{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/search?q=git", http.StatusOK},
		{http.MethodGet, "/categories", http.StatusOK},
		{http.MethodGet, "/tutorials", http.StatusOK},
		{http.MethodGet, "/tutorials/git", http.StatusOK},
		{http.MethodGet, "/tutorials/nope", http.StatusNotFound},
		{http.MethodDelete, "/tutorials/git", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
			if w.Code != tt.status {
				t.Errorf("expected status %d, got %d", tt.status, w.Code)
			}
		})
	}
}

func TestSetupRouterRateLimit(t *testing.T) {
	r := testRouter(t, &config.Config{RateLimitRPS: 0.001, RateLimitBurst: 1})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected first request to pass, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusTooManyRequests {
		t.Errorf("expected 429, got %d", w.Code)
	}
}
