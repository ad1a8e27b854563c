// Package main implements the HTTP API server for the tutorial catalog.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	apihttp "github.com/dsjohal14/learnhub/internal/http"
	"github.com/dsjohal14/learnhub/internal/libs/config"
	"github.com/dsjohal14/learnhub/internal/libs/obs"
	"github.com/dsjohal14/learnhub/internal/scope/db"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

func main() {
	// Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Init logger
	obs.InitLogger(cfg.LogLevel)
	logger := obs.Logger("api")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The catalog is loaded once and never changes while serving
	loadCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	cat, source, err := db.OpenCatalog(loadCtx, cfg.DatabaseURL, cfg.CatalogPath, logger)
	cancel()
	if err != nil {
		logger.Fatal().Err(err).Str("source", string(source)).Msg("failed to load catalog")
	}
	logger.Info().
		Str("source", string(source)).
		Int("doc_count", cat.Count()).
		Msg("catalog loaded")

	handler := apihttp.NewHandler(cat, logger)
	r := setupRouter(handler, cfg, logger)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("starting API server")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server failed")
		}
	case <-ctx.Done():
		logger.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("graceful shutdown failed")
		}
	}
}

func setupRouter(h *apihttp.Handler, cfg *config.Config, logger zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apihttp.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	if cfg.RateLimitRPS > 0 {
		r.Use(apihttp.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst).Middleware)
	}

	// Routes
	r.Get("/health", h.HandleHealth)
	r.Get("/search", h.HandleSearchQuery)
	r.Post("/search", h.HandleSearch)
	r.Get("/categories", h.HandleCategories)
	r.Route("/tutorials", func(r chi.Router) {
		r.Get("/", h.HandleListTutorials)
		r.Get("/{id}", h.HandleGetTutorial)
	})

	return r
}
