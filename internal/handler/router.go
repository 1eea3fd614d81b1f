package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vaultpass/passgen-go/internal/middleware"
	"github.com/vaultpass/passgen-go/internal/service"
)

// RouterConfig collects what NewRouter wires together.
type RouterConfig struct {
	Generator      *service.GeneratorService
	Preferences    *service.PreferencesService
	RateLimitRPS   float64
	RateLimitBurst int
	// StatsEnabled mounts GET /api/v1/stats.
	StatsEnabled bool
}

// NewRouter builds the HTTP API. ctx bounds the rate limiter's background cleanup.
func NewRouter(ctx context.Context, cfg RouterConfig) http.Handler {
	genHandler := NewGeneratorHandler(cfg.Generator)
	prefsHandler := NewPreferencesHandler(cfg.Preferences)

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst))

		r.With(middleware.Preferences(cfg.Preferences)).Post("/api/v1/generate", genHandler.HandleGenerate)
		r.Post("/api/v1/score", genHandler.HandleScore)
		r.Post("/api/v1/preferences", prefsHandler.HandleSave)
	})

	if cfg.StatsEnabled {
		r.Get("/api/v1/stats", genHandler.HandleStats)
	}

	return r
}
