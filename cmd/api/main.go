package main

import (
	"context"
	"crypto/rand"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/vaultpass/passgen-go/internal/config"
	"github.com/vaultpass/passgen-go/internal/handler"
	"github.com/vaultpass/passgen-go/internal/repository"
	"github.com/vaultpass/passgen-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Generation events and stats are enabled only if the database is reachable.
	var events service.EventStore
	var db *sql.DB
	if cfg.DatabaseDSN != "" {
		var err error
		db, err = repository.NewDB(cfg.DatabaseDSN)
		if err != nil {
			slog.Warn("database connection failed, generation events disabled", "error", err)
		} else if err := repository.EnsureSchema(ctx, db); err != nil {
			slog.Warn("creating schema failed, generation events disabled", "error", err)
			db.Close()
			db = nil
		} else {
			events = repository.NewEventRepository(db)
		}
	}

	router := handler.NewRouter(ctx, handler.RouterConfig{
		Generator:      service.NewGeneratorService(nil, events, fingerprintKey(cfg)),
		Preferences:    service.NewPreferencesService(cfg.PreferencesSecret, cfg.PreferencesTTL),
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
		StatsEnabled:   events != nil,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env, "events", events != nil)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}
	if db != nil {
		db.Close()
	}

	slog.Info("server stopped")
}

// fingerprintKey returns the configured key, or a random per-process key so
// that fingerprints cannot be correlated across restarts.
func fingerprintKey(cfg config.Config) []byte {
	if cfg.FingerprintKey != "" {
		return []byte(cfg.FingerprintKey)
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		slog.Warn("generating fingerprint key failed, client fingerprints disabled", "error", err)
		return nil
	}
	return key
}
