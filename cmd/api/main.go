// @title        Pet Adoption API
// @version      0.1.0
// @description  Adoptable pet catalog, proximity feed and adoption requests.
// @BasePath     /
package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pet-adoption/internal/adapters/auth/identity"
	"pet-adoption/internal/adapters/geocoding/google"
	"pet-adoption/internal/adapters/geocoding/rediscache"
	"pet-adoption/internal/adapters/listing"
	pg "pet-adoption/internal/adapters/storage/postgres"
	"pet-adoption/internal/domain/feed"
	"pet-adoption/internal/platform/config"
	"pet-adoption/internal/platform/httpclient"
	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/platform/metrics"
	"pet-adoption/internal/platform/retry"
	"pet-adoption/internal/router"
	"pet-adoption/internal/ports/auth"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.NewFromEnv().Error("config load failed", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Logging.Level),
		Format: logger.ParseFormat(cfg.Logging.Format),
		App:    cfg.App.Name,
	})
	m := metrics.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := router.Options{Logger: log, Metrics: m}

	if cfg.Database.DSN != "" {
		db, err := openDB(ctx, cfg, log, m)
		if err != nil {
			log.Error("database unavailable", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		defer db.Close()
		opts.DB = db
	}

	// sin verifier => modo dev (X-Debug-User-ID)
	if cfg.Identity.Enabled() {
		v, err := newVerifier(cfg.Identity)
		if err != nil {
			log.Error("identity client", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		opts.AuthVerifier = v
	}

	if cfg.Listing.BaseURL != "" {
		hc, err := httpclient.NewWithBaseURL(cfg.Listing.BaseURL, cfg.Listing.Timeout)
		if err != nil {
			log.Error("listing client", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		opts.Lister = listing.NewClient(hc, cfg.Listing.Path, log)
	}

	if cfg.Geocoding.APIKey != "" {
		g, err := newGeocoder(ctx, cfg, log, m)
		if err != nil {
			log.Error("geocoder", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		opts.Geocoder = g
	} else {
		log.Warn("geocoding disabled, every pet uses the fallback coordinates", nil)
	}

	app := router.Build(opts)

	// primer fetch en background; el server arranca aunque el listing tarde
	go app.Feed.Fetch(ctx)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      app.Handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warn("shutdown", map[string]any{"error": err.Error()})
		}
	}()

	log.Info("starting server", map[string]any{"addr": srv.Addr})
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	log.Info("server stopped", nil)
}

func openDB(ctx context.Context, cfg *config.Config, log logger.Logger, m *metrics.Metrics) (*sql.DB, error) {
	db, err := pg.OpenWithRetry(ctx, cfg.Database.DSN, retry.Options[*sql.DB]{
		MaxAttempts:       cfg.Retry.MaxAttempts,
		InitialDelay:      cfg.Retry.InitialDelay,
		BackoffMultiplier: cfg.Retry.Multiplier,
		OnSuccess: func(_ *sql.DB, attempt int) {
			m.RetryAttempt("db_open", "success")
			log.Info("database connected", map[string]any{"attempt": attempt})
		},
		OnError: func(err error, attempt int) {
			m.RetryAttempt("db_open", "error")
			log.Warn("database connect failed", map[string]any{"attempt": attempt, "error": err.Error()})
		},
	})
	if err != nil {
		return nil, err
	}
	if err := pg.EnsureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func newVerifier(c config.IdentityConfig) (auth.AuthVerifier, error) {
	client, err := identity.NewClient(identity.Config{
		BaseURL:      c.BaseURL,
		APIKey:       c.APIKey,
		APIKeyHeader: c.APIKeyHeader,
		Timeout:      c.Timeout,
	})
	if err != nil {
		return nil, err
	}
	return identity.NewVerifier(client), nil
}

func newGeocoder(ctx context.Context, cfg *config.Config, log logger.Logger, m *metrics.Metrics) (feed.Geocoder, error) {
	hc, err := httpclient.NewWithBaseURL(cfg.Geocoding.BaseURL, cfg.Geocoding.Timeout)
	if err != nil {
		return nil, err
	}
	var g feed.Geocoder = google.New(hc, cfg.Geocoding.APIKey, log)

	if !cfg.Geocoding.Cache.Enabled {
		return g, nil
	}
	rc, err := rediscache.NewClient(ctx, rediscache.Config{
		Address:  cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		// sin cache se puede seguir; solo se pierde el ahorro de requests
		log.Warn("geocode cache disabled", map[string]any{"error": err.Error()})
		return g, nil
	}
	return rediscache.New(g, rc, cfg.Geocoding.Cache.TTL, log, m), nil
}
