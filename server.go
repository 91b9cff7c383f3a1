package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aTrapDeer/portfolio-backend/internal/api"
	"github.com/aTrapDeer/portfolio-backend/internal/auth"
	"github.com/aTrapDeer/portfolio-backend/internal/config"
	"github.com/aTrapDeer/portfolio-backend/internal/logging"
	"github.com/aTrapDeer/portfolio-backend/internal/middleware"
	"github.com/aTrapDeer/portfolio-backend/internal/notify"
	"github.com/aTrapDeer/portfolio-backend/internal/storage"
)

const shutdownTimeout = 10 * time.Second

func run(ctx context.Context, cfg *config.Config) error {
	logger, err := logging.New(cfg.LogLevel, cfg.LogDev)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	if cfg.EnsureSessionSecret() {
		logger.Warn(ctx, "SESSION_SECRET not set, using a random key; sessions end on restart")
	}
	if cfg.UsesDefaultAdminPassword() {
		logger.Warn(ctx, "admin account uses the default password, set ADMIN_PASSWORD or ADMIN_PASSWORD_HASH")
	}

	store, err := openStorage(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error(ctx, "close storage", "error", err)
		}
	}()

	hash := cfg.AdminPasswordHash
	if hash == "" {
		if hash, err = auth.HashPassword(cfg.AdminPassword); err != nil {
			return err
		}
	}
	seeded, err := storage.Seed(ctx, store, cfg.AdminUsername, hash)
	if err != nil {
		return err
	}
	logger.Info(ctx, "storage ready",
		"driver", cfg.StorageDriver,
		"admin_created", seeded.AdminCreated,
		"profile_created", seeded.ProfileCreated)

	cached := storage.NewCachedStorage(store, cfg.CacheTTL, cfg.CacheCleanup)
	sessions := auth.NewSessionManager([]byte(cfg.SessionSecret), cfg.SessionTTL, cfg.CookieSecure)

	var notifier notify.Notifier = notify.Nop{}
	if cfg.RevalidationURL != "" {
		signer := auth.NewSigner(cfg.RevalidationSecret, time.Minute)
		notifier = notify.NewAsync(notify.NewRevalidator(cfg.RevalidationURL, signer, nil), logger)
		logger.Info(ctx, "frontend revalidation enabled", "url", cfg.RevalidationURL)
	}

	metrics := middleware.NewMetrics()
	metrics.Registry().MustRegister(newSessionGauge(sessions))
	loginLimiter := middleware.NewLimiterStore(cfg.LoginRatePerMinute, time.Minute)
	defer loginLimiter.Stop()
	contactLimiter := middleware.NewLimiterStore(cfg.ContactRatePerMinute, time.Minute)
	defer contactLimiter.Stop()

	h := api.NewHandler(cached, sessions, notifier, logger)
	router := api.NewRouter(h, api.RouterOptions{
		LoginLimiter:   loginLimiter,
		ContactLimiter: contactLimiter,
		Metrics:        metrics,
	})

	handler := middleware.CORS(cfg.AllowedOrigins)(
		middleware.ClientIPFromHeader(cfg.ClientIPHeader)(
			middleware.RequestLogger(logger)(
				metrics.Middleware(router))))

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info(ctx, "portfolio backend listening", "addr", cfg.Addr, "origins", cfg.AllowedOrigins)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info(context.Background(), "shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// newSessionGauge exposes the number of live admin sessions.
func newSessionGauge(sessions *auth.SessionManager) prometheus.GaugeFunc {
	return prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "portfolio",
		Name:      "active_sessions",
		Help:      "Admin sessions that have not expired or logged out.",
	}, func() float64 { return float64(sessions.Count()) })
}

func openStorage(ctx context.Context, cfg *config.Config) (storage.Storage, error) {
	switch cfg.StorageDriver {
	case config.DriverSQLite:
		return storage.NewGormStorage(ctx, cfg.DatabasePath)
	default:
		return storage.NewMemStorage(), nil
	}
}
