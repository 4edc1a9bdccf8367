// Package cli provides the process bootstrap shared by the finanzas commands:
// env file, logger, configuration, storage backend and tracker.
package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"finanzas/internal/backend"
	"finanzas/internal/cache"
	"finanzas/internal/config"
	"finanzas/internal/dashboard"
	"finanzas/internal/ledger"
	"finanzas/internal/log"
)

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as the file is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// SetupLogger builds a text logger at level and installs it as the default.
// Unknown levels fall back to info.
func SetupLogger(level string) *log.Logger {
	cfg := log.DefaultConfig()
	cfg.Output = os.Stderr
	cfg.Level, _ = log.ParseLevel(level)
	logger := log.New(cfg)
	log.SetDefault(logger)
	return logger
}

// LoadAndValidateConfig loads configuration and validates it.
// Exits the process on validation failure.
func LoadAndValidateConfig(logger *log.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}
	return cfg
}

// App holds everything a command needs once bootstrapped.
type App struct {
	Config  *config.Config
	Logger  *log.Logger
	Backend *backend.BackendResult
	Store   *ledger.Store
	Tracker *dashboard.Tracker
}

// Setup opens the configured backend, loads the ledger from it and wires the
// dashboard tracker with a view cache. now may be nil.
func Setup(ctx context.Context, cfg *config.Config, logger *log.Logger, now func() time.Time) (*App, error) {
	backendCfg, err := backend.FromAppConfig(cfg)
	if err != nil {
		return nil, err
	}

	result, err := backend.NewFactory(logger).CreateBackend(ctx, backendCfg)
	if err != nil {
		return nil, fmt.Errorf("create %s backend: %w", backendCfg.Type, err)
	}

	store := ledger.Open(ctx, result.Store,
		ledger.WithSlot(cfg.StorageSlot),
		ledger.WithLogger(logger))

	views := cache.NewLRUCache[dashboard.View](cfg.ViewCacheSize, cfg.ViewCacheTTL)
	tracker := dashboard.New(store,
		dashboard.WithPeriod(cfg.Period()),
		dashboard.WithCache(views),
		dashboard.WithClock(now),
		dashboard.WithLogger(logger))

	logger.DebugContext(ctx, "Tracker ready",
		log.FieldOperation, log.OpStartup,
		log.FieldSlot, store.Slot(),
		log.FieldCount, store.Len(),
		log.FieldBackend, result.Type)

	return &App{
		Config:  cfg,
		Logger:  logger,
		Backend: result,
		Store:   store,
		Tracker: tracker,
	}, nil
}

// MustSetup is Setup for main packages: it exits the process on failure.
func MustSetup(ctx context.Context, cfg *config.Config, logger *log.Logger) *App {
	app, err := Setup(ctx, cfg, logger, nil)
	if err != nil {
		logger.Error("Failed to initialize storage", log.FieldError, err, log.FieldBackend, cfg.DataBackend)
		os.Exit(1)
	}
	return app
}

// Close releases the backend.
func (a *App) Close() {
	if err := a.Backend.Close(); err != nil {
		a.Logger.Warn("Failed to close backend", "error", err)
	}
}
