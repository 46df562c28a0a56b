// Package cli provides common CLI initialization utilities.
// This package consolidates the startup sequence of cmd/spendly:
// environment loading, logging, configuration and signal handling.
package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/NicoCalcagno/Spendly/internal/config"
	"github.com/NicoCalcagno/Spendly/internal/log"
	"github.com/NicoCalcagno/Spendly/internal/token"
)

// SetupLogger initializes structured logging with the given level and sets
// it as the default logger.
func SetupLogger(level string) *log.Logger {
	cfg := log.DefaultConfig()
	cfg.Level = log.ParseLevel(level)
	cfg.Handler = nil
	logger := log.New(cfg)
	log.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig(logger *log.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}
	return cfg
}

// InitTokenStore resolves the credential store location.
// Returns the store or exits the process on failure.
func InitTokenStore(logger *log.Logger, dir string) *token.FileStore {
	if dir == "" {
		resolved, err := token.DefaultDir()
		if err != nil {
			logger.Error("Failed to resolve token directory", "error", err)
			os.Exit(1)
		}
		dir = resolved
	}
	return token.NewFileStore(dir)
}

// SignalContext returns a context cancelled on SIGINT or SIGTERM.
func SignalContext(logger *log.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())
		cancel()
	}()

	return ctx, cancel
}
