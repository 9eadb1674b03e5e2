// Package cli provides common initialization shared by the expenses
// binaries (cmd/expenses and cmd/expenses-import).
package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"expenses/internal/backend"
	"expenses/internal/config"
)

// SetupLogger initializes structured logging with default settings.
// Returns the configured logger and sets it as the default logger.
func SetupLogger() *slog.Logger {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as the file is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig(logger *slog.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}
	return cfg
}

// InitStore builds the configured ledger store.
// Returns the store result or exits the process on failure.
func InitStore(ctx context.Context, logger *slog.Logger, cfg *config.Config) *backend.Result {
	factory := backend.NewFactory(logger)
	result, err := factory.CreateStore(ctx, backend.Config{
		Type:         backend.BackendType(cfg.Backend),
		LedgerFile:   cfg.LedgerFile,
		SQLiteDBPath: cfg.SQLiteDBPath,
	})
	if err != nil {
		logger.Error("Failed to initialize ledger store", "error", err, "backend", cfg.Backend)
		os.Exit(1)
	}
	return result
}

// CloseStore runs the store cleanup, logging any failure.
func CloseStore(logger *slog.Logger, result *backend.Result) {
	if result == nil || result.Cleanup == nil {
		return
	}
	if err := result.Cleanup(); err != nil {
		logger.Error("Failed to close ledger store", "error", err)
	}
}
