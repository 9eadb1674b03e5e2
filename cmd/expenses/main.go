package main

import (
	"context"
	"os"

	"expenses/internal/cli"
	"expenses/internal/core"
	"expenses/internal/shell"
)

func main() {
	// Load .env file for local development (ignore errors when absent)
	cli.LoadEnvFile()

	// Setup structured logging
	logger := cli.SetupLogger()

	// Load configuration
	cfg := cli.LoadAndValidateConfig(logger)

	ctx := context.Background()
	result := cli.InitStore(ctx, logger, cfg)
	defer cli.CloseStore(logger, result)

	factory := core.Factory{Fallback: core.DateFallback(cfg.DateFallback)}

	logger.Info("Starting expense tracker", "backend", cfg.Backend)
	session := shell.NewSession(result.Store, factory, os.Stdin, os.Stdout)
	if err := session.Run(ctx); err != nil {
		logger.Error("Session error", "error", err)
		os.Exit(1)
	}
}
