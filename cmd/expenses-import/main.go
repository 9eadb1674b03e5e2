// expenses-import bulk-loads records from a JSON ledger file into the
// configured backend, skipping ids that are already present. Unlike the
// interactive shell it is non-interactive and fails loudly: a record that
// does not validate aborts the import before anything is written.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"expenses/internal/backend"
	"expenses/internal/cli"
	"expenses/internal/core"
	"expenses/internal/storage"
)

func main() {
	source := flag.String("from", "expenses.json", "JSON ledger file to import from")
	flag.Parse()

	cli.LoadEnvFile()
	logger := cli.SetupLogger()
	cfg := cli.LoadAndValidateConfig(logger)

	if _, err := os.Stat(*source); err != nil {
		logger.Error("Source ledger not readable", "error", err, "path", *source)
		os.Exit(1)
	}

	ctx := context.Background()
	result := cli.InitStore(ctx, logger, cfg)
	defer cli.CloseStore(logger, result)

	imported, skipped, err := runImport(ctx, storage.NewJSONStore(*source), result.Store)
	if err != nil {
		logger.Error("Import failed", "error", err, "source", *source)
		os.Exit(1)
	}
	logger.Info("Import complete", "source", *source, "backend", cfg.Backend,
		"imported", imported, "skipped", skipped)
}

// runImport merges the source ledger into the destination store. The
// validation stage and the merge stage run as an errgroup pipeline; a
// validation failure cancels the merge and nothing is saved.
func runImport(ctx context.Context, src, dst backend.Store) (imported, skipped int, err error) {
	existing, err := dst.Load(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("load target ledger: %w", err)
	}
	incoming, err := src.Load(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("load source ledger: %w", err)
	}

	seen := make(map[string]bool, len(existing))
	for _, r := range existing {
		seen[r.ID] = true
	}

	candidates := make(chan core.Record)
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(candidates)
		for _, r := range incoming {
			if err := r.Validate(); err != nil {
				return fmt.Errorf("record %q: %w", r.ID, err)
			}
			select {
			case candidates <- r:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	merged := existing
	g.Go(func() error {
		for r := range candidates {
			if seen[r.ID] {
				skipped++
				continue
			}
			seen[r.ID] = true
			merged = append(merged, r)
			imported++
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return 0, 0, err
	}
	if imported == 0 {
		return 0, skipped, nil
	}
	if err := dst.Save(ctx, merged); err != nil {
		return 0, 0, fmt.Errorf("save target ledger: %w", err)
	}
	return imported, skipped, nil
}
