package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"expenses/internal/core"

	_ "modernc.org/sqlite"
)

// SQLiteRepository is the SQLite-backed ledger store. It keeps the same
// whole-document semantics as the JSON file: Load reads every row, Save
// replaces the full table.
type SQLiteRepository struct {
	db      *sql.DB
	queries *Queries
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{
		db:      db,
		queries: New(db),
	}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Load implements backend.Store. A query failure is reported as an empty
// ledger with a warning, matching the recovery policy of the file store.
func (r *SQLiteRepository) Load(ctx context.Context) ([]core.Record, error) {
	rows, err := r.queries.ListExpenses(ctx)
	if err != nil {
		slog.WarnContext(ctx, "Could not read expenses table, starting with empty ledger",
			"error", err)
		return []core.Record{}, nil
	}

	records := make([]core.Record, len(rows))
	for i, e := range rows {
		records[i] = core.Record{
			ID:       e.ID,
			Amount:   core.Money{Cents: e.AmountCents},
			Category: e.Category,
			Note:     e.Note,
			Date:     e.Date,
		}
	}
	return records, nil
}

// Save implements backend.Store by replacing the whole expenses table in
// one transaction.
func (r *SQLiteRepository) Save(ctx context.Context, records []core.Record) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := r.queries.WithTx(tx)
	if err := qtx.DeleteAllExpenses(ctx); err != nil {
		return fmt.Errorf("clear expenses: %w", err)
	}
	for _, rec := range records {
		err := qtx.InsertExpense(ctx, InsertExpenseParams{
			ID:          rec.ID,
			AmountCents: rec.Amount.Cents,
			Category:    rec.Category,
			Note:        rec.Note,
			Date:        rec.Date,
		})
		if err != nil {
			return fmt.Errorf("insert expense %s: %w", rec.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
