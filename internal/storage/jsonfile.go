package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"expenses/internal/core"
)

// JSONStore persists the ledger as a single JSON array in one file.
type JSONStore struct {
	path string
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

// Path returns the backing file path.
func (s *JSONStore) Path() string {
	return s.path
}

// Load implements backend.Store. A missing file is an empty ledger. A
// file that cannot be read or does not hold a JSON array is logged and
// treated as empty rather than failing the session.
func (s *JSONStore) Load(ctx context.Context) ([]core.Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []core.Record{}, nil
		}
		slog.WarnContext(ctx, "Could not read ledger file, starting with empty ledger",
			"path", s.path, "error", err)
		return []core.Record{}, nil
	}

	var records []core.Record
	if err := json.Unmarshal(data, &records); err != nil {
		slog.WarnContext(ctx, "Ledger file is corrupted, starting with empty ledger",
			"path", s.path, "error", err)
		return []core.Record{}, nil
	}
	if records == nil {
		records = []core.Record{}
	}
	return records, nil
}

// Save implements backend.Store by overwriting the backing file with the
// full ledger. There is no temp-file rename: a failed write leaves the
// previous content in an undefined state, which is the contract callers
// accept.
func (s *JSONStore) Save(ctx context.Context, records []core.Record) error {
	if records == nil {
		records = []core.Record{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode ledger: %w", err)
	}
	if err := os.WriteFile(s.path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write ledger file: %w", err)
	}
	return nil
}
