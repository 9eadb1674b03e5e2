package backend

import (
	"context"

	"expenses/internal/core"
)

// Store is the persistence surface for the ledger: whole-document load
// and save, nothing finer-grained. Both operations are best-effort on the
// read side; Load never fails the session for recoverable problems.
type Store interface {
	// Load reads the full ledger. Missing backing data yields an empty
	// ledger and a nil error; malformed data is logged and treated the
	// same way.
	Load(ctx context.Context) ([]core.Record, error)
	// Save serializes the full ledger and overwrites the backing store.
	// A failed save may leave the store in an undefined state.
	Save(ctx context.Context, records []core.Record) error
}

// CleanupFunc represents a cleanup function for resources
type CleanupFunc func() error

// Result contains the store instance and optional cleanup function
type Result struct {
	Store   Store
	Cleanup CleanupFunc
}

// Factory creates stores based on configuration
type Factory interface {
	CreateStore(ctx context.Context, config Config) (*Result, error)
}

// Config holds configuration for store creation
type Config struct {
	// Backend type
	Type BackendType

	// JSON file backend
	LedgerFile string

	// SQLite backend
	SQLiteDBPath string
}

// BackendType represents the type of backing store
type BackendType string

const (
	JSONBackend   BackendType = "json"
	SQLiteBackend BackendType = "sqlite"
)

// String implements fmt.Stringer
func (bt BackendType) String() string {
	return string(bt)
}

// IsValid returns true if the backend type is valid
func (bt BackendType) IsValid() bool {
	switch bt {
	case JSONBackend, SQLiteBackend:
		return true
	default:
		return false
	}
}
