package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type Config struct {
	// Backend selection
	Backend string

	// JSON file backend
	LedgerFile string

	// SQLite backend
	SQLiteDBPath string

	// Date handling: "now" substitutes the current time for an
	// unparseable date (with a warning), "reject" refuses the input.
	DateFallback string
}

func Load() *Config {
	return &Config{
		Backend:      getEnv("LEDGER_BACKEND", "json"),
		LedgerFile:   getEnv("LEDGER_FILE", "expenses.json"),
		SQLiteDBPath: getEnv("SQLITE_DB_PATH", "./data/expenses.db"),
		DateFallback: getEnv("DATE_FALLBACK", "now"),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	switch c.Backend {
	case "json", "sqlite":
	default:
		errors = append(errors, fmt.Sprintf("invalid backend '%s': must be one of [json sqlite]", c.Backend))
	}

	if c.Backend == "json" && strings.TrimSpace(c.LedgerFile) == "" {
		errors = append(errors, "ledger file path cannot be empty when using json backend")
	}

	if c.Backend == "sqlite" {
		if c.SQLiteDBPath == "" {
			errors = append(errors, "SQLite database path cannot be empty when using sqlite backend")
		} else {
			dir := filepath.Dir(c.SQLiteDBPath)
			if dir != "." && dir != "" {
				if _, err := os.Stat(dir); os.IsNotExist(err) {
					if err := os.MkdirAll(dir, 0755); err != nil {
						errors = append(errors, fmt.Sprintf("cannot create SQLite database directory '%s': %v", dir, err))
					}
				}
			}
		}
	}

	switch c.DateFallback {
	case "now", "reject":
	default:
		errors = append(errors, fmt.Sprintf("invalid date fallback '%s': must be 'now' or 'reject'", c.DateFallback))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
