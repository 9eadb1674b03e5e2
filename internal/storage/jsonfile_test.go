package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"expenses/internal/core"
)

func testRecords() []core.Record {
	return []core.Record{
		{ID: "a", Amount: core.Money{Cents: 1001}, Category: "Food", Note: "lunch", Date: "2024-01-01T00:00:00"},
		{ID: "b", Amount: core.Money{Cents: 500}, Category: "Food", Note: "", Date: "2024-01-02T00:00:00"},
	}
}

func TestJSONStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewJSONStore(filepath.Join(t.TempDir(), "expenses.json"))

	want := testRecords()
	if err := store.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d records, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("record %d mismatch: want %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestJSONStoreMissingFile(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "missing.json"))

	got, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("missing file must not be an error, got %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty ledger, got %d records", len(got))
	}
}

func TestJSONStoreCorruptFile(t *testing.T) {
	cases := []string{
		`"not a list"`,
		`{`,
		`{"id": "a"}`,
	}
	for _, content := range cases {
		path := filepath.Join(t.TempDir(), "expenses.json")
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("write fixture: %v", err)
		}

		got, err := NewJSONStore(path).Load(context.Background())
		if err != nil {
			t.Fatalf("%s: corrupt file must not be an error, got %v", content, err)
		}
		if len(got) != 0 {
			t.Fatalf("%s: expected empty ledger, got %d records", content, len(got))
		}
	}
}

func TestJSONStoreSaveOverwrites(t *testing.T) {
	ctx := context.Background()
	store := NewJSONStore(filepath.Join(t.TempDir(), "expenses.json"))

	if err := store.Save(ctx, testRecords()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Save(ctx, nil); err != nil {
		t.Fatalf("save empty: %v", err)
	}

	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected overwritten empty ledger, got %d records", len(got))
	}

	data, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if strings.TrimSpace(string(data)) != "[]" {
		t.Fatalf("expected empty array on disk, got %s", data)
	}
}

func TestJSONStoreAmountSerialization(t *testing.T) {
	ctx := context.Background()
	store := NewJSONStore(filepath.Join(t.TempDir(), "expenses.json"))

	if err := store.Save(ctx, testRecords()); err != nil {
		t.Fatalf("save: %v", err)
	}
	data, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	// Amounts are plain decimal numbers, not strings.
	if !strings.Contains(string(data), `"amount": 10.01`) {
		t.Fatalf("expected numeric amount in file, got %s", data)
	}
}
