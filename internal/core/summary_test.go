package core

import "testing"

func TestTotal(t *testing.T) {
	if got := Total(nil); got.Cents != 0 {
		t.Fatalf("empty ledger expected 0, got %d", got.Cents)
	}

	// Per-record rounding happens at creation: 10.005 is already 10.01.
	records := []Record{
		{ID: "a", Amount: Money{Cents: 1001}, Category: "Food", Date: "2024-01-01T00:00:00"},
		{ID: "b", Amount: Money{Cents: 500}, Category: "Food", Date: "2024-01-02T00:00:00"},
	}
	if got := Total(records); got.String() != "15.01" {
		t.Fatalf("expected 15.01, got %s", got)
	}
}

func TestByCategoryPartition(t *testing.T) {
	records := []Record{
		{ID: "a", Amount: Money{Cents: 1001}, Category: "Food"},
		{ID: "b", Amount: Money{Cents: 500}, Category: "Food"},
		{ID: "c", Amount: Money{Cents: 2000}, Category: "Travel"},
		{ID: "d", Amount: Money{Cents: 75}, Category: "travel"}, // distinct key, no normalization
	}

	sums := ByCategory(records)
	if len(sums) != 3 {
		t.Fatalf("expected 3 categories, got %d", len(sums))
	}
	if sums["Food"].Cents != 1501 {
		t.Fatalf("Food expected 1501, got %d", sums["Food"].Cents)
	}

	var partitioned int64
	for _, m := range sums {
		partitioned += m.Cents
	}
	if total := Total(records); partitioned != total.Cents {
		t.Fatalf("category sums %d must equal total %d", partitioned, total.Cents)
	}
}

func TestCategoryRanking(t *testing.T) {
	records := []Record{
		{ID: "a", Amount: Money{Cents: 500}, Category: "Food"},
		{ID: "b", Amount: Money{Cents: 2000}, Category: "Travel"},
		{ID: "c", Amount: Money{Cents: 500}, Category: "Bills"},
	}

	ranking := CategoryRanking(records)
	if len(ranking) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(ranking))
	}
	if ranking[0].Name != "Travel" {
		t.Fatalf("expected Travel first, got %s", ranking[0].Name)
	}
	// Equal sums order by name.
	if ranking[1].Name != "Bills" || ranking[2].Name != "Food" {
		t.Fatalf("expected tie broken by name [Bills Food], got [%s %s]", ranking[1].Name, ranking[2].Name)
	}

	if empty := CategoryRanking(nil); len(empty) != 0 {
		t.Fatalf("empty ledger expected no ranking, got %v", empty)
	}
}
