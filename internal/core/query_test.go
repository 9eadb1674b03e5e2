package core

import "testing"

func testLedger() []Record {
	return []Record{
		{ID: "a", Amount: Money{Cents: 1000}, Category: "Travel", Note: "train to Rome", Date: "2024-01-01T09:00:00"},
		{ID: "b", Amount: Money{Cents: 500}, Category: "Food", Note: "lunch", Date: "2024-01-03T12:00:00"},
		{ID: "c", Amount: Money{Cents: 300}, Category: "Food", Note: "", Date: "2024-01-02T08:00:00"},
	}
}

func TestSortByDateDesc(t *testing.T) {
	records := testLedger()
	sorted := SortByDateDesc(records)

	want := []string{"b", "c", "a"}
	for i, id := range want {
		if sorted[i].ID != id {
			t.Fatalf("position %d expected %s, got %s", i, id, sorted[i].ID)
		}
	}
	if records[0].ID != "a" {
		t.Fatalf("input slice must stay unchanged")
	}
}

func TestSearch(t *testing.T) {
	records := testLedger()
	cases := []struct {
		keyword string
		want    []string
	}{
		{"travel", []string{"a"}}, // case-insensitive category match
		{"TRAIN", []string{"a"}},  // note match
		{"2024-01-0", []string{"b", "c", "a"}}, // date fragment, sorted desc
		{"", []string{"b", "c", "a"}},          // empty keyword matches all
		{"yacht", nil},
	}
	for _, tc := range cases {
		got := Search(records, tc.keyword)
		if len(got) != len(tc.want) {
			t.Fatalf("%q expected %d results, got %d", tc.keyword, len(tc.want), len(got))
		}
		for i, id := range tc.want {
			if got[i].ID != id {
				t.Fatalf("%q position %d expected %s, got %s", tc.keyword, i, id, got[i].ID)
			}
		}
	}
}
