package core

import (
	"sort"
	"strings"
)

// SortByDateDesc returns a copy of the ledger ordered by date, newest
// first. The input slice is left untouched.
func SortByDateDesc(records []Record) []Record {
	out := append([]Record(nil), records...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out
}

// Search returns the records whose category, note, or date contains the
// keyword, ignoring case, ordered newest first. An empty keyword matches
// every record.
func Search(records []Record, keyword string) []Record {
	kw := strings.ToLower(strings.TrimSpace(keyword))
	var hits []Record
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Category), kw) ||
			strings.Contains(strings.ToLower(r.Note), kw) ||
			strings.Contains(strings.ToLower(r.Date), kw) {
			hits = append(hits, r)
		}
	}
	return SortByDateDesc(hits)
}
