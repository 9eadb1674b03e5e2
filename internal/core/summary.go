package core

import "sort"

// CategoryAmount is a category name with its summed spend.
type CategoryAmount struct {
	Name   string
	Amount Money
}

// Total sums every record amount. An empty ledger totals zero.
func Total(records []Record) Money {
	var cents int64
	for _, r := range records {
		cents += r.Amount.Cents
	}
	return Money{Cents: cents}
}

// ByCategory sums amounts grouped by the exact category string. No
// normalization is applied: "Food" and "food" are separate keys.
func ByCategory(records []Record) map[string]Money {
	sums := make(map[string]Money, len(records))
	for _, r := range records {
		sums[r.Category] = Money{Cents: sums[r.Category].Cents + r.Amount.Cents}
	}
	return sums
}

// CategoryRanking orders category sums by descending amount. Equal sums
// order ascending by category name, keeping the ranking deterministic.
func CategoryRanking(records []Record) []CategoryAmount {
	sums := ByCategory(records)
	ranking := make([]CategoryAmount, 0, len(sums))
	for name, amount := range sums {
		ranking = append(ranking, CategoryAmount{Name: name, Amount: amount})
	}
	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].Amount.Cents != ranking[j].Amount.Cents {
			return ranking[i].Amount.Cents > ranking[j].Amount.Cents
		}
		return ranking[i].Name < ranking[j].Name
	})
	return ranking
}
