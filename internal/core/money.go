// Package core holds the expense ledger domain: records, money handling,
// aggregation, and search.
package core

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Money is an amount in integer cents. Amounts are rounded to two
// fractional digits when parsed, so later arithmetic stays exact.
type Money struct {
	Cents int64
}

// ParseAmount converts a decimal string to cents.
//
// Both dot (12.34) and comma (12,34) separators are accepted, with half-up
// rounding on the third fractional digit. Zero is a valid amount; negative
// or non-numeric input fails with ErrInvalidAmount.
//
// Examples:
//
//	ParseAmount("250.50") -> 25050, nil
//	ParseAmount("10.005") -> 1001, nil (rounds up)
//	ParseAmount("-1")     -> 0, ErrInvalidAmount
func ParseAmount(s string) (int64, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", ".")
	intPart, fracPart, _ := strings.Cut(s, ".")
	if intPart == "" && fracPart == "" {
		return 0, ErrInvalidAmount
	}
	if intPart == "" {
		intPart = "0"
	}
	if !isDigits(intPart) || !isDigits(fracPart) {
		return 0, ErrInvalidAmount
	}

	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	if iv > math.MaxInt64/100-1 {
		return 0, ErrInvalidAmount
	}

	cents := iv * 100
	if len(fracPart) > 0 {
		cents += int64(fracPart[0]-'0') * 10
	}
	if len(fracPart) > 1 {
		cents += int64(fracPart[1] - '0')
	}
	if len(fracPart) > 2 && fracPart[2] >= '5' {
		cents++
	}
	return cents, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Float returns the amount as a float64 for display purposes. Use cents
// for calculations.
func (m Money) Float() float64 {
	return float64(m.Cents) / 100.0
}

// String formats the amount with two fractional digits.
func (m Money) String() string {
	return strconv.FormatFloat(m.Float(), 'f', 2, 64)
}

// MarshalJSON writes the amount as a plain decimal number, e.g. 12.34.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalJSON accepts a JSON number and rounds it to cents, so a ledger
// file edited by hand still loads with two-digit amounts.
func (m *Money) UnmarshalJSON(b []byte) error {
	s := string(b)
	if cents, err := ParseAmount(s); err == nil {
		m.Cents = cents
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidAmount, s)
	}
	m.Cents = int64(math.Round(v * 100))
	return nil
}
