package core

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DateLayout is the timestamp format stored on every record, second
// precision. Lexicographic comparison of two values in this layout matches
// chronological order, so the ledger sorts dates as plain strings.
const DateLayout = "2006-01-02T15:04:05"

const dateOnlyLayout = "2006-01-02"

// DefaultCategory is assigned when the user leaves the category blank.
const DefaultCategory = "Uncategorized"

var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrInvalidDate   = errors.New("invalid date")
	ErrNotFound      = errors.New("record not found")
)

type (
	// Record is a single expense entry. Records are immutable once
	// created; the only mutation the ledger supports is deletion by ID.
	Record struct {
		ID       string `json:"id"`
		Amount   Money  `json:"amount"`
		Category string `json:"category"`
		Note     string `json:"note"`
		Date     string `json:"date"`
	}

	// DateFallback selects what the factory does with an unparseable date.
	DateFallback string

	// Factory builds validated records from raw user input. The zero value
	// substitutes the current time for bad dates (FallbackNow) and uses
	// the wall clock.
	Factory struct {
		Fallback DateFallback
		Now      func() time.Time
	}
)

const (
	// FallbackNow replaces an unparseable date with the current time and
	// logs a warning carrying the rejected input.
	FallbackNow DateFallback = "now"
	// FallbackReject returns ErrInvalidDate instead of substituting.
	FallbackReject DateFallback = "reject"
)

// IsValid returns true if the fallback mode is known.
func (f DateFallback) IsValid() bool {
	switch f {
	case FallbackNow, FallbackReject:
		return true
	default:
		return false
	}
}

// NewRecord constructs a Record from raw input fields.
//
// The amount must parse per ParseAmount or ErrInvalidAmount is returned.
// A blank category becomes DefaultCategory. The date accepts a full
// timestamp in DateLayout, then a plain YYYY-MM-DD (midnight); anything
// else is resolved by the fallback mode. A generated UUID becomes the
// record's immutable identity.
func (f Factory) NewRecord(amountText, category, note, dateText string) (Record, error) {
	cents, err := ParseAmount(amountText)
	if err != nil {
		return Record{}, err
	}

	category = strings.TrimSpace(category)
	if category == "" {
		category = DefaultCategory
	}

	date, err := f.resolveDate(strings.TrimSpace(dateText))
	if err != nil {
		return Record{}, err
	}

	return Record{
		ID:       uuid.NewString(),
		Amount:   Money{Cents: cents},
		Category: category,
		Note:     strings.TrimSpace(note),
		Date:     date,
	}, nil
}

func (f Factory) resolveDate(input string) (string, error) {
	now := f.Now
	if now == nil {
		now = time.Now
	}
	if input == "" {
		return now().Format(DateLayout), nil
	}
	if t, err := time.Parse(DateLayout, input); err == nil {
		return t.Format(DateLayout), nil
	}
	if t, err := time.Parse(dateOnlyLayout, input); err == nil {
		return t.Format(DateLayout), nil
	}
	if f.Fallback == FallbackReject {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, input)
	}
	slog.Warn("Unparseable date, using current date/time", "input", input)
	return now().Format(DateLayout), nil
}

// Validate checks a record that did not come through the factory, such as
// one read from an imported ledger file.
func (r Record) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return errors.New("empty record id")
	}
	if r.Amount.Cents < 0 {
		return ErrInvalidAmount
	}
	if strings.TrimSpace(r.Category) == "" {
		return errors.New("empty category")
	}
	if _, err := time.Parse(DateLayout, r.Date); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, r.Date)
	}
	return nil
}

// DeleteByID returns the ledger without the record matching id. The input
// slice is never modified. ErrNotFound is returned when no record matches,
// and the original slice comes back unchanged.
func DeleteByID(records []Record, id string) ([]Record, error) {
	out := make([]Record, 0, len(records))
	found := false
	for _, r := range records {
		if r.ID == id {
			found = true
			continue
		}
		out = append(out, r)
	}
	if !found {
		return records, ErrNotFound
	}
	return out, nil
}
