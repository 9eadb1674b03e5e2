// Package shell implements the interactive expense tracker menu.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"expenses/internal/backend"
	"expenses/internal/core"
)

// Session holds the in-memory ledger for one interactive run. The ledger
// is loaded once at startup and re-saved in full after every mutation;
// there is no batching and no partial write.
type Session struct {
	store   backend.Store
	factory core.Factory
	in      *bufio.Scanner
	out     io.Writer
	records []core.Record
}

// NewSession wires a session to its store and console streams. Reader and
// writer are injected so scripted sessions can drive the menu in tests.
func NewSession(store backend.Store, factory core.Factory, in io.Reader, out io.Writer) *Session {
	return &Session{
		store:   store,
		factory: factory,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// Run drives the menu loop until the user picks Exit or input ends.
func (s *Session) Run(ctx context.Context) error {
	records, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load ledger: %w", err)
	}
	s.records = records

	for {
		s.printMenu()
		choice, ok := s.readLine()
		if !ok {
			return nil
		}
		switch choice {
		case "0":
			fmt.Fprintln(s.out, "Goodbye!")
			return nil
		case "1":
			s.addExpense(ctx)
		case "2":
			s.viewAll()
		case "3":
			s.viewTotals()
		case "4":
			s.searchExpenses()
		case "5":
			s.deleteExpense(ctx)
		case "6":
			s.exportSave(ctx)
		default:
			fmt.Fprintln(s.out, "Invalid choice. Try again.")
		}
	}
}

func (s *Session) printMenu() {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "Personal Expense Tracker")
	fmt.Fprintln(s.out, strings.Repeat("-", 25))
	fmt.Fprintln(s.out, "1. Add an expense")
	fmt.Fprintln(s.out, "2. View all expenses")
	fmt.Fprintln(s.out, "3. View totals & category summary")
	fmt.Fprintln(s.out, "4. Search expenses")
	fmt.Fprintln(s.out, "5. Delete an expense (by ID)")
	fmt.Fprintln(s.out, "6. Export expenses to file (save)")
	fmt.Fprintln(s.out, "0. Exit")
	fmt.Fprint(s.out, "Choose an option: ")
}

func (s *Session) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *Session) prompt(label string) (string, bool) {
	fmt.Fprint(s.out, label)
	return s.readLine()
}

func (s *Session) addExpense(ctx context.Context) {
	var amount string
	for {
		text, ok := s.prompt("Enter amount (numbers only, e.g. 250.50): ")
		if !ok {
			return
		}
		if _, err := core.ParseAmount(text); err != nil {
			fmt.Fprintln(s.out, "Invalid amount. Try again.")
			continue
		}
		amount = text
		break
	}

	category, ok := s.prompt("Enter category (e.g. Food, Travel, Bills): ")
	if !ok {
		return
	}
	note, ok := s.prompt("Optional note: ")
	if !ok {
		return
	}

	for {
		date, ok := s.prompt("Date (YYYY-MM-DD) or press Enter for today: ")
		if !ok {
			return
		}
		record, err := s.factory.NewRecord(amount, category, note, date)
		if errors.Is(err, core.ErrInvalidDate) {
			// Only reached in reject mode; the default mode substitutes now.
			fmt.Fprintln(s.out, "Invalid date format. Try again.")
			continue
		}
		if err != nil {
			fmt.Fprintln(s.out, "Could not create expense:", err)
			return
		}
		s.records = append(s.records, record)
		if s.saveLedger(ctx) {
			fmt.Fprintln(s.out, "Expense added!")
		}
		return
	}
}

func (s *Session) viewAll() {
	if len(s.records) == 0 {
		fmt.Fprintln(s.out, "No expenses found.")
		return
	}
	for _, r := range core.SortByDateDesc(s.records) {
		s.printRecord(r)
	}
}

func (s *Session) viewTotals() {
	fmt.Fprintf(s.out, "Total spending: %s\n", core.Total(s.records))
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "Spending by category:")
	ranking := core.CategoryRanking(s.records)
	if len(ranking) == 0 {
		fmt.Fprintln(s.out, "  No category data.")
		return
	}
	for _, ca := range ranking {
		fmt.Fprintf(s.out, "  %s: %s\n", ca.Name, ca.Amount)
	}
}

func (s *Session) searchExpenses() {
	keyword, ok := s.prompt("Enter search keyword (category/note/date fragment): ")
	if !ok {
		return
	}
	results := core.Search(s.records, keyword)
	if len(results) == 0 {
		fmt.Fprintln(s.out, "No matching expenses found.")
		return
	}
	for _, r := range results {
		s.printRecord(r)
	}
}

func (s *Session) deleteExpense(ctx context.Context) {
	id, ok := s.prompt("Enter the ID of the expense to delete: ")
	if !ok {
		return
	}
	remaining, err := core.DeleteByID(s.records, id)
	if err != nil {
		fmt.Fprintln(s.out, "ID not found. No changes made.")
		return
	}
	s.records = remaining
	if s.saveLedger(ctx) {
		fmt.Fprintln(s.out, "Expense deleted.")
	}
}

func (s *Session) exportSave(ctx context.Context) {
	if s.saveLedger(ctx) {
		fmt.Fprintln(s.out, "Ledger saved.")
	}
}

// saveLedger persists the full ledger. Failures are reported and the
// session continues with its in-memory state.
func (s *Session) saveLedger(ctx context.Context) bool {
	if err := s.store.Save(ctx, s.records); err != nil {
		slog.ErrorContext(ctx, "Unable to save expenses", "error", err)
		fmt.Fprintln(s.out, "Error: Unable to save expenses.")
		return false
	}
	return true
}

func (s *Session) printRecord(r core.Record) {
	fmt.Fprintf(s.out, "ID: %s\n", r.ID)
	fmt.Fprintf(s.out, "Date: %s\n", r.Date)
	fmt.Fprintf(s.out, "Category: %s\n", r.Category)
	fmt.Fprintf(s.out, "Amount: %s\n", r.Amount)
	if r.Note != "" {
		fmt.Fprintf(s.out, "Note: %s\n", r.Note)
	}
	fmt.Fprintln(s.out, strings.Repeat("-", 40))
}
