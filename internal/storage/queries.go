package storage

import (
	"context"
	"database/sql"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Queries bundles the SQL statements for the expenses table.
type Queries struct {
	db DBTX
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

// WithTx returns Queries bound to the given transaction.
func (q *Queries) WithTx(tx *sql.Tx) *Queries {
	return &Queries{db: tx}
}

// Expense is the row shape of the expenses table. Amounts are stored as
// integer cents, dates as ISO-8601 text so ORDER BY matches ledger order.
type Expense struct {
	ID          string
	AmountCents int64
	Category    string
	Note        string
	Date        string
}

type InsertExpenseParams struct {
	ID          string
	AmountCents int64
	Category    string
	Note        string
	Date        string
}

const insertExpense = `
INSERT INTO expenses (id, amount_cents, category, note, date)
VALUES (?, ?, ?, ?, ?)`

func (q *Queries) InsertExpense(ctx context.Context, arg InsertExpenseParams) error {
	_, err := q.db.ExecContext(ctx, insertExpense,
		arg.ID, arg.AmountCents, arg.Category, arg.Note, arg.Date)
	return err
}

const listExpenses = `
SELECT id, amount_cents, category, note, date
FROM expenses
ORDER BY date DESC, id`

func (q *Queries) ListExpenses(ctx context.Context) ([]Expense, error) {
	rows, err := q.db.QueryContext(ctx, listExpenses)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []Expense
	for rows.Next() {
		var e Expense
		if err := rows.Scan(&e.ID, &e.AmountCents, &e.Category, &e.Note, &e.Date); err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

const deleteAllExpenses = `DELETE FROM expenses`

func (q *Queries) DeleteAllExpenses(ctx context.Context) error {
	_, err := q.db.ExecContext(ctx, deleteAllExpenses)
	return err
}
