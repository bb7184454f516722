package postgresql

import (
	"context"
	"fmt"

	"github.com/edusuite/institute-backend-go/internal/domain/transaction"
	"github.com/edusuite/institute-backend-go/internal/pkg/database"
	"github.com/edusuite/institute-backend-go/internal/pkg/period"
	"github.com/jackc/pgx/v5"
)

type transactionRepository struct {
	db *database.DB
}

func NewTransactionRepository(db *database.DB) transaction.TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, t transaction.Transaction) (transaction.Transaction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO transactions (id, type, amount, category, description, date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		t.ID, t.Type, t.Amount, t.Category, t.Description, t.Date,
	).Scan(&t.CreatedAt)
	if err != nil {
		return transaction.Transaction{}, fmt.Errorf("failed to create transaction: %w", err)
	}

	return t, nil
}

func (r *transactionRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM transactions WHERE id = $1 RETURNING id`

	var deletedID string
	err := q.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return transaction.ErrTransactionNotFound
		}
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	return nil
}

func (r *transactionRepository) List(ctx context.Context, pd *period.Period, typ *transaction.Type) ([]transaction.Transaction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, type, amount, category, description, date, created_at
		FROM transactions
		WHERE 1=1
	`
	args := []interface{}{}
	argIdx := 1

	if pd != nil {
		query += fmt.Sprintf(" AND EXTRACT(YEAR FROM date) = $%d AND EXTRACT(MONTH FROM date) = $%d", argIdx, argIdx+1)
		args = append(args, pd.Year, int(pd.Month))
		argIdx += 2
	}
	if typ != nil {
		query += fmt.Sprintf(" AND type = $%d", argIdx)
		args = append(args, *typ)
		argIdx++
	}

	query += " ORDER BY date DESC, created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var entries []transaction.Transaction
	for rows.Next() {
		var t transaction.Transaction
		if err := rows.Scan(&t.ID, &t.Type, &t.Amount, &t.Category, &t.Description, &t.Date, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		entries = append(entries, t)
	}

	return entries, nil
}
