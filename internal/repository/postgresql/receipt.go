package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/edusuite/institute-backend-go/internal/domain/receipt"
	"github.com/edusuite/institute-backend-go/internal/pkg/database"
)

type receiptRepository struct {
	db *database.DB
}

func NewReceiptRepository(db *database.DB) receipt.RevenueSource {
	return &receiptRepository{db: db}
}

func (r *receiptRepository) ReceiptsForMonth(ctx context.Context, year int, month time.Month) ([]receipt.Receipt, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, total_amount, group_id, created_at
		FROM receipts
		WHERE EXTRACT(YEAR FROM created_at) = $1
			AND EXTRACT(MONTH FROM created_at) = $2
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, year, int(month))
	if err != nil {
		return nil, fmt.Errorf("failed to list receipts: %w", err)
	}
	defer rows.Close()

	var receipts []receipt.Receipt
	for rows.Next() {
		var rec receipt.Receipt
		if err := rows.Scan(&rec.ID, &rec.TotalAmount, &rec.GroupID, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan receipt: %w", err)
		}
		receipts = append(receipts, rec)
	}

	return receipts, nil
}
