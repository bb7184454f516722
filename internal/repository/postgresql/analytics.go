package postgresql

import (
	"context"
	"fmt"

	"github.com/edusuite/institute-backend-go/internal/domain/finance"
	"github.com/edusuite/institute-backend-go/internal/pkg/database"
	"github.com/edusuite/institute-backend-go/internal/pkg/period"
	"github.com/shopspring/decimal"
)

// analyticsRepository reads the revenue figures owned by the student billing
// screens: what was invoiced for a period and what was actually cashed.
type analyticsRepository struct {
	db *database.DB
}

func NewAnalyticsRepository(db *database.DB) finance.AnalyticsSource {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) TheoreticalRevenue(ctx context.Context, pd period.Period) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM student_billings
		WHERE period_year = $1 AND period_month = $2
	`

	var total decimal.Decimal
	if err := q.QueryRow(ctx, query, pd.Year, int(pd.Month)).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to get theoretical revenue: %w", err)
	}

	return total, nil
}

func (r *analyticsRepository) ReceivedRevenue(ctx context.Context, pd period.Period) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(total_amount), 0)
		FROM receipts
		WHERE EXTRACT(YEAR FROM created_at) = $1
			AND EXTRACT(MONTH FROM created_at) = $2
	`

	var total decimal.Decimal
	if err := q.QueryRow(ctx, query, pd.Year, int(pd.Month)).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to get received revenue: %w", err)
	}

	return total, nil
}
