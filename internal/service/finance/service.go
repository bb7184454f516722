package finance

import (
	"context"
	"fmt"

	"github.com/edusuite/institute-backend-go/internal/domain/finance"
	"github.com/edusuite/institute-backend-go/internal/domain/transaction"
	"github.com/edusuite/institute-backend-go/internal/pkg/period"
	"github.com/edusuite/institute-backend-go/internal/pkg/validator"
)

type FinanceServiceImpl struct {
	analytics          finance.AnalyticsSource
	transactionService transaction.TransactionService
}

func NewFinanceService(
	analytics finance.AnalyticsSource,
	transactionService transaction.TransactionService,
) finance.FinanceService {
	return &FinanceServiceImpl{
		analytics:          analytics,
		transactionService: transactionService,
	}
}

func (s *FinanceServiceImpl) GetOverview(ctx context.Context, periodStr string) (finance.OverviewResponse, error) {
	pd, err := period.Parse(periodStr)
	if err != nil {
		return finance.OverviewResponse{}, validator.ValidationErrors{
			{Field: "period", Message: "must be in YYYY-MM format"},
		}
	}

	// All three inputs are captured back to back so the summary reflects one
	// consistent snapshot of the period.
	revenue, err := s.analytics.TheoreticalRevenue(ctx, pd)
	if err != nil {
		return finance.OverviewResponse{}, fmt.Errorf("failed to get theoretical revenue: %w", err)
	}

	received, err := s.analytics.ReceivedRevenue(ctx, pd)
	if err != nil {
		return finance.OverviewResponse{}, fmt.Errorf("failed to get received revenue: %w", err)
	}

	stats, err := s.transactionService.GetStats(ctx, pd.String())
	if err != nil {
		return finance.OverviewResponse{}, fmt.Errorf("failed to get expense stats: %w", err)
	}

	summary := finance.Summarize(revenue, received, stats.TotalExpense)

	return finance.OverviewResponse{
		Period:             pd.String(),
		TheoreticalRevenue: revenue,
		ReceivedRevenue:    received,
		TotalExpenses:      stats.TotalExpense,
		NetCash:            summary.NetCash,
		Unpaid:             summary.Unpaid,
		CashAlert:          summary.NetCash.IsNegative(),
	}, nil
}
