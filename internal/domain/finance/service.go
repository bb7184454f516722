package finance

import "context"

type FinanceService interface {
	// GetOverview captures revenue, received cash and expenses for the period
	// in one snapshot and reconciles them.
	GetOverview(ctx context.Context, periodStr string) (OverviewResponse, error)
}
