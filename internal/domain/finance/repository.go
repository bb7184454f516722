package finance

import (
	"context"

	"github.com/edusuite/institute-backend-go/internal/pkg/period"
	"github.com/shopspring/decimal"
)

// AnalyticsSource supplies the revenue figures owned by the student billing
// side of the back office. This core only does arithmetic on top of them.
type AnalyticsSource interface {
	// TheoreticalRevenue is the total billed to students for the period.
	TheoreticalRevenue(ctx context.Context, pd period.Period) (decimal.Decimal, error)

	// ReceivedRevenue is the total of receipts actually cashed in the period.
	ReceivedRevenue(ctx context.Context, pd period.Period) (decimal.Decimal, error)
}
