package receipt

import (
	"context"
	"time"
)

// RevenueSource supplies the dated revenue records that percentage-based
// compensation is computed from.
type RevenueSource interface {
	ReceiptsForMonth(ctx context.Context, year int, month time.Month) ([]Receipt, error)
}
