package receipt

import (
	"time"

	"github.com/shopspring/decimal"
)

// Receipt - a dated revenue record from the institute's income stream.
// Read-only to the payroll core; the student billing screens create them.
type Receipt struct {
	ID          string
	TotalAmount decimal.Decimal
	GroupID     *string
	CreatedAt   time.Time
}
