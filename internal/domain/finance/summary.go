package finance

import "github.com/shopspring/decimal"

// Summary is the headline reconciliation figure for one period.
type Summary struct {
	NetCash decimal.Decimal
	Unpaid  decimal.Decimal
}

// Summarize reconciles theoretical revenue against cash actually received
// and expenses paid. NetCash may be negative; the presentation layer surfaces
// that as an alert, not an error. Unpaid is clamped at zero: cash already
// received can never make the outstanding amount negative.
func Summarize(revenue, received, expenses decimal.Decimal) Summary {
	unpaid := revenue.Sub(received)
	if unpaid.IsNegative() {
		unpaid = decimal.Zero
	}
	return Summary{
		NetCash: received.Sub(expenses),
		Unpaid:  unpaid,
	}
}
