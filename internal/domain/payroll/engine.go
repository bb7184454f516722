package payroll

import (
	"github.com/edusuite/institute-backend-go/internal/domain/personnel"
	"github.com/edusuite/institute-backend-go/internal/domain/receipt"
	"github.com/edusuite/institute-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// CalculateSalary computes the amount owed under plan given the receipts of
// the target month. It is pure and total: misconfigured percentage plans
// (zero rate, no assigned groups) yield zero instead of an error, and fixed
// plans ignore the receipts entirely.
//
// When groupScoped is false the whole institute's revenue for the month is
// the percentage base, matching the historical behavior of the back office.
// When true, only receipts attributed to one of the plan's groups count.
func CalculateSalary(plan personnel.CompensationPlan, receipts []receipt.Receipt, groupScoped bool) decimal.Decimal {
	switch p := plan.(type) {
	case personnel.FixedMonthly:
		return p.Amount
	case personnel.Forfait:
		return p.Amount
	case personnel.Percentage:
		if !p.Rate.IsPositive() || len(p.GroupIDs) == 0 {
			return decimal.Zero
		}
		total := decimal.Zero
		for _, r := range receipts {
			if groupScoped && (r.GroupID == nil || !validator.IsInSlice(*r.GroupID, p.GroupIDs)) {
				continue
			}
			total = total.Add(r.TotalAmount)
		}
		return total.Mul(p.Rate).Div(oneHundred)
	default:
		// Unknown or missing plan: nothing owed.
		return decimal.Zero
	}
}
