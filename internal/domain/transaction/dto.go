package transaction

import (
	"github.com/edusuite/institute-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateTransactionRequest struct {
	Type        string          `json:"type"` // "income" or "expense"
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description,omitempty"`
	Date        *string         `json:"date,omitempty"` // "YYYY-MM-DD", defaults to today
}

func (r *CreateTransactionRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Type != string(TypeIncome) && r.Type != string(TypeExpense) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be 'income' or 'expense'"})
	}
	if r.Amount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be non-negative"})
	}
	if validator.IsEmpty(r.Category) {
		errs = append(errs, validator.ValidationError{Field: "category", Message: "is required"})
	}
	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "must be in YYYY-MM-DD format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TransactionResponse struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description,omitempty"`
	Date        string          `json:"date"`
}

type TransactionFilter struct {
	Period *string `json:"period,omitempty"` // "YYYY-MM"
	Type   *string `json:"type,omitempty"`
}

type StatsResponse struct {
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	Balance      decimal.Decimal `json:"balance"`
}
