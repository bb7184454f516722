package payroll

import (
	"github.com/edusuite/institute-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== GENERATION DTOs ==========

type GeneratePayrollRequest struct {
	Period string `json:"period"` // "YYYY-MM"
}

func (r *GeneratePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Period) {
		errs = append(errs, validator.ValidationError{Field: "period", Message: "is required"})
	} else if !validator.IsValidPeriod(r.Period) {
		errs = append(errs, validator.ValidationError{Field: "period", Message: "must be in YYYY-MM format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type GeneratePayrollResponse struct {
	Period   string                  `json:"period"`
	Created  int                     `json:"created"`
	Payments []SalaryPaymentResponse `json:"payments"`
}

// ========== LEDGER DTOs ==========

type ManualPaymentRequest struct {
	PersonnelID string          `json:"personnel_id"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate *string         `json:"payment_date,omitempty"` // "YYYY-MM-DD", defaults to today
	Notes       *string         `json:"notes,omitempty"`
}

func (r *ManualPaymentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PersonnelID) {
		errs = append(errs, validator.ValidationError{Field: "personnel_id", Message: "is required"})
	}
	if r.Amount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be non-negative"})
	}
	if r.PaymentDate != nil {
		if _, ok := validator.IsValidDate(*r.PaymentDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "payment_date", Message: "must be in YYYY-MM-DD format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdatePaymentRequest struct {
	ID               string           `json:"-"`
	CalculatedAmount *decimal.Decimal `json:"calculated_amount,omitempty"`
	PaidAmount       *decimal.Decimal `json:"paid_amount,omitempty"`
	Notes            *string          `json:"notes,omitempty"`
}

func (r *UpdatePaymentRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.CalculatedAmount != nil && r.CalculatedAmount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "calculated_amount", Message: "must be non-negative"})
	}
	if r.PaidAmount != nil && r.PaidAmount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "paid_amount", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SalaryPaymentResponse struct {
	ID                string          `json:"id"`
	PersonnelID       string          `json:"personnel_id"`
	PersonnelName     string          `json:"personnel_name"`
	PersonnelCategory string          `json:"personnel_category"`
	PlanType          string          `json:"plan_type"`
	Period            string          `json:"period"`
	CalculatedAmount  decimal.Decimal `json:"calculated_amount"`
	PaidAmount        decimal.Decimal `json:"paid_amount"`
	Status            string          `json:"status"`
	Source            string          `json:"source"`
	PaymentDate       *string         `json:"payment_date,omitempty"`
	Notes             *string         `json:"notes,omitempty"`
}

type PaymentFilter struct {
	Period      *string `json:"period,omitempty"`
	Status      *string `json:"status,omitempty"`
	PersonnelID *string `json:"personnel_id,omitempty"`
	Page        int     `json:"page"`
	Limit       int     `json:"limit"`
}

type ListPaymentsResponse struct {
	Data       []SalaryPaymentResponse `json:"data"`
	TotalCount int64                   `json:"total_count"`
	Page       int                     `json:"page"`
	Limit      int                     `json:"limit"`
}

// ========== SUMMARY DTOs ==========

type PayrollSummaryResponse struct {
	Period          string          `json:"period"`
	PersonnelCount  int             `json:"personnel_count"`
	TotalCalculated decimal.Decimal `json:"total_calculated"`
	TotalPaid       decimal.Decimal `json:"total_paid"`
	PendingCount    int             `json:"pending_count"`
	PartialCount    int             `json:"partial_count"`
	PaidCount       int             `json:"paid_count"`
}
