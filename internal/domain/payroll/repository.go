package payroll

import (
	"context"

	"github.com/edusuite/institute-backend-go/internal/pkg/period"
)

// PayrollRepository defines data access for the salary payment ledger.
// The database enforces at most one generated payment per (personnel, period)
// through a partial unique index; CreatePayment surfaces a violation as
// ErrPaymentAlreadyExists. That constraint, not the caller's lookup, is the
// authoritative guard against concurrent generation.
type PayrollRepository interface {
	CreatePayment(ctx context.Context, p SalaryPayment) (SalaryPayment, error)
	GetPaymentByID(ctx context.Context, id string) (SalaryPayment, error)
	ListGeneratedByPeriod(ctx context.Context, pd period.Period) ([]SalaryPayment, error)
	ListPayments(ctx context.Context, filter PaymentFilter) ([]SalaryPayment, int64, error)
	UpdatePayment(ctx context.Context, p SalaryPayment) error
	DeletePayment(ctx context.Context, id string) error
	GetSummary(ctx context.Context, pd period.Period) (PayrollSummaryResponse, error)
}
