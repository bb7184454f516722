package payroll

import "context"

type PayrollService interface {
	// GeneratePayroll creates pending salary payments for every staff member
	// without a generated payment in the period. Re-running it for the same
	// period creates nothing new.
	GeneratePayroll(ctx context.Context, req GeneratePayrollRequest) (GeneratePayrollResponse, error)

	// MarkAsPaid settles a pending or partial payment in full.
	MarkAsPaid(ctx context.Context, id string) (SalaryPaymentResponse, error)

	// RecordManualPayment creates an already-paid payment outside the
	// generation cycle, for ad hoc or off-cycle settlements.
	RecordManualPayment(ctx context.Context, req ManualPaymentRequest) (SalaryPaymentResponse, error)

	// UpdatePayment edits the non-terminal fields of an unpaid payment.
	UpdatePayment(ctx context.Context, req UpdatePaymentRequest) (SalaryPaymentResponse, error)

	// DeletePayment removes a payment from the ledger and all aggregations.
	DeletePayment(ctx context.Context, id string) error

	ListPayments(ctx context.Context, filter PaymentFilter) (ListPaymentsResponse, error)
	GetPayrollSummary(ctx context.Context, periodStr string) (PayrollSummaryResponse, error)
}
