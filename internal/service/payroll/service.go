package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/edusuite/institute-backend-go/internal/domain/payroll"
	"github.com/edusuite/institute-backend-go/internal/domain/personnel"
	"github.com/edusuite/institute-backend-go/internal/domain/receipt"
	"github.com/edusuite/institute-backend-go/internal/pkg/period"
	"github.com/edusuite/institute-backend-go/internal/pkg/validator"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	payrollRepo   payroll.PayrollRepository
	personnelRepo personnel.PersonnelRepository
	revenue       receipt.RevenueSource
	groupScoped   bool
}

// NewPayrollService builds the payroll service. groupScoped selects whether
// percentage plans are computed from the whole institute's monthly revenue
// (historical behavior) or only from receipts of the person's own groups.
func NewPayrollService(
	payrollRepo payroll.PayrollRepository,
	personnelRepo personnel.PersonnelRepository,
	revenue receipt.RevenueSource,
	groupScoped bool,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		payrollRepo:   payrollRepo,
		personnelRepo: personnelRepo,
		revenue:       revenue,
		groupScoped:   groupScoped,
	}
}

// ========== GENERATION ==========

func (s *PayrollServiceImpl) GeneratePayroll(ctx context.Context, req payroll.GeneratePayrollRequest) (payroll.GeneratePayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.GeneratePayrollResponse{}, err
	}

	pd, err := period.Parse(req.Period)
	if err != nil {
		return payroll.GeneratePayrollResponse{}, payroll.ErrInvalidPeriod
	}

	staff, err := s.personnelRepo.List(ctx)
	if err != nil {
		return payroll.GeneratePayrollResponse{}, fmt.Errorf("failed to list personnel: %w", err)
	}

	existing, err := s.payrollRepo.ListGeneratedByPeriod(ctx, pd)
	if err != nil {
		return payroll.GeneratePayrollResponse{}, fmt.Errorf("failed to list existing payments: %w", err)
	}
	alreadyGenerated := make(map[string]bool, len(existing))
	for _, p := range existing {
		alreadyGenerated[p.PersonnelID] = true
	}

	receipts, err := s.revenue.ReceiptsForMonth(ctx, pd.Year, pd.Month)
	if err != nil {
		return payroll.GeneratePayrollResponse{}, fmt.Errorf("failed to load receipts for %s: %w", pd, err)
	}

	var created []payroll.SalaryPayment
	for _, person := range staff {
		if alreadyGenerated[person.ID] {
			continue
		}

		amount := payroll.CalculateSalary(person.Plan, receipts, s.groupScoped)

		planType := personnel.PlanType("")
		if person.Plan != nil {
			planType = person.Plan.Type()
		}

		payment := payroll.SalaryPayment{
			ID:                uuid.NewString(),
			PersonnelID:       person.ID,
			PersonnelName:     person.Name,
			PersonnelCategory: person.Category,
			PlanType:          planType,
			Period:            pd,
			CalculatedAmount:  amount,
			PaidAmount:        decimal.Zero,
			Status:            payroll.PaymentStatusPending,
			Source:            payroll.PaymentSourceGenerated,
		}

		stored, err := s.payrollRepo.CreatePayment(ctx, payment)
		if err != nil {
			// Lost the race against a concurrent generation run; the partial
			// unique index already holds a record for this pair.
			if errors.Is(err, payroll.ErrPaymentAlreadyExists) {
				continue
			}
			return payroll.GeneratePayrollResponse{}, fmt.Errorf("failed to create payment for personnel %s: %w", person.ID, err)
		}
		created = append(created, stored)
	}

	return payroll.GeneratePayrollResponse{
		Period:   pd.String(),
		Created:  len(created),
		Payments: mapToPaymentResponses(created),
	}, nil
}

// ========== LEDGER ==========

func (s *PayrollServiceImpl) MarkAsPaid(ctx context.Context, id string) (payroll.SalaryPaymentResponse, error) {
	payment, err := s.payrollRepo.GetPaymentByID(ctx, id)
	if err != nil {
		return payroll.SalaryPaymentResponse{}, err
	}

	if payment.Status == payroll.PaymentStatusPaid {
		return payroll.SalaryPaymentResponse{}, payroll.ErrPaymentAlreadyPaid
	}

	now := time.Now()
	payment.Status = payroll.PaymentStatusPaid
	payment.PaidAmount = payment.CalculatedAmount
	payment.PaymentDate = &now

	if err := s.payrollRepo.UpdatePayment(ctx, payment); err != nil {
		return payroll.SalaryPaymentResponse{}, err
	}

	return mapToPaymentResponse(payment), nil
}

func (s *PayrollServiceImpl) RecordManualPayment(ctx context.Context, req payroll.ManualPaymentRequest) (payroll.SalaryPaymentResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.SalaryPaymentResponse{}, err
	}

	person, err := s.personnelRepo.GetByID(ctx, req.PersonnelID)
	if err != nil {
		return payroll.SalaryPaymentResponse{}, err
	}

	paymentDate := time.Now()
	if req.PaymentDate != nil {
		if parsed, ok := validator.IsValidDate(*req.PaymentDate); ok {
			paymentDate = parsed
		}
	}

	planType := personnel.PlanType("")
	if person.Plan != nil {
		planType = person.Plan.Type()
	}

	payment := payroll.SalaryPayment{
		ID:                uuid.NewString(),
		PersonnelID:       person.ID,
		PersonnelName:     person.Name,
		PersonnelCategory: person.Category,
		PlanType:          planType,
		Period:            period.Of(paymentDate),
		CalculatedAmount:  req.Amount,
		PaidAmount:        req.Amount,
		Status:            payroll.PaymentStatusPaid,
		Source:            payroll.PaymentSourceManual,
		PaymentDate:       &paymentDate,
		Notes:             req.Notes,
	}

	stored, err := s.payrollRepo.CreatePayment(ctx, payment)
	if err != nil {
		return payroll.SalaryPaymentResponse{}, err
	}

	return mapToPaymentResponse(stored), nil
}

func (s *PayrollServiceImpl) UpdatePayment(ctx context.Context, req payroll.UpdatePaymentRequest) (payroll.SalaryPaymentResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.SalaryPaymentResponse{}, err
	}

	payment, err := s.payrollRepo.GetPaymentByID(ctx, req.ID)
	if err != nil {
		return payroll.SalaryPaymentResponse{}, err
	}

	if payment.Status == payroll.PaymentStatusPaid {
		return payroll.SalaryPaymentResponse{}, payroll.ErrPaymentAlreadyPaid
	}

	if req.CalculatedAmount != nil {
		payment.CalculatedAmount = *req.CalculatedAmount
	}
	if req.Notes != nil {
		payment.Notes = req.Notes
	}
	if req.PaidAmount != nil {
		if req.PaidAmount.GreaterThan(payment.CalculatedAmount) {
			return payroll.SalaryPaymentResponse{}, validator.ValidationErrors{
				{Field: "paid_amount", Message: "cannot exceed calculated amount"},
			}
		}
		payment.PaidAmount = *req.PaidAmount
		payment.Status = statusForPaidAmount(payment.PaidAmount, payment.CalculatedAmount)
		if payment.Status == payroll.PaymentStatusPaid && payment.PaymentDate == nil {
			now := time.Now()
			payment.PaymentDate = &now
		}
	}

	if err := s.payrollRepo.UpdatePayment(ctx, payment); err != nil {
		return payroll.SalaryPaymentResponse{}, err
	}

	return mapToPaymentResponse(payment), nil
}

func (s *PayrollServiceImpl) DeletePayment(ctx context.Context, id string) error {
	return s.payrollRepo.DeletePayment(ctx, id)
}

func (s *PayrollServiceImpl) ListPayments(ctx context.Context, filter payroll.PaymentFilter) (payroll.ListPaymentsResponse, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 20
	}

	payments, totalCount, err := s.payrollRepo.ListPayments(ctx, filter)
	if err != nil {
		return payroll.ListPaymentsResponse{}, err
	}

	return payroll.ListPaymentsResponse{
		Data:       mapToPaymentResponses(payments),
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

// ========== SUMMARY ==========

func (s *PayrollServiceImpl) GetPayrollSummary(ctx context.Context, periodStr string) (payroll.PayrollSummaryResponse, error) {
	pd, err := period.Parse(periodStr)
	if err != nil {
		return payroll.PayrollSummaryResponse{}, payroll.ErrInvalidPeriod
	}

	return s.payrollRepo.GetSummary(ctx, pd)
}

// ========== HELPERS ==========

// statusForPaidAmount keeps the linear pending -> partial -> paid machine
// consistent after a free-form paid amount edit.
func statusForPaidAmount(paid, calculated decimal.Decimal) payroll.PaymentStatus {
	switch {
	case !paid.IsPositive():
		return payroll.PaymentStatusPending
	case paid.LessThan(calculated):
		return payroll.PaymentStatusPartial
	default:
		return payroll.PaymentStatusPaid
	}
}

func mapToPaymentResponse(p payroll.SalaryPayment) payroll.SalaryPaymentResponse {
	var paymentDateStr *string
	if p.PaymentDate != nil {
		str := p.PaymentDate.Format("2006-01-02")
		paymentDateStr = &str
	}

	return payroll.SalaryPaymentResponse{
		ID:                p.ID,
		PersonnelID:       p.PersonnelID,
		PersonnelName:     p.PersonnelName,
		PersonnelCategory: string(p.PersonnelCategory),
		PlanType:          string(p.PlanType),
		Period:            p.Period.String(),
		CalculatedAmount:  p.CalculatedAmount,
		PaidAmount:        p.PaidAmount,
		Status:            string(p.Status),
		Source:            string(p.Source),
		PaymentDate:       paymentDateStr,
		Notes:             p.Notes,
	}
}

func mapToPaymentResponses(payments []payroll.SalaryPayment) []payroll.SalaryPaymentResponse {
	result := make([]payroll.SalaryPaymentResponse, 0, len(payments))
	for _, p := range payments {
		result = append(result, mapToPaymentResponse(p))
	}
	return result
}
