package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/edusuite/institute-backend-go/internal/domain/payroll"
	"github.com/edusuite/institute-backend-go/internal/domain/personnel"
	"github.com/edusuite/institute-backend-go/internal/domain/receipt"
	"github.com/edusuite/institute-backend-go/internal/pkg/period"
	"github.com/edusuite/institute-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePayrollRepo mimics the partial unique index on generated payments:
// a second generated record for the same (personnel, period) is rejected
// with ErrPaymentAlreadyExists, while manual records always pass.
type fakePayrollRepo struct {
	payments map[string]payroll.SalaryPayment
}

func newFakePayrollRepo() *fakePayrollRepo {
	return &fakePayrollRepo{payments: make(map[string]payroll.SalaryPayment)}
}

func (r *fakePayrollRepo) CreatePayment(_ context.Context, p payroll.SalaryPayment) (payroll.SalaryPayment, error) {
	if p.Source == payroll.PaymentSourceGenerated {
		for _, existing := range r.payments {
			if existing.Source == payroll.PaymentSourceGenerated &&
				existing.PersonnelID == p.PersonnelID &&
				existing.Period == p.Period {
				return payroll.SalaryPayment{}, payroll.ErrPaymentAlreadyExists
			}
		}
	}
	p.CreatedAt = time.Now()
	r.payments[p.ID] = p
	return p, nil
}

func (r *fakePayrollRepo) GetPaymentByID(_ context.Context, id string) (payroll.SalaryPayment, error) {
	p, ok := r.payments[id]
	if !ok {
		return payroll.SalaryPayment{}, payroll.ErrPaymentNotFound
	}
	return p, nil
}

func (r *fakePayrollRepo) ListGeneratedByPeriod(_ context.Context, pd period.Period) ([]payroll.SalaryPayment, error) {
	var result []payroll.SalaryPayment
	for _, p := range r.payments {
		if p.Source == payroll.PaymentSourceGenerated && p.Period == pd {
			result = append(result, p)
		}
	}
	return result, nil
}

func (r *fakePayrollRepo) ListPayments(_ context.Context, filter payroll.PaymentFilter) ([]payroll.SalaryPayment, int64, error) {
	var result []payroll.SalaryPayment
	for _, p := range r.payments {
		if filter.PersonnelID != nil && p.PersonnelID != *filter.PersonnelID {
			continue
		}
		if filter.Status != nil && string(p.Status) != *filter.Status {
			continue
		}
		if filter.Period != nil && p.Period.String() != *filter.Period {
			continue
		}
		result = append(result, p)
	}
	return result, int64(len(result)), nil
}

func (r *fakePayrollRepo) UpdatePayment(_ context.Context, p payroll.SalaryPayment) error {
	if _, ok := r.payments[p.ID]; !ok {
		return payroll.ErrPaymentNotFound
	}
	r.payments[p.ID] = p
	return nil
}

func (r *fakePayrollRepo) DeletePayment(_ context.Context, id string) error {
	if _, ok := r.payments[id]; !ok {
		return payroll.ErrPaymentNotFound
	}
	delete(r.payments, id)
	return nil
}

func (r *fakePayrollRepo) GetSummary(_ context.Context, pd period.Period) (payroll.PayrollSummaryResponse, error) {
	summary := payroll.PayrollSummaryResponse{
		Period:          pd.String(),
		TotalCalculated: decimal.Zero,
		TotalPaid:       decimal.Zero,
	}
	for _, p := range r.payments {
		if p.Period != pd {
			continue
		}
		summary.PersonnelCount++
		summary.TotalCalculated = summary.TotalCalculated.Add(p.CalculatedAmount)
		summary.TotalPaid = summary.TotalPaid.Add(p.PaidAmount)
		switch p.Status {
		case payroll.PaymentStatusPending:
			summary.PendingCount++
		case payroll.PaymentStatusPartial:
			summary.PartialCount++
		case payroll.PaymentStatusPaid:
			summary.PaidCount++
		}
	}
	return summary, nil
}

type fakePersonnelRepo struct {
	staff []personnel.Personnel
}

func (r *fakePersonnelRepo) Create(_ context.Context, p personnel.Personnel) (personnel.Personnel, error) {
	r.staff = append(r.staff, p)
	return p, nil
}

func (r *fakePersonnelRepo) GetByID(_ context.Context, id string) (personnel.Personnel, error) {
	for _, p := range r.staff {
		if p.ID == id {
			return p, nil
		}
	}
	return personnel.Personnel{}, personnel.ErrPersonnelNotFound
}

func (r *fakePersonnelRepo) List(_ context.Context) ([]personnel.Personnel, error) {
	return r.staff, nil
}

type fakeRevenueSource struct {
	receipts []receipt.Receipt
}

func (r *fakeRevenueSource) ReceiptsForMonth(_ context.Context, _ int, _ time.Month) ([]receipt.Receipt, error) {
	return r.receipts, nil
}

func testStaff() []personnel.Personnel {
	return []personnel.Personnel{
		{
			ID:       "p1",
			Name:     "Alice Martin",
			Category: personnel.CategoryTeacher,
			Plan:     personnel.Percentage{Rate: decimal.NewFromInt(10), GroupIDs: []string{"g1"}},
		},
		{
			ID:       "p2",
			Name:     "Bob Durand",
			Category: personnel.CategorySecretary,
			Plan:     personnel.FixedMonthly{Amount: decimal.NewFromInt(1500)},
		},
		{
			ID:       "p3",
			Name:     "Carol Petit",
			Category: personnel.CategoryTeacher,
			Plan:     personnel.Forfait{Amount: decimal.NewFromInt(900)},
		},
	}
}

func newTestService(repo *fakePayrollRepo, staff []personnel.Personnel, receipts []receipt.Receipt) payroll.PayrollService {
	return NewPayrollService(repo, &fakePersonnelRepo{staff: staff}, &fakeRevenueSource{receipts: receipts}, false)
}

func TestGeneratePayroll(t *testing.T) {
	ctx := context.Background()
	repo := newFakePayrollRepo()
	receipts := []receipt.Receipt{
		{ID: "r1", TotalAmount: decimal.NewFromInt(30000)},
	}
	svc := newTestService(repo, testStaff(), receipts)

	resp, err := svc.GeneratePayroll(ctx, payroll.GeneratePayrollRequest{Period: "2024-03"})
	require.NoError(t, err)

	assert.Equal(t, "2024-03", resp.Period)
	assert.Equal(t, 3, resp.Created)
	assert.Len(t, resp.Payments, 3)

	byPersonnel := make(map[string]payroll.SalaryPaymentResponse)
	for _, p := range resp.Payments {
		byPersonnel[p.PersonnelID] = p
		assert.Equal(t, "pending", p.Status)
		assert.Equal(t, "generated", p.Source)
		assert.True(t, p.PaidAmount.IsZero())
	}

	assert.True(t, byPersonnel["p1"].CalculatedAmount.Equal(decimal.NewFromInt(3000)))
	assert.True(t, byPersonnel["p2"].CalculatedAmount.Equal(decimal.NewFromInt(1500)))
	assert.True(t, byPersonnel["p3"].CalculatedAmount.Equal(decimal.NewFromInt(900)))
}

func TestGeneratePayroll_Idempotent(t *testing.T) {
	ctx := context.Background()
	repo := newFakePayrollRepo()
	svc := newTestService(repo, testStaff(), nil)

	first, err := svc.GeneratePayroll(ctx, payroll.GeneratePayrollRequest{Period: "2024-03"})
	require.NoError(t, err)
	assert.Equal(t, 3, first.Created)

	second, err := svc.GeneratePayroll(ctx, payroll.GeneratePayrollRequest{Period: "2024-03"})
	require.NoError(t, err)
	assert.Equal(t, 0, second.Created)
	assert.Empty(t, second.Payments)

	assert.Len(t, repo.payments, 3)
}

func TestGeneratePayroll_FillsInNewStaff(t *testing.T) {
	ctx := context.Background()
	repo := newFakePayrollRepo()
	staffRepo := &fakePersonnelRepo{staff: testStaff()[:2]}
	svc := NewPayrollService(repo, staffRepo, &fakeRevenueSource{}, false)

	first, err := svc.GeneratePayroll(ctx, payroll.GeneratePayrollRequest{Period: "2024-03"})
	require.NoError(t, err)
	assert.Equal(t, 2, first.Created)

	// Someone hired mid-month; a re-run creates only their payment.
	staffRepo.staff = testStaff()
	second, err := svc.GeneratePayroll(ctx, payroll.GeneratePayrollRequest{Period: "2024-03"})
	require.NoError(t, err)
	require.Equal(t, 1, second.Created)
	assert.Equal(t, "p3", second.Payments[0].PersonnelID)
}

func TestGeneratePayroll_SeparatePeriods(t *testing.T) {
	ctx := context.Background()
	repo := newFakePayrollRepo()
	svc := newTestService(repo, testStaff(), nil)

	_, err := svc.GeneratePayroll(ctx, payroll.GeneratePayrollRequest{Period: "2024-03"})
	require.NoError(t, err)

	resp, err := svc.GeneratePayroll(ctx, payroll.GeneratePayrollRequest{Period: "2024-04"})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Created)
}

func TestGeneratePayroll_InvalidPeriod(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakePayrollRepo(), testStaff(), nil)

	_, err := svc.GeneratePayroll(ctx, payroll.GeneratePayrollRequest{Period: "03-2024"})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestGeneratePayroll_MisconfiguredPercentagePlan(t *testing.T) {
	ctx := context.Background()
	repo := newFakePayrollRepo()
	staff := []personnel.Personnel{
		{
			ID:       "p9",
			Name:     "Dana Leroy",
			Category: personnel.CategoryTeacher,
			Plan:     personnel.Percentage{Rate: decimal.Zero, GroupIDs: []string{"g1"}},
		},
	}
	svc := newTestService(repo, staff, []receipt.Receipt{{TotalAmount: decimal.NewFromInt(10000)}})

	resp, err := svc.GeneratePayroll(ctx, payroll.GeneratePayrollRequest{Period: "2024-03"})
	require.NoError(t, err)

	// A broken plan still yields a (zero) payment, never an error.
	require.Equal(t, 1, resp.Created)
	assert.True(t, resp.Payments[0].CalculatedAmount.IsZero())
}

func TestMarkAsPaid(t *testing.T) {
	ctx := context.Background()
	repo := newFakePayrollRepo()
	svc := newTestService(repo, testStaff(), nil)

	gen, err := svc.GeneratePayroll(ctx, payroll.GeneratePayrollRequest{Period: "2024-03"})
	require.NoError(t, err)

	var target payroll.SalaryPaymentResponse
	for _, p := range gen.Payments {
		if p.PersonnelID == "p2" {
			target = p
		}
	}

	paid, err := svc.MarkAsPaid(ctx, target.ID)
	require.NoError(t, err)
	assert.Equal(t, "paid", paid.Status)
	assert.True(t, paid.PaidAmount.Equal(paid.CalculatedAmount))
	require.NotNil(t, paid.PaymentDate)
}

func TestMarkAsPaid_AlreadyPaid(t *testing.T) {
	ctx := context.Background()
	repo := newFakePayrollRepo()
	svc := newTestService(repo, testStaff(), nil)

	gen, err := svc.GeneratePayroll(ctx, payroll.GeneratePayrollRequest{Period: "2024-03"})
	require.NoError(t, err)
	id := gen.Payments[0].ID

	_, err = svc.MarkAsPaid(ctx, id)
	require.NoError(t, err)

	_, err = svc.MarkAsPaid(ctx, id)
	assert.ErrorIs(t, err, payroll.ErrPaymentAlreadyPaid)
}

func TestMarkAsPaid_NotFound(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakePayrollRepo(), testStaff(), nil)

	_, err := svc.MarkAsPaid(ctx, "missing")
	assert.ErrorIs(t, err, payroll.ErrPaymentNotFound)
}

func TestRecordManualPayment(t *testing.T) {
	ctx := context.Background()
	repo := newFakePayrollRepo()
	svc := newTestService(repo, testStaff(), nil)

	date := "2024-03-15"
	resp, err := svc.RecordManualPayment(ctx, payroll.ManualPaymentRequest{
		PersonnelID: "p1",
		Amount:      decimal.NewFromInt(500),
		PaymentDate: &date,
	})
	require.NoError(t, err)

	assert.Equal(t, "paid", resp.Status)
	assert.Equal(t, "manual", resp.Source)
	assert.Equal(t, "2024-03", resp.Period)
	assert.Equal(t, "Alice Martin", resp.PersonnelName)
	assert.True(t, resp.PaidAmount.Equal(decimal.NewFromInt(500)))
}

func TestRecordManualPayment_BypassesGeneratedUniqueness(t *testing.T) {
	ctx := context.Background()
	repo := newFakePayrollRepo()
	svc := newTestService(repo, testStaff(), nil)

	_, err := svc.GeneratePayroll(ctx, payroll.GeneratePayrollRequest{Period: "2024-03"})
	require.NoError(t, err)

	// A manual payment in the same period for the same person is allowed;
	// only generated records are unique per period.
	date := "2024-03-20"
	_, err = svc.RecordManualPayment(ctx, payroll.ManualPaymentRequest{
		PersonnelID: "p1",
		Amount:      decimal.NewFromInt(200),
		PaymentDate: &date,
	})
	require.NoError(t, err)
	assert.Len(t, repo.payments, 4)
}

func TestRecordManualPayment_UnknownPersonnel(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakePayrollRepo(), testStaff(), nil)

	_, err := svc.RecordManualPayment(ctx, payroll.ManualPaymentRequest{
		PersonnelID: "missing",
		Amount:      decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, personnel.ErrPersonnelNotFound)
}

func TestUpdatePayment_PartialThenPaid(t *testing.T) {
	ctx := context.Background()
	repo := newFakePayrollRepo()
	svc := newTestService(repo, testStaff(), nil)

	gen, err := svc.GeneratePayroll(ctx, payroll.GeneratePayrollRequest{Period: "2024-03"})
	require.NoError(t, err)

	var id string
	for _, p := range gen.Payments {
		if p.PersonnelID == "p2" {
			id = p.ID
		}
	}

	half := decimal.NewFromInt(750)
	updated, err := svc.UpdatePayment(ctx, payroll.UpdatePaymentRequest{ID: id, PaidAmount: &half})
	require.NoError(t, err)
	assert.Equal(t, "partial", updated.Status)

	full := decimal.NewFromInt(1500)
	updated, err = svc.UpdatePayment(ctx, payroll.UpdatePaymentRequest{ID: id, PaidAmount: &full})
	require.NoError(t, err)
	assert.Equal(t, "paid", updated.Status)
	require.NotNil(t, updated.PaymentDate)

	// Paid is terminal
	_, err = svc.UpdatePayment(ctx, payroll.UpdatePaymentRequest{ID: id, PaidAmount: &half})
	assert.ErrorIs(t, err, payroll.ErrPaymentAlreadyPaid)
}

func TestUpdatePayment_PaidAmountExceedsCalculated(t *testing.T) {
	ctx := context.Background()
	repo := newFakePayrollRepo()
	svc := newTestService(repo, testStaff(), nil)

	gen, err := svc.GeneratePayroll(ctx, payroll.GeneratePayrollRequest{Period: "2024-03"})
	require.NoError(t, err)
	id := gen.Payments[0].ID

	tooMuch := decimal.NewFromInt(1000000)
	_, err = svc.UpdatePayment(ctx, payroll.UpdatePaymentRequest{ID: id, PaidAmount: &tooMuch})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestUpdatePayment_ZeroPaidAmountStaysPending(t *testing.T) {
	ctx := context.Background()
	repo := newFakePayrollRepo()
	svc := newTestService(repo, testStaff(), nil)

	gen, err := svc.GeneratePayroll(ctx, payroll.GeneratePayrollRequest{Period: "2024-03"})
	require.NoError(t, err)
	id := gen.Payments[0].ID

	zero := decimal.Zero
	updated, err := svc.UpdatePayment(ctx, payroll.UpdatePaymentRequest{ID: id, PaidAmount: &zero})
	require.NoError(t, err)
	assert.Equal(t, "pending", updated.Status)
}

func TestDeletePayment(t *testing.T) {
	ctx := context.Background()
	repo := newFakePayrollRepo()
	svc := newTestService(repo, testStaff(), nil)

	gen, err := svc.GeneratePayroll(ctx, payroll.GeneratePayrollRequest{Period: "2024-03"})
	require.NoError(t, err)
	id := gen.Payments[0].ID

	require.NoError(t, svc.DeletePayment(ctx, id))
	assert.ErrorIs(t, svc.DeletePayment(ctx, id), payroll.ErrPaymentNotFound)
}

func TestListPayments_Defaults(t *testing.T) {
	ctx := context.Background()
	repo := newFakePayrollRepo()
	svc := newTestService(repo, testStaff(), nil)

	_, err := svc.GeneratePayroll(ctx, payroll.GeneratePayrollRequest{Period: "2024-03"})
	require.NoError(t, err)

	resp, err := svc.ListPayments(ctx, payroll.PaymentFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 20, resp.Limit)
	assert.Equal(t, int64(3), resp.TotalCount)
}

func TestGetPayrollSummary(t *testing.T) {
	ctx := context.Background()
	repo := newFakePayrollRepo()
	svc := newTestService(repo, testStaff(), nil)

	gen, err := svc.GeneratePayroll(ctx, payroll.GeneratePayrollRequest{Period: "2024-03"})
	require.NoError(t, err)

	var paidID string
	for _, p := range gen.Payments {
		if p.PersonnelID == "p2" {
			paidID = p.ID
		}
	}
	_, err = svc.MarkAsPaid(ctx, paidID)
	require.NoError(t, err)

	summary, err := svc.GetPayrollSummary(ctx, "2024-03")
	require.NoError(t, err)

	assert.Equal(t, 3, summary.PersonnelCount)
	assert.Equal(t, 2, summary.PendingCount)
	assert.Equal(t, 0, summary.PartialCount)
	assert.Equal(t, 1, summary.PaidCount)
	assert.True(t, summary.TotalCalculated.Equal(decimal.NewFromInt(2400)))
	assert.True(t, summary.TotalPaid.Equal(decimal.NewFromInt(1500)))
}
