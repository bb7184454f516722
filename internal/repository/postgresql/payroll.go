package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/edusuite/institute-backend-go/internal/domain/payroll"
	"github.com/edusuite/institute-backend-go/internal/pkg/database"
	"github.com/edusuite/institute-backend-go/internal/pkg/period"
	"github.com/jackc/pgx/v5"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

const paymentColumns = `
	id, personnel_id, personnel_name, personnel_category, plan_type,
	period_year, period_month, calculated_amount, paid_amount,
	status, source, payment_date, notes, created_at, updated_at
`

func (r *payrollRepository) CreatePayment(ctx context.Context, p payroll.SalaryPayment) (payroll.SalaryPayment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_payments (
			id, personnel_id, personnel_name, personnel_category, plan_type,
			period_year, period_month, calculated_amount, paid_amount,
			status, source, payment_date, notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		p.ID, p.PersonnelID, p.PersonnelName, p.PersonnelCategory, p.PlanType,
		p.Period.Year, int(p.Period.Month), p.CalculatedAmount, p.PaidAmount,
		p.Status, p.Source, p.PaymentDate, p.Notes,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "uk_salary_payment_generated_period") {
			return payroll.SalaryPayment{}, payroll.ErrPaymentAlreadyExists
		}
		return payroll.SalaryPayment{}, fmt.Errorf("failed to create salary payment: %w", err)
	}

	return p, nil
}

func (r *payrollRepository) GetPaymentByID(ctx context.Context, id string) (payroll.SalaryPayment, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + paymentColumns + ` FROM salary_payments WHERE id = $1`

	p, err := scanPayment(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.SalaryPayment{}, payroll.ErrPaymentNotFound
		}
		return payroll.SalaryPayment{}, fmt.Errorf("failed to get salary payment: %w", err)
	}

	return p, nil
}

func (r *payrollRepository) ListGeneratedByPeriod(ctx context.Context, pd period.Period) ([]payroll.SalaryPayment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + paymentColumns + `
		FROM salary_payments
		WHERE period_year = $1 AND period_month = $2 AND source = $3
	`

	rows, err := q.Query(ctx, query, pd.Year, int(pd.Month), payroll.PaymentSourceGenerated)
	if err != nil {
		return nil, fmt.Errorf("failed to list generated payments: %w", err)
	}
	defer rows.Close()

	return collectPayments(rows)
}

func (r *payrollRepository) ListPayments(ctx context.Context, filter payroll.PaymentFilter) ([]payroll.SalaryPayment, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseQuery := ` FROM salary_payments WHERE 1=1`
	args := []interface{}{}
	argIdx := 1

	if filter.Period != nil {
		pd, err := period.Parse(*filter.Period)
		if err != nil {
			return nil, 0, payroll.ErrInvalidPeriod
		}
		baseQuery += fmt.Sprintf(" AND period_year = $%d AND period_month = $%d", argIdx, argIdx+1)
		args = append(args, pd.Year, int(pd.Month))
		argIdx += 2
	}
	if filter.Status != nil {
		baseQuery += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.PersonnelID != nil {
		baseQuery += fmt.Sprintf(" AND personnel_id = $%d", argIdx)
		args = append(args, *filter.PersonnelID)
		argIdx++
	}

	var totalCount int64
	countQuery := "SELECT COUNT(*)" + baseQuery
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count salary payments: %w", err)
	}

	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	offset := (filter.Page - 1) * filter.Limit

	selectQuery := fmt.Sprintf(
		"SELECT %s %s ORDER BY period_year DESC, period_month DESC, personnel_name LIMIT $%d OFFSET $%d",
		paymentColumns, baseQuery, argIdx, argIdx+1,
	)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list salary payments: %w", err)
	}
	defer rows.Close()

	payments, err := collectPayments(rows)
	if err != nil {
		return nil, 0, err
	}

	return payments, totalCount, nil
}

func (r *payrollRepository) UpdatePayment(ctx context.Context, p payroll.SalaryPayment) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE salary_payments
		SET calculated_amount = $2, paid_amount = $3, status = $4,
			payment_date = $5, notes = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		p.ID, p.CalculatedAmount, p.PaidAmount, p.Status, p.PaymentDate, p.Notes,
	).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.ErrPaymentNotFound
		}
		return fmt.Errorf("failed to update salary payment: %w", err)
	}

	return nil
}

func (r *payrollRepository) DeletePayment(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM salary_payments WHERE id = $1 RETURNING id`

	var deletedID string
	err := q.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.ErrPaymentNotFound
		}
		return fmt.Errorf("failed to delete salary payment: %w", err)
	}

	return nil
}

func (r *payrollRepository) GetSummary(ctx context.Context, pd period.Period) (payroll.PayrollSummaryResponse, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(DISTINCT personnel_id) as personnel_count,
			COALESCE(SUM(calculated_amount), 0) as total_calculated,
			COALESCE(SUM(paid_amount), 0) as total_paid,
			COUNT(*) FILTER (WHERE status = 'pending') as pending_count,
			COUNT(*) FILTER (WHERE status = 'partial') as partial_count,
			COUNT(*) FILTER (WHERE status = 'paid') as paid_count
		FROM salary_payments
		WHERE period_year = $1 AND period_month = $2
	`

	var summary payroll.PayrollSummaryResponse
	err := q.QueryRow(ctx, query, pd.Year, int(pd.Month)).Scan(
		&summary.PersonnelCount, &summary.TotalCalculated, &summary.TotalPaid,
		&summary.PendingCount, &summary.PartialCount, &summary.PaidCount,
	)
	if err != nil {
		return payroll.PayrollSummaryResponse{}, fmt.Errorf("failed to get payroll summary: %w", err)
	}

	summary.Period = pd.String()

	return summary, nil
}

func scanPayment(row pgx.Row) (payroll.SalaryPayment, error) {
	var p payroll.SalaryPayment
	var periodYear, periodMonth int
	var paymentDate *time.Time

	if err := row.Scan(
		&p.ID, &p.PersonnelID, &p.PersonnelName, &p.PersonnelCategory, &p.PlanType,
		&periodYear, &periodMonth, &p.CalculatedAmount, &p.PaidAmount,
		&p.Status, &p.Source, &paymentDate, &p.Notes, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return payroll.SalaryPayment{}, err
	}

	p.Period = period.Period{Year: periodYear, Month: time.Month(periodMonth)}
	p.PaymentDate = paymentDate

	return p, nil
}

func collectPayments(rows pgx.Rows) ([]payroll.SalaryPayment, error) {
	var payments []payroll.SalaryPayment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan salary payment: %w", err)
		}
		payments = append(payments, p)
	}
	return payments, nil
}
