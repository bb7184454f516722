package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/edusuite/institute-backend-go/internal/domain/payroll"
	"github.com/edusuite/institute-backend-go/internal/pkg/period"
)

type PayrollJobs struct {
	payrollService payroll.PayrollService
}

func NewPayrollJobs(payrollService payroll.PayrollService) *PayrollJobs {
	return &PayrollJobs{payrollService: payrollService}
}

func (j *PayrollJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("generate_current_payroll", 1*time.Hour, j.GenerateCurrentPayroll)
}

// GenerateCurrentPayroll generates the current period's payroll. Generation
// is idempotent, so running it every cycle only fills in staff added since
// the last run.
func (j *PayrollJobs) GenerateCurrentPayroll(ctx context.Context) error {
	// Only run at midnight (00:00-00:59 UTC)
	if time.Now().UTC().Hour() != 0 {
		return nil
	}

	current := period.Of(time.Now().UTC())
	slog.Info("Cron: Starting payroll generation job", "period", current.String())

	result, err := j.payrollService.GeneratePayroll(ctx, payroll.GeneratePayrollRequest{
		Period: current.String(),
	})
	if err != nil {
		return fmt.Errorf("failed to generate payroll for %s: %w", current, err)
	}

	slog.Info("Cron: Payroll generation completed",
		"period", current.String(),
		"created", result.Created)
	return nil
}
