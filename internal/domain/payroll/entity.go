package payroll

import (
	"time"

	"github.com/edusuite/institute-backend-go/internal/domain/personnel"
	"github.com/edusuite/institute-backend-go/internal/pkg/period"
	"github.com/shopspring/decimal"
)

// PaymentStatus enum. Transitions are linear: pending -> partial -> paid,
// with pending -> paid allowed directly. Paid is terminal.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// PaymentSource enum. Generated records fall under the one-per-period
// uniqueness constraint; manual records do not.
type PaymentSource string

const (
	PaymentSourceGenerated PaymentSource = "generated"
	PaymentSourceManual    PaymentSource = "manual"
)

// SalaryPayment - what one staff member is owed (and has been paid) for one
// period. Name, category and plan type are snapshots taken at creation so the
// ledger stays stable when the registry changes later.
type SalaryPayment struct {
	ID                string
	PersonnelID       string
	PersonnelName     string
	PersonnelCategory personnel.Category
	PlanType          personnel.PlanType
	Period            period.Period
	CalculatedAmount  decimal.Decimal
	PaidAmount        decimal.Decimal
	Status            PaymentStatus
	Source            PaymentSource
	PaymentDate       *time.Time
	Notes             *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
