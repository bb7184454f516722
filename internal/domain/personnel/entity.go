package personnel

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category enum
type Category string

const (
	CategoryTeacher   Category = "teacher"
	CategorySecretary Category = "secretary"
)

// PlanType enum
type PlanType string

const (
	PlanTypeFixedMonthly PlanType = "fixed_monthly"
	PlanTypeForfait      PlanType = "forfait"
	PlanTypePercentage   PlanType = "percentage"
)

// CompensationPlan is the rule that determines how much a staff member is
// owed for one calendar month. Exactly one concrete plan applies per person.
type CompensationPlan interface {
	Type() PlanType
}

// FixedMonthly pays a flat amount every month.
type FixedMonthly struct {
	Amount decimal.Decimal
}

func (FixedMonthly) Type() PlanType { return PlanTypeFixedMonthly }

// Forfait pays a flat amount like FixedMonthly. The registry records it as a
// separate plan choice, so it keeps its own type label.
type Forfait struct {
	Amount decimal.Decimal
}

func (Forfait) Type() PlanType { return PlanTypeForfait }

// Percentage pays a share of the institute's monthly revenue. Rate is on a
// 0-100 scale. GroupIDs holds the teaching groups assigned to the person.
type Percentage struct {
	Rate     decimal.Decimal
	GroupIDs []string
}

func (Percentage) Type() PlanType { return PlanTypePercentage }

// Personnel - a staff member (teacher or secretary) with a resolved plan
type Personnel struct {
	ID        string
	Name      string
	Category  Category
	Plan      CompensationPlan
	CreatedAt time.Time
	UpdatedAt time.Time
}
