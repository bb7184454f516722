package personnel

import (
	"github.com/edusuite/institute-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreatePersonnelRequest struct {
	Name     string           `json:"name"`
	Category string           `json:"category"` // "teacher" or "secretary"
	PlanType string           `json:"plan_type"`
	Amount   *decimal.Decimal `json:"amount,omitempty"`    // fixed_monthly / forfait
	Rate     *decimal.Decimal `json:"rate,omitempty"`      // percentage, 0-100
	GroupIDs []string         `json:"group_ids,omitempty"` // percentage
}

func (r *CreatePersonnelRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if r.Category != string(CategoryTeacher) && r.Category != string(CategorySecretary) {
		errs = append(errs, validator.ValidationError{Field: "category", Message: "must be 'teacher' or 'secretary'"})
	}

	switch PlanType(r.PlanType) {
	case PlanTypeFixedMonthly, PlanTypeForfait:
		if r.Amount == nil {
			errs = append(errs, validator.ValidationError{Field: "amount", Message: "is required for fixed plans"})
		} else if r.Amount.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be non-negative"})
		}
	case PlanTypePercentage:
		if r.Rate != nil {
			hundred := decimal.NewFromInt(100)
			if r.Rate.IsNegative() || r.Rate.GreaterThan(hundred) {
				errs = append(errs, validator.ValidationError{Field: "rate", Message: "must be between 0 and 100"})
			}
		}
	default:
		errs = append(errs, validator.ValidationError{Field: "plan_type", Message: "must be 'fixed_monthly', 'forfait' or 'percentage'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Plan builds the compensation plan variant described by the request. A
// percentage plan with no rate defaults to zero rather than failing, matching
// the soft-fail contract of the calculation engine.
func (r *CreatePersonnelRequest) Plan() (CompensationPlan, error) {
	switch PlanType(r.PlanType) {
	case PlanTypeFixedMonthly:
		return FixedMonthly{Amount: *r.Amount}, nil
	case PlanTypeForfait:
		return Forfait{Amount: *r.Amount}, nil
	case PlanTypePercentage:
		rate := decimal.Zero
		if r.Rate != nil {
			rate = *r.Rate
		}
		return Percentage{Rate: rate, GroupIDs: r.GroupIDs}, nil
	default:
		return nil, ErrInvalidPlanType
	}
}

type PersonnelResponse struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Category string           `json:"category"`
	PlanType string           `json:"plan_type"`
	Amount   *decimal.Decimal `json:"amount,omitempty"`
	Rate     *decimal.Decimal `json:"rate,omitempty"`
	GroupIDs []string         `json:"group_ids,omitempty"`
}
