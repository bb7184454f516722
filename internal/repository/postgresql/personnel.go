package postgresql

import (
	"context"
	"fmt"

	"github.com/edusuite/institute-backend-go/internal/domain/personnel"
	"github.com/edusuite/institute-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type personnelRepository struct {
	db *database.DB
}

func NewPersonnelRepository(db *database.DB) personnel.PersonnelRepository {
	return &personnelRepository{db: db}
}

// The plan is flattened into nullable columns: fixed plans fill plan_amount,
// percentage plans fill plan_rate and plan_group_ids.
func planColumns(plan personnel.CompensationPlan) (planType string, amount, rate *decimal.Decimal, groupIDs []string) {
	switch p := plan.(type) {
	case personnel.FixedMonthly:
		return string(personnel.PlanTypeFixedMonthly), &p.Amount, nil, nil
	case personnel.Forfait:
		return string(personnel.PlanTypeForfait), &p.Amount, nil, nil
	case personnel.Percentage:
		return string(personnel.PlanTypePercentage), nil, &p.Rate, p.GroupIDs
	default:
		return "", nil, nil, nil
	}
}

func buildPlan(planType string, amount, rate *decimal.Decimal, groupIDs []string) (personnel.CompensationPlan, error) {
	switch personnel.PlanType(planType) {
	case personnel.PlanTypeFixedMonthly:
		a := decimal.Zero
		if amount != nil {
			a = *amount
		}
		return personnel.FixedMonthly{Amount: a}, nil
	case personnel.PlanTypeForfait:
		a := decimal.Zero
		if amount != nil {
			a = *amount
		}
		return personnel.Forfait{Amount: a}, nil
	case personnel.PlanTypePercentage:
		r := decimal.Zero
		if rate != nil {
			r = *rate
		}
		return personnel.Percentage{Rate: r, GroupIDs: groupIDs}, nil
	default:
		return nil, personnel.ErrInvalidPlanType
	}
}

func (r *personnelRepository) Create(ctx context.Context, p personnel.Personnel) (personnel.Personnel, error) {
	q := GetQuerier(ctx, r.db)

	planType, amount, rate, groupIDs := planColumns(p.Plan)

	query := `
		INSERT INTO personnel (id, name, category, plan_type, plan_amount, plan_rate, plan_group_ids)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		p.ID, p.Name, p.Category, planType, amount, rate, groupIDs,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return personnel.Personnel{}, fmt.Errorf("failed to create personnel: %w", err)
	}

	return p, nil
}

func (r *personnelRepository) GetByID(ctx context.Context, id string) (personnel.Personnel, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, category, plan_type, plan_amount, plan_rate, plan_group_ids, created_at, updated_at
		FROM personnel
		WHERE id = $1
	`

	p, err := scanPersonnel(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return personnel.Personnel{}, personnel.ErrPersonnelNotFound
		}
		return personnel.Personnel{}, fmt.Errorf("failed to get personnel: %w", err)
	}

	return p, nil
}

func (r *personnelRepository) List(ctx context.Context) ([]personnel.Personnel, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, category, plan_type, plan_amount, plan_rate, plan_group_ids, created_at, updated_at
		FROM personnel
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list personnel: %w", err)
	}
	defer rows.Close()

	var staff []personnel.Personnel
	for rows.Next() {
		p, err := scanPersonnel(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan personnel: %w", err)
		}
		staff = append(staff, p)
	}

	return staff, nil
}

func scanPersonnel(row pgx.Row) (personnel.Personnel, error) {
	var p personnel.Personnel
	var planType string
	var amount, rate *decimal.Decimal
	var groupIDs []string

	if err := row.Scan(
		&p.ID, &p.Name, &p.Category, &planType, &amount, &rate, &groupIDs, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return personnel.Personnel{}, err
	}

	plan, err := buildPlan(planType, amount, rate, groupIDs)
	if err != nil {
		return personnel.Personnel{}, err
	}
	p.Plan = plan

	return p, nil
}
