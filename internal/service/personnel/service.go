package personnel

import (
	"context"

	"github.com/edusuite/institute-backend-go/internal/domain/personnel"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PersonnelServiceImpl struct {
	personnelRepo personnel.PersonnelRepository
}

func NewPersonnelService(personnelRepo personnel.PersonnelRepository) personnel.PersonnelService {
	return &PersonnelServiceImpl{personnelRepo: personnelRepo}
}

func (s *PersonnelServiceImpl) CreatePersonnel(ctx context.Context, req personnel.CreatePersonnelRequest) (personnel.PersonnelResponse, error) {
	if err := req.Validate(); err != nil {
		return personnel.PersonnelResponse{}, err
	}

	plan, err := req.Plan()
	if err != nil {
		return personnel.PersonnelResponse{}, err
	}

	person := personnel.Personnel{
		ID:       uuid.NewString(),
		Name:     req.Name,
		Category: personnel.Category(req.Category),
		Plan:     plan,
	}

	created, err := s.personnelRepo.Create(ctx, person)
	if err != nil {
		return personnel.PersonnelResponse{}, err
	}

	return mapToPersonnelResponse(created), nil
}

func (s *PersonnelServiceImpl) GetPersonnel(ctx context.Context, id string) (personnel.PersonnelResponse, error) {
	person, err := s.personnelRepo.GetByID(ctx, id)
	if err != nil {
		return personnel.PersonnelResponse{}, err
	}

	return mapToPersonnelResponse(person), nil
}

func (s *PersonnelServiceImpl) ListPersonnel(ctx context.Context) ([]personnel.PersonnelResponse, error) {
	staff, err := s.personnelRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]personnel.PersonnelResponse, 0, len(staff))
	for _, p := range staff {
		result = append(result, mapToPersonnelResponse(p))
	}
	return result, nil
}

func mapToPersonnelResponse(p personnel.Personnel) personnel.PersonnelResponse {
	resp := personnel.PersonnelResponse{
		ID:       p.ID,
		Name:     p.Name,
		Category: string(p.Category),
	}

	switch plan := p.Plan.(type) {
	case personnel.FixedMonthly:
		resp.PlanType = string(personnel.PlanTypeFixedMonthly)
		resp.Amount = amountPtr(plan.Amount)
	case personnel.Forfait:
		resp.PlanType = string(personnel.PlanTypeForfait)
		resp.Amount = amountPtr(plan.Amount)
	case personnel.Percentage:
		resp.PlanType = string(personnel.PlanTypePercentage)
		resp.Rate = amountPtr(plan.Rate)
		resp.GroupIDs = plan.GroupIDs
	}

	return resp
}

func amountPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}
