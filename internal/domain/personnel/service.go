package personnel

import "context"

type PersonnelService interface {
	CreatePersonnel(ctx context.Context, req CreatePersonnelRequest) (PersonnelResponse, error)
	GetPersonnel(ctx context.Context, id string) (PersonnelResponse, error)
	ListPersonnel(ctx context.Context) ([]PersonnelResponse, error)
}
