package personnel

import "context"

// PersonnelRepository defines data access for the staff registry.
type PersonnelRepository interface {
	Create(ctx context.Context, p Personnel) (Personnel, error)
	GetByID(ctx context.Context, id string) (Personnel, error)
	List(ctx context.Context) ([]Personnel, error)
}
