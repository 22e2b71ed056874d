package organization

import "context"

type Repository interface {
	Create(ctx context.Context, org *Organization) error
	GetByID(ctx context.Context, id string) (*Organization, error)
	GetBySlug(ctx context.Context, slug string) (*Organization, error)
	// Update returns ErrSlugTaken when the slug collides with another organization.
	Update(ctx context.Context, org *Organization) error
	Count(ctx context.Context) (int64, error)
}

type MemberRepository interface {
	Add(ctx context.Context, organizationID, userID, roleID string) (*Member, error)
	Get(ctx context.Context, organizationID, userID string) (*Member, error)
}
