package role

import "context"

type Repository interface {
	Create(ctx context.Context, r *Role) error
	GetByID(ctx context.Context, id string) (*Role, error)
	// GetInOrganization fails with ErrRoleNotFound when the role belongs elsewhere.
	GetInOrganization(ctx context.Context, organizationID, id string) (*Role, error)
	ListByOrganization(ctx context.Context, organizationID string) ([]*Role, error)
	Update(ctx context.Context, r *Role) error
}
