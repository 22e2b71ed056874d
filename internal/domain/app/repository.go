package app

import "context"

type Repository interface {
	GetByID(ctx context.Context, id string) (*App, error)
	GetBySlug(ctx context.Context, slug string) (*App, error)
	ListActive(ctx context.Context) ([]*App, error)
	Update(ctx context.Context, a *App) error
	Count(ctx context.Context) (int64, error)
}

type AccessRepository interface {
	// Upsert replaces the role of an existing (organization, user, app) grant
	// and returns the stored row.
	Upsert(ctx context.Context, a *Access) (*Access, error)
	Get(ctx context.Context, organizationID, userID, appID string) (*Access, error)
}
