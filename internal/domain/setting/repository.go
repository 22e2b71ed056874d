package setting

import (
	"context"
)

// OrganizationRepository persists organization scoped settings.
type OrganizationRepository interface {
	Get(ctx context.Context, organizationID, key string) (*OrganizationSetting, error)
	ListByOrganization(ctx context.Context, organizationID string) ([]*OrganizationSetting, error)
	// Create fails with ErrDuplicateKey when the key exists in the organization.
	Create(ctx context.Context, s *OrganizationSetting) error
	// Upsert inserts or replaces the value of (organization, key).
	Upsert(ctx context.Context, s *OrganizationSetting) error
	Delete(ctx context.Context, organizationID, key string) error
}

// SystemRepository persists platform wide settings.
type SystemRepository interface {
	GetByKey(ctx context.Context, key string) (*SystemSetting, error)
	List(ctx context.Context, category string) ([]*SystemSetting, error)
	ListPublic(ctx context.Context) ([]*SystemSetting, error)
	Upsert(ctx context.Context, s *SystemSetting) error
	Update(ctx context.Context, s *SystemSetting) error
	Delete(ctx context.Context, key string) error
}
