package usecases

import (
	"context"
	"time"

	"github.com/merojugx/mero/internal/domain/organization"
	"github.com/merojugx/mero/internal/domain/role"
	"github.com/merojugx/mero/internal/shared/authorization"
)

type mockOrganizationRepository struct {
	GetByIDFunc func(ctx context.Context, id string) (*organization.Organization, error)
	UpdateFunc  func(ctx context.Context, org *organization.Organization) error
}

func (m *mockOrganizationRepository) Create(ctx context.Context, org *organization.Organization) error {
	return nil
}

func (m *mockOrganizationRepository) GetByID(ctx context.Context, id string) (*organization.Organization, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, organization.ErrOrganizationNotFound
}

func (m *mockOrganizationRepository) GetBySlug(ctx context.Context, slug string) (*organization.Organization, error) {
	return nil, organization.ErrOrganizationNotFound
}

func (m *mockOrganizationRepository) Update(ctx context.Context, org *organization.Organization) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, org)
	}
	return nil
}

func (m *mockOrganizationRepository) Count(ctx context.Context) (int64, error) {
	return 0, nil
}

// staticMembers returns one active member with roleID for every lookup.
type staticMembers struct {
	roleID string
}

func (m staticMembers) Add(ctx context.Context, organizationID, userID, roleID string) (*organization.Member, error) {
	return nil, nil
}

func (m staticMembers) Get(ctx context.Context, organizationID, userID string) (*organization.Member, error) {
	return organization.ReconstructMember("member-1", organizationID, userID, m.roleID, "active", time.Now()), nil
}

type staticRoles struct {
	role *role.Role
}

func (r staticRoles) Create(ctx context.Context, ro *role.Role) error            { return nil }
func (r staticRoles) GetByID(ctx context.Context, id string) (*role.Role, error) { return r.role, nil }
func (r staticRoles) GetInOrganization(ctx context.Context, organizationID, id string) (*role.Role, error) {
	return r.role, nil
}
func (r staticRoles) ListByOrganization(ctx context.Context, organizationID string) ([]*role.Role, error) {
	return []*role.Role{r.role}, nil
}
func (r staticRoles) Update(ctx context.Context, ro *role.Role) error { return nil }

func ownerRole(orgID string) *role.Role {
	now := time.Now()
	return role.ReconstructRole("role-owner", orgID, "Owner", role.SlugOwner, "", true, true, nil, now, now)
}

func memberRole(orgID string) *role.Role {
	now := time.Now()
	return role.ReconstructRole("role-member", orgID, "Member", "member", "", false, false, nil, now, now)
}

func principalIn(orgID string) authorization.Principal {
	return authorization.Principal{UserID: "user-1", SessionID: "sess-1", OrganizationID: &orgID}
}
