package usecases

import (
	"context"
	"time"

	"github.com/merojugx/mero/internal/domain/organization"
	"github.com/merojugx/mero/internal/domain/role"
	"github.com/merojugx/mero/internal/shared/authorization"
)

type staticMembers struct {
	roleID string
}

func (m staticMembers) Add(ctx context.Context, organizationID, userID, roleID string) (*organization.Member, error) {
	return nil, nil
}

func (m staticMembers) Get(ctx context.Context, organizationID, userID string) (*organization.Member, error) {
	return organization.ReconstructMember("member-1", organizationID, userID, m.roleID, "active", time.Now()), nil
}

// memoryRoles keys roles by id; GetInOrganization enforces the organization.
type memoryRoles struct {
	items   map[string]*role.Role
	updated []*role.Role
}

func newMemoryRoles(list ...*role.Role) *memoryRoles {
	m := &memoryRoles{items: map[string]*role.Role{}}
	for _, r := range list {
		m.items[r.ID()] = r
	}
	return m
}

func (m *memoryRoles) Create(ctx context.Context, r *role.Role) error {
	m.items[r.ID()] = r
	return nil
}

func (m *memoryRoles) GetByID(ctx context.Context, id string) (*role.Role, error) {
	r, ok := m.items[id]
	if !ok {
		return nil, role.ErrRoleNotFound
	}
	return r, nil
}

func (m *memoryRoles) GetInOrganization(ctx context.Context, organizationID, id string) (*role.Role, error) {
	r, ok := m.items[id]
	if !ok || r.OrganizationID() != organizationID {
		return nil, role.ErrRoleNotFound
	}
	return r, nil
}

func (m *memoryRoles) ListByOrganization(ctx context.Context, organizationID string) ([]*role.Role, error) {
	var out []*role.Role
	for _, r := range m.items {
		if r.OrganizationID() == organizationID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memoryRoles) Update(ctx context.Context, r *role.Role) error {
	m.updated = append(m.updated, r)
	return nil
}

func builtInRole(id, orgID, slug string) *role.Role {
	now := time.Now()
	return role.ReconstructRole(id, orgID, slug, slug, "", true, slug == role.SlugOwner, nil, now, now)
}

func customRole(id, orgID string, level *int) *role.Role {
	now := time.Now()
	return role.ReconstructRole(id, orgID, "Editor", "editor-"+id, "", false, false, level, now, now)
}

func principalIn(orgID string) authorization.Principal {
	return authorization.Principal{UserID: "user-1", SessionID: "sess-1", OrganizationID: &orgID}
}

func intPtr(v int) *int { return &v }
