package usecases

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/merojugx/mero/internal/domain/app"
	"github.com/merojugx/mero/internal/domain/organization"
	"github.com/merojugx/mero/internal/domain/role"
	"github.com/merojugx/mero/internal/shared/authorization"
)

// memoryMembers maps user id to (role id, status).
type memoryMembers struct {
	roles  map[string]string
	status map[string]string
}

func (m memoryMembers) Add(ctx context.Context, organizationID, userID, roleID string) (*organization.Member, error) {
	return nil, nil
}

func (m memoryMembers) Get(ctx context.Context, organizationID, userID string) (*organization.Member, error) {
	roleID, ok := m.roles[userID]
	if !ok || organizationID != "org-1" {
		return nil, organization.ErrMemberNotFound
	}
	status := "active"
	if s, ok := m.status[userID]; ok {
		status = s
	}
	return organization.ReconstructMember("m-"+userID, organizationID, userID, roleID, status, time.Now()), nil
}

type memoryRoles struct {
	role.Repository
	items map[string]*role.Role
}

func (m memoryRoles) GetInOrganization(ctx context.Context, organizationID, id string) (*role.Role, error) {
	r, ok := m.items[id]
	if !ok || r.OrganizationID() != organizationID {
		return nil, role.ErrRoleNotFound
	}
	return r, nil
}

type memoryApps struct {
	items map[string]*app.App
}

func (m memoryApps) GetByID(ctx context.Context, id string) (*app.App, error) {
	a, ok := m.items[id]
	if !ok {
		return nil, app.ErrAppNotFound
	}
	return a, nil
}

func (m memoryApps) GetBySlug(ctx context.Context, slug string) (*app.App, error) {
	for _, a := range m.items {
		if a.Slug() == slug {
			return a, nil
		}
	}
	return nil, app.ErrAppNotFound
}

func (m memoryApps) ListActive(ctx context.Context) ([]*app.App, error) {
	var out []*app.App
	for _, a := range m.items {
		if a.IsActive() {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m memoryApps) Update(ctx context.Context, a *app.App) error { return nil }
func (m memoryApps) Count(ctx context.Context) (int64, error)     { return int64(len(m.items)), nil }

// memoryAccess keeps one grant per (organization, user, app) like the unique index.
type memoryAccess struct {
	items map[string]*app.Access
}

func accessKey(orgID, userID, appID string) string { return orgID + "|" + userID + "|" + appID }

func (m *memoryAccess) Upsert(ctx context.Context, a *app.Access) (*app.Access, error) {
	key := accessKey(a.OrganizationID(), a.UserID(), a.AppID())
	if existing, ok := m.items[key]; ok {
		a = app.ReconstructAccess(existing.ID(), a.OrganizationID(), a.UserID(), a.AppID(), a.RoleID(), a.GrantedBy(), existing.CreatedAt(), a.UpdatedAt())
	}
	m.items[key] = a
	return a, nil
}

func (m *memoryAccess) Get(ctx context.Context, organizationID, userID, appID string) (*app.Access, error) {
	a, ok := m.items[accessKey(organizationID, userID, appID)]
	if !ok {
		return nil, app.ErrAppNotFound
	}
	return a, nil
}

func testRole(id, orgID, slug string, builtIn bool) *role.Role {
	now := time.Now()
	return role.ReconstructRole(id, orgID, slug, slug, "", builtIn, slug == role.SlugOwner, nil, now, now)
}

func testApp(id, slug string, price string, status app.Status) *app.App {
	now := time.Now()
	return app.ReconstructApp(id, slug, slug, "", decimal.RequireFromString(price), app.BillingMonthly, status, now, now)
}

func principalIn(orgID, userID string) authorization.Principal {
	return authorization.Principal{UserID: userID, SessionID: "s-" + userID, OrganizationID: &orgID}
}
