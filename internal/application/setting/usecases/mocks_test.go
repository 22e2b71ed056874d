package usecases

import (
	"context"
	"sort"
	"time"

	"github.com/merojugx/mero/internal/domain/organization"
	"github.com/merojugx/mero/internal/domain/role"
	"github.com/merojugx/mero/internal/domain/setting"
	"github.com/merojugx/mero/internal/shared/authorization"
)

type mockOrganizationSettingRepository struct {
	GetFunc    func(ctx context.Context, organizationID, key string) (*setting.OrganizationSetting, error)
	ListFunc   func(ctx context.Context, organizationID string) ([]*setting.OrganizationSetting, error)
	CreateFunc func(ctx context.Context, s *setting.OrganizationSetting) error
	UpsertFunc func(ctx context.Context, s *setting.OrganizationSetting) error
	DeleteFunc func(ctx context.Context, organizationID, key string) error
}

func (m *mockOrganizationSettingRepository) Get(ctx context.Context, organizationID, key string) (*setting.OrganizationSetting, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, organizationID, key)
	}
	return nil, setting.ErrSettingNotFound
}

func (m *mockOrganizationSettingRepository) ListByOrganization(ctx context.Context, organizationID string) ([]*setting.OrganizationSetting, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, organizationID)
	}
	return nil, nil
}

func (m *mockOrganizationSettingRepository) Create(ctx context.Context, s *setting.OrganizationSetting) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, s)
	}
	return nil
}

func (m *mockOrganizationSettingRepository) Upsert(ctx context.Context, s *setting.OrganizationSetting) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, s)
	}
	return nil
}

func (m *mockOrganizationSettingRepository) Delete(ctx context.Context, organizationID, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, organizationID, key)
	}
	return nil
}

// memorySystemSettings is an in-memory setting.SystemRepository.
type memorySystemSettings struct {
	items map[string]*setting.SystemSetting
}

func newMemorySystemSettings(items ...*setting.SystemSetting) *memorySystemSettings {
	m := &memorySystemSettings{items: map[string]*setting.SystemSetting{}}
	for _, s := range items {
		m.items[s.Key()] = s
	}
	return m
}

func (m *memorySystemSettings) GetByKey(ctx context.Context, key string) (*setting.SystemSetting, error) {
	if s, ok := m.items[key]; ok {
		return s, nil
	}
	return nil, setting.ErrSettingNotFound
}

func (m *memorySystemSettings) List(ctx context.Context, category string) ([]*setting.SystemSetting, error) {
	var out []*setting.SystemSetting
	for _, s := range m.items {
		if category == "" || s.Category() == category {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key() < out[j].Key() })
	return out, nil
}

func (m *memorySystemSettings) ListPublic(ctx context.Context) ([]*setting.SystemSetting, error) {
	var out []*setting.SystemSetting
	for _, s := range m.items {
		if s.IsPublic() {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *memorySystemSettings) Upsert(ctx context.Context, s *setting.SystemSetting) error {
	m.items[s.Key()] = s
	return nil
}

func (m *memorySystemSettings) Update(ctx context.Context, s *setting.SystemSetting) error {
	if _, ok := m.items[s.Key()]; !ok {
		return setting.ErrSettingNotFound
	}
	m.items[s.Key()] = s
	return nil
}

func (m *memorySystemSettings) Delete(ctx context.Context, key string) error {
	if _, ok := m.items[key]; !ok {
		return setting.ErrSettingNotFound
	}
	delete(m.items, key)
	return nil
}

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

func adminRole(orgID string) *role.Role {
	now := time.Now()
	return role.ReconstructRole("role-admin", orgID, "Admin", role.SlugAdmin, "", true, false, nil, now, now)
}

func viewerRole(orgID string) *role.Role {
	now := time.Now()
	return role.ReconstructRole("role-viewer", orgID, "Viewer", "viewer", "", false, false, nil, now, now)
}

func principalIn(orgID string) authorization.Principal {
	return authorization.Principal{UserID: "user-1", SessionID: "sess-1", OrganizationID: &orgID}
}
