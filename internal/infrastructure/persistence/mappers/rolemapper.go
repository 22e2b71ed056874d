package mappers

import (
	"github.com/merojugx/mero/internal/domain/role"
	"github.com/merojugx/mero/internal/infrastructure/persistence/models"
)

type RoleMapper interface {
	ToModel(r *role.Role) *models.RoleModel
	ToDomain(m *models.RoleModel) *role.Role
	ToDomainList(ms []*models.RoleModel) []*role.Role
}

type RoleMapperImpl struct{}

func NewRoleMapper() RoleMapper {
	return &RoleMapperImpl{}
}

func (RoleMapperImpl) ToModel(r *role.Role) *models.RoleModel {
	return &models.RoleModel{
		ID:                  r.ID(),
		OrganizationID:      r.OrganizationID(),
		Name:                r.Name(),
		Slug:                r.Slug(),
		Description:         r.Description(),
		IsSystemRole:        r.IsSystemRole(),
		IsOrganizationOwner: r.IsOrganizationOwner(),
		HierarchyLevel:      r.StoredHierarchyLevel(),
		CreatedAt:           r.CreatedAt(),
		UpdatedAt:           r.UpdatedAt(),
	}
}

func (RoleMapperImpl) ToDomain(m *models.RoleModel) *role.Role {
	if m == nil {
		return nil
	}
	return role.ReconstructRole(
		m.ID,
		m.OrganizationID,
		m.Name,
		m.Slug,
		m.Description,
		m.IsSystemRole,
		m.IsOrganizationOwner,
		m.HierarchyLevel,
		m.CreatedAt,
		m.UpdatedAt,
	)
}

func (r RoleMapperImpl) ToDomainList(ms []*models.RoleModel) []*role.Role {
	out := make([]*role.Role, 0, len(ms))
	for _, m := range ms {
		out = append(out, r.ToDomain(m))
	}
	return out
}
