package dto

import (
	"time"

	"github.com/merojugx/mero/internal/domain/role"
)

type RoleDTO struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	Name           string    `json:"name"`
	Slug           string    `json:"slug"`
	Description    string    `json:"description,omitempty"`
	IsBuiltIn      bool      `json:"is_built_in"`
	HierarchyLevel int       `json:"hierarchy_level"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func ToRoleDTO(r *role.Role) *RoleDTO {
	if r == nil {
		return nil
	}
	return &RoleDTO{
		ID:             r.ID(),
		OrganizationID: r.OrganizationID(),
		Name:           r.Name(),
		Slug:           r.Slug(),
		Description:    r.Description(),
		IsBuiltIn:      r.IsBuiltIn(),
		HierarchyLevel: r.HierarchyLevel(),
		UpdatedAt:      r.UpdatedAt(),
	}
}

func ToRoleDTOs(list []*role.Role) []*RoleDTO {
	out := make([]*RoleDTO, 0, len(list))
	for _, r := range list {
		out = append(out, ToRoleDTO(r))
	}
	return out
}
