package mappers

import (
	"github.com/merojugx/mero/internal/domain/organization"
	"github.com/merojugx/mero/internal/infrastructure/persistence/models"
)

// OrganizationMapper converts between organization aggregates and models.
type OrganizationMapper interface {
	ToModel(o *organization.Organization) *models.OrganizationModel
	ToDomain(m *models.OrganizationModel) *organization.Organization
	MemberToDomain(m *models.OrganizationMemberModel) *organization.Member
}

type OrganizationMapperImpl struct{}

func NewOrganizationMapper() OrganizationMapper {
	return &OrganizationMapperImpl{}
}

func (OrganizationMapperImpl) ToModel(o *organization.Organization) *models.OrganizationModel {
	return &models.OrganizationModel{
		ID:        o.ID(),
		Name:      o.Name(),
		Slug:      o.Slug(),
		Status:    string(o.Status()),
		CreatedAt: o.CreatedAt(),
		UpdatedAt: o.UpdatedAt(),
	}
}

func (OrganizationMapperImpl) ToDomain(m *models.OrganizationModel) *organization.Organization {
	if m == nil {
		return nil
	}
	return organization.ReconstructOrganization(m.ID, m.Name, m.Slug, organization.Status(m.Status), m.CreatedAt, m.UpdatedAt)
}

func (OrganizationMapperImpl) MemberToDomain(m *models.OrganizationMemberModel) *organization.Member {
	if m == nil {
		return nil
	}
	return organization.ReconstructMember(m.ID, m.OrganizationID, m.UserID, m.RoleID, m.Status, m.CreatedAt)
}
