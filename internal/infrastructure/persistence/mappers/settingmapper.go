package mappers

import (
	"github.com/merojugx/mero/internal/domain/setting"
	"github.com/merojugx/mero/internal/infrastructure/persistence/models"
)

// SettingMapper converts organization and system settings.
type SettingMapper interface {
	OrganizationToModel(s *setting.OrganizationSetting) *models.OrganizationSettingModel
	OrganizationToDomain(m *models.OrganizationSettingModel) *setting.OrganizationSetting
	SystemToModel(s *setting.SystemSetting) *models.SystemSettingModel
	SystemToDomain(m *models.SystemSettingModel) *setting.SystemSetting
	SystemToDomainList(ms []*models.SystemSettingModel) []*setting.SystemSetting
}

type SettingMapperImpl struct{}

func NewSettingMapper() SettingMapper {
	return &SettingMapperImpl{}
}

func (SettingMapperImpl) OrganizationToModel(s *setting.OrganizationSetting) *models.OrganizationSettingModel {
	return &models.OrganizationSettingModel{
		ID:             s.ID(),
		OrganizationID: s.OrganizationID(),
		Key:            s.Key(),
		Value:          s.Value(),
		CreatedAt:      s.CreatedAt(),
		UpdatedAt:      s.UpdatedAt(),
	}
}

func (SettingMapperImpl) OrganizationToDomain(m *models.OrganizationSettingModel) *setting.OrganizationSetting {
	if m == nil {
		return nil
	}
	return setting.ReconstructOrganizationSetting(m.ID, m.OrganizationID, m.Key, m.Value, m.CreatedAt, m.UpdatedAt)
}

func (SettingMapperImpl) SystemToModel(s *setting.SystemSetting) *models.SystemSettingModel {
	return &models.SystemSettingModel{
		ID:          s.ID(),
		Key:         s.Key(),
		Value:       s.Value(),
		Description: s.Description(),
		Category:    s.Category(),
		IsPublic:    s.IsPublic(),
		UpdatedBy:   s.UpdatedBy(),
		CreatedAt:   s.CreatedAt(),
		UpdatedAt:   s.UpdatedAt(),
	}
}

func (SettingMapperImpl) SystemToDomain(m *models.SystemSettingModel) *setting.SystemSetting {
	if m == nil {
		return nil
	}
	return setting.ReconstructSystemSetting(
		m.ID,
		m.Key,
		m.Value,
		m.Description,
		m.Category,
		m.IsPublic,
		m.UpdatedBy,
		m.CreatedAt,
		m.UpdatedAt,
	)
}

func (mp SettingMapperImpl) SystemToDomainList(ms []*models.SystemSettingModel) []*setting.SystemSetting {
	out := make([]*setting.SystemSetting, 0, len(ms))
	for _, m := range ms {
		out = append(out, mp.SystemToDomain(m))
	}
	return out
}
