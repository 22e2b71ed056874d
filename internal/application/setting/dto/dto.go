package dto

import (
	"time"

	"github.com/merojugx/mero/internal/domain/setting"
)

type SettingDTO struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SystemSettingDTO struct {
	Key         string    `json:"key"`
	Value       string    `json:"value"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	IsPublic    bool      `json:"is_public"`
	UpdatedBy   *string   `json:"updated_by,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToSettingDTO(s *setting.OrganizationSetting) SettingDTO {
	return SettingDTO{
		Key:       s.Key(),
		Value:     s.Value(),
		UpdatedAt: s.UpdatedAt(),
	}
}

func ToSettingDTOs(list []*setting.OrganizationSetting) []SettingDTO {
	out := make([]SettingDTO, 0, len(list))
	for _, s := range list {
		out = append(out, ToSettingDTO(s))
	}
	return out
}

func ToSystemSettingDTO(s *setting.SystemSetting) SystemSettingDTO {
	return SystemSettingDTO{
		Key:         s.Key(),
		Value:       s.Value(),
		Description: s.Description(),
		Category:    s.Category(),
		IsPublic:    s.IsPublic(),
		UpdatedBy:   s.UpdatedBy(),
		UpdatedAt:   s.UpdatedAt(),
	}
}

func ToSystemSettingDTOs(list []*setting.SystemSetting) []SystemSettingDTO {
	out := make([]SystemSettingDTO, 0, len(list))
	for _, s := range list {
		out = append(out, ToSystemSettingDTO(s))
	}
	return out
}

// ToPublicSettings flattens public settings to a key/value map.
func ToPublicSettings(list []*setting.SystemSetting) map[string]string {
	out := make(map[string]string, len(list))
	for _, s := range list {
		out[s.Key()] = s.Value()
	}
	return out
}
