package setting

import (
	"fmt"
	"regexp"
	"time"

	"github.com/merojugx/mero/internal/shared/biztime"
	"github.com/merojugx/mero/internal/shared/id"
)

const MaxKeyLength = 100

var keyPattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

func validateKey(key string) error {
	if key == "" || len(key) > MaxKeyLength || !keyPattern.MatchString(key) {
		return fmt.Errorf("%w: %q", ErrInvalidSettingKey, key)
	}
	return nil
}

// OrganizationSetting is a key/value pair owned by one organization. Keys
// are unique per organization.
type OrganizationSetting struct {
	id             string
	organizationID string
	key            string
	value          string
	createdAt      time.Time
	updatedAt      time.Time
}

func NewOrganizationSetting(organizationID, key, value string) (*OrganizationSetting, error) {
	if organizationID == "" {
		return nil, fmt.Errorf("organization id is required")
	}
	if err := validateKey(key); err != nil {
		return nil, err
	}

	now := biztime.NowUTC()
	return &OrganizationSetting{
		id:             id.New(),
		organizationID: organizationID,
		key:            key,
		value:          value,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// ReconstructOrganizationSetting rebuilds a setting from persistence
func ReconstructOrganizationSetting(id, organizationID, key, value string, createdAt, updatedAt time.Time) *OrganizationSetting {
	return &OrganizationSetting{
		id:             id,
		organizationID: organizationID,
		key:            key,
		value:          value,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (s *OrganizationSetting) ID() string             { return s.id }
func (s *OrganizationSetting) OrganizationID() string { return s.organizationID }
func (s *OrganizationSetting) Key() string            { return s.key }
func (s *OrganizationSetting) Value() string          { return s.value }
func (s *OrganizationSetting) CreatedAt() time.Time   { return s.createdAt }
func (s *OrganizationSetting) UpdatedAt() time.Time   { return s.updatedAt }

func (s *OrganizationSetting) UpdateValue(value string) {
	if s.value == value {
		return
	}
	s.value = value
	s.updatedAt = biztime.NowUTC()
}

// SystemSetting is a platform wide setting managed by system admins. Public
// settings are readable without authentication.
type SystemSetting struct {
	id          string
	key         string
	value       string
	description string
	category    string
	isPublic    bool
	updatedBy   *string
	createdAt   time.Time
	updatedAt   time.Time
}

const DefaultCategory = "general"

func NewSystemSetting(key, value, description, category string, isPublic bool, updatedBy string) (*SystemSetting, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}
	if category == "" {
		category = DefaultCategory
	}

	now := biztime.NowUTC()
	s := &SystemSetting{
		id:          id.New(),
		key:         key,
		value:       value,
		description: description,
		category:    category,
		isPublic:    isPublic,
		createdAt:   now,
		updatedAt:   now,
	}
	if updatedBy != "" {
		s.updatedBy = &updatedBy
	}
	return s, nil
}

// ReconstructSystemSetting rebuilds a system setting from persistence
func ReconstructSystemSetting(
	id, key, value, description, category string,
	isPublic bool,
	updatedBy *string,
	createdAt, updatedAt time.Time,
) *SystemSetting {
	return &SystemSetting{
		id:          id,
		key:         key,
		value:       value,
		description: description,
		category:    category,
		isPublic:    isPublic,
		updatedBy:   updatedBy,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (s *SystemSetting) ID() string           { return s.id }
func (s *SystemSetting) Key() string          { return s.key }
func (s *SystemSetting) Value() string        { return s.value }
func (s *SystemSetting) Description() string  { return s.description }
func (s *SystemSetting) Category() string     { return s.category }
func (s *SystemSetting) IsPublic() bool       { return s.isPublic }
func (s *SystemSetting) UpdatedBy() *string   { return s.updatedBy }
func (s *SystemSetting) CreatedAt() time.Time { return s.createdAt }
func (s *SystemSetting) UpdatedAt() time.Time { return s.updatedAt }

// Patch holds optional changes; nil fields are left untouched.
type Patch struct {
	Value       *string
	Description *string
	Category    *string
	IsPublic    *bool
}

func (s *SystemSetting) Apply(p Patch, updatedBy string) {
	if p.Value != nil {
		s.value = *p.Value
	}
	if p.Description != nil {
		s.description = *p.Description
	}
	if p.Category != nil && *p.Category != "" {
		s.category = *p.Category
	}
	if p.IsPublic != nil {
		s.isPublic = *p.IsPublic
	}
	if updatedBy != "" {
		s.updatedBy = &updatedBy
	}
	s.updatedAt = biztime.NowUTC()
}
