package models

import "time"

// OrganizationSettingModel is the GORM model for organization_settings.
// (organization_id, key) is unique.
type OrganizationSettingModel struct {
	ID             string    `gorm:"primaryKey;type:varchar(36)"`
	OrganizationID string    `gorm:"type:varchar(36);not null"`
	Key            string    `gorm:"column:key;type:varchar(100);not null"`
	Value          string    `gorm:"type:text"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}

func (OrganizationSettingModel) TableName() string {
	return "organization_settings"
}

// SystemSettingModel is the GORM model for system_settings table
type SystemSettingModel struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)"`
	Key         string    `gorm:"column:key;type:varchar(100);not null"`
	Value       string    `gorm:"type:text"`
	Description string    `gorm:"type:varchar(500)"`
	Category    string    `gorm:"type:varchar(50);not null;default:general"`
	IsPublic    bool      `gorm:"not null;default:false"`
	UpdatedBy   *string   `gorm:"type:varchar(36)"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (SystemSettingModel) TableName() string {
	return "system_settings"
}
