package migrations

import (
	"time"

	"gorm.io/gorm"
)

type organizationSettingV1 struct {
	ID             string         `gorm:"primaryKey;type:varchar(36)"`
	OrganizationID string         `gorm:"type:varchar(36);not null;uniqueIndex:uk_org_settings_org_key,priority:1"`
	Organization   organizationV1 `gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Key            string         `gorm:"column:key;type:varchar(100);not null;uniqueIndex:uk_org_settings_org_key,priority:2"`
	Value          string         `gorm:"type:text"`
	CreatedAt      time.Time      `gorm:"not null"`
	UpdatedAt      time.Time      `gorm:"not null"`
}

func (organizationSettingV1) TableName() string { return "organization_settings" }

func upOrganizationSettings(tx *gorm.DB) error {
	return tx.Migrator().CreateTable(&organizationSettingV1{})
}

func downOrganizationSettings(tx *gorm.DB) error {
	return dropTables(tx, "organization_settings")
}
