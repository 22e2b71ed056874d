package migrations

import (
	"time"

	"gorm.io/gorm"
)

type systemSettingV1 struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)"`
	Key         string    `gorm:"column:key;type:varchar(100);not null;uniqueIndex:uk_system_settings_key"`
	Value       string    `gorm:"type:text"`
	Description string    `gorm:"type:varchar(500)"`
	Category    string    `gorm:"type:varchar(50);not null;default:general;index:idx_system_settings_category"`
	IsPublic    bool      `gorm:"not null;default:false;index:idx_system_settings_is_public"`
	UpdatedBy   *string   `gorm:"type:varchar(36)"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

func (systemSettingV1) TableName() string { return "system_settings" }

type userSystemAdminV2 struct {
	IsSystemAdmin   bool    `gorm:"not null;default:false"`
	SystemAdminRole *string `gorm:"type:varchar(50)"`
}

func (userSystemAdminV2) TableName() string { return "users" }

func upSystemSettings(tx *gorm.DB) error {
	if err := tx.Migrator().CreateTable(&systemSettingV1{}); err != nil {
		return err
	}
	if err := addColumnIfMissing(tx, &userSystemAdminV2{}, "IsSystemAdmin"); err != nil {
		return err
	}
	return addColumnIfMissing(tx, &userSystemAdminV2{}, "SystemAdminRole")
}

func downSystemSettings(tx *gorm.DB) error {
	if err := dropColumnIfExists(tx, &userSystemAdminV2{}, "SystemAdminRole"); err != nil {
		return err
	}
	if err := dropColumnIfExists(tx, &userSystemAdminV2{}, "IsSystemAdmin"); err != nil {
		return err
	}
	return dropTables(tx, "system_settings")
}
