package migrations

import (
	"time"

	"gorm.io/gorm"
)

type warehouseV1 struct {
	ID             string         `gorm:"primaryKey;type:varchar(36)"`
	OrganizationID string         `gorm:"type:varchar(36);not null;index:idx_warehouses_organization_id"`
	Organization   organizationV1 `gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Name           string         `gorm:"type:varchar(255);not null"`
	Code           string         `gorm:"type:varchar(50)"`
	Address        string         `gorm:"type:text"`
	IsActive       bool           `gorm:"not null;default:true"`
	CreatedAt      time.Time      `gorm:"not null"`
	UpdatedAt      time.Time      `gorm:"not null"`
}

func (warehouseV1) TableName() string { return "warehouses" }

func upWarehouses(tx *gorm.DB) error {
	return tx.Migrator().CreateTable(&warehouseV1{})
}

func downWarehouses(tx *gorm.DB) error {
	return dropTables(tx, "warehouses")
}
