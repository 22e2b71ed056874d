package models

import "time"

type WarehouseModel struct {
	ID             string    `gorm:"primaryKey;type:varchar(36)"`
	OrganizationID string    `gorm:"type:varchar(36);not null"`
	Name           string    `gorm:"type:varchar(255);not null"`
	Code           string    `gorm:"type:varchar(50)"`
	Address        string    `gorm:"type:text"`
	Type           string    `gorm:"type:varchar(20);not null;default:main"`
	IsActive       bool      `gorm:"not null;default:true"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}

func (WarehouseModel) TableName() string {
	return "warehouses"
}
