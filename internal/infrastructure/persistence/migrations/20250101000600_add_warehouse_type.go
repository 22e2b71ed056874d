package migrations

import "gorm.io/gorm"

// Existing rows pick up the default.
type warehouseTypeV2 struct {
	Type string `gorm:"type:varchar(20);not null;default:main"`
}

func (warehouseTypeV2) TableName() string { return "warehouses" }

func upWarehouseType(tx *gorm.DB) error {
	return addColumnIfMissing(tx, &warehouseTypeV2{}, "Type")
}

func downWarehouseType(tx *gorm.DB) error {
	return dropColumnIfExists(tx, &warehouseTypeV2{}, "Type")
}
