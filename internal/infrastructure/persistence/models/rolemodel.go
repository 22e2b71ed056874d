package models

import "time"

type RoleModel struct {
	ID                  string    `gorm:"primaryKey;type:varchar(36)"`
	OrganizationID      string    `gorm:"type:varchar(36);not null"`
	Name                string    `gorm:"type:varchar(100);not null"`
	Slug                string    `gorm:"type:varchar(100);not null"`
	Description         string    `gorm:"type:varchar(500)"`
	IsSystemRole        bool      `gorm:"not null;default:false"`
	IsOrganizationOwner bool      `gorm:"not null;default:false"`
	HierarchyLevel      *int      `gorm:"column:hierarchy_level"`
	CreatedAt           time.Time `gorm:"not null"`
	UpdatedAt           time.Time `gorm:"not null"`
}

func (RoleModel) TableName() string {
	return "roles"
}
