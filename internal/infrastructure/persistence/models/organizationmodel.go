package models

import "time"

// OrganizationModel is the GORM model for the organizations table
type OrganizationModel struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Slug      string    `gorm:"type:varchar(50);not null;uniqueIndex:uk_organizations_slug"`
	Status    string    `gorm:"type:varchar(20);not null;default:active"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (OrganizationModel) TableName() string {
	return "organizations"
}

type OrganizationMemberModel struct {
	ID             string    `gorm:"primaryKey;type:varchar(36)"`
	OrganizationID string    `gorm:"type:varchar(36);not null"`
	UserID         string    `gorm:"type:varchar(36);not null"`
	RoleID         string    `gorm:"type:varchar(36);not null"`
	Status         string    `gorm:"type:varchar(20);not null;default:active"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}

func (OrganizationMemberModel) TableName() string {
	return "organization_members"
}
