package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type AppModel struct {
	ID            string          `gorm:"primaryKey;type:varchar(36)"`
	Name          string          `gorm:"type:varchar(255);not null"`
	Slug          string          `gorm:"type:varchar(100);not null"`
	Description   string          `gorm:"type:text"`
	Price         decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	BillingPeriod string          `gorm:"type:varchar(20);not null"`
	Status        string          `gorm:"type:varchar(20);not null"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

func (AppModel) TableName() string {
	return "apps"
}

type OrganizationAppAccessModel struct {
	ID             string    `gorm:"primaryKey;type:varchar(36)"`
	OrganizationID string    `gorm:"type:varchar(36);not null"`
	UserID         string    `gorm:"type:varchar(36);not null"`
	AppID          string    `gorm:"type:varchar(36);not null"`
	RoleID         string    `gorm:"type:varchar(36);not null"`
	GrantedBy      *string   `gorm:"type:varchar(36)"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}

func (OrganizationAppAccessModel) TableName() string {
	return "organization_app_access"
}
