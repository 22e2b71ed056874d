package migrations

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type appV1 struct {
	ID            string          `gorm:"primaryKey;type:varchar(36)"`
	Name          string          `gorm:"type:varchar(255);not null"`
	Slug          string          `gorm:"type:varchar(100);not null;uniqueIndex:uk_apps_slug"`
	Description   string          `gorm:"type:text"`
	Price         decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	BillingPeriod string          `gorm:"type:varchar(20);not null;default:monthly"`
	Status        string          `gorm:"type:varchar(20);not null;default:active"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

func (appV1) TableName() string { return "apps" }

func upApps(tx *gorm.DB) error {
	if err := tx.Migrator().CreateTable(&appV1{}); err != nil {
		return err
	}
	now := time.Now().UTC()
	return tx.Create(&appV1{
		ID:            uuid.NewString(),
		Name:          "Mero CRM",
		Slug:          meroCRMSlug,
		Description:   "Customer relationship management for growing teams",
		Price:         decimal.RequireFromString("25.00"),
		BillingPeriod: "monthly",
		Status:        "active",
		CreatedAt:     now,
		UpdatedAt:     now,
	}).Error
}

func downApps(tx *gorm.DB) error {
	return dropTables(tx, "apps")
}
