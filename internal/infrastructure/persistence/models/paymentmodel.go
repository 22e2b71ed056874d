package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentModel is the persistence model for payments
type PaymentModel struct {
	ID               string          `gorm:"primaryKey;type:varchar(36)"`
	OrganizationID   string          `gorm:"type:varchar(36);not null"`
	Gateway          string          `gorm:"type:varchar(20);not null"`
	Status           string          `gorm:"type:varchar(20);not null"`
	Amount           decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Currency         string          `gorm:"type:varchar(3);not null"`
	GatewaySessionID *string         `gorm:"type:varchar(255)"`
	Description      string          `gorm:"type:varchar(500)"`
	CompletedAt      *time.Time
	CreatedAt        time.Time `gorm:"not null"`
	UpdatedAt        time.Time `gorm:"not null"`
}

func (PaymentModel) TableName() string {
	return "payments"
}

type FileUploadModel struct {
	ID             string    `gorm:"primaryKey;type:varchar(36)"`
	UploadedBy     string    `gorm:"type:varchar(36);not null"`
	OrganizationID *string   `gorm:"type:varchar(36)"`
	Name           string    `gorm:"type:varchar(255);not null"`
	MimeType       string    `gorm:"type:varchar(100);not null"`
	Size           int64     `gorm:"not null"`
	ThumbnailURL   *string   `gorm:"type:varchar(2048)"`
	CreatedAt      time.Time `gorm:"not null"`
}

func (FileUploadModel) TableName() string {
	return "file_uploads"
}
