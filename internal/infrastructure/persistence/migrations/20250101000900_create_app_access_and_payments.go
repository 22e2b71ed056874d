package migrations

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type organizationAppAccessV1 struct {
	ID             string         `gorm:"primaryKey;type:varchar(36)"`
	OrganizationID string         `gorm:"type:varchar(36);not null;uniqueIndex:uk_app_access_org_user_app,priority:1"`
	Organization   organizationV1 `gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	UserID         string         `gorm:"type:varchar(36);not null;uniqueIndex:uk_app_access_org_user_app,priority:2"`
	User           userV1         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	AppID          string         `gorm:"type:varchar(36);not null;uniqueIndex:uk_app_access_org_user_app,priority:3"`
	App            appV1          `gorm:"foreignKey:AppID;constraint:OnDelete:CASCADE"`
	RoleID         string         `gorm:"type:varchar(36);not null"`
	Role           roleV1         `gorm:"foreignKey:RoleID;constraint:OnDelete:RESTRICT"`
	GrantedBy      *string        `gorm:"type:varchar(36)"`
	CreatedAt      time.Time      `gorm:"not null"`
	UpdatedAt      time.Time      `gorm:"not null"`
}

func (organizationAppAccessV1) TableName() string { return "organization_app_access" }

type paymentV1 struct {
	ID               string          `gorm:"primaryKey;type:varchar(36)"`
	OrganizationID   string          `gorm:"type:varchar(36);not null;index:idx_payments_organization_id"`
	Organization     organizationV1  `gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Gateway          string          `gorm:"type:varchar(20);not null"`
	Status           string          `gorm:"type:varchar(20);not null;default:pending"`
	Amount           decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Currency         string          `gorm:"type:varchar(3);not null"`
	GatewaySessionID *string         `gorm:"type:varchar(255);uniqueIndex:uk_payments_gateway_session"`
	Description      string          `gorm:"type:varchar(500)"`
	CompletedAt      *time.Time
	CreatedAt        time.Time `gorm:"not null"`
	UpdatedAt        time.Time `gorm:"not null"`
}

func (paymentV1) TableName() string { return "payments" }

type fileUploadV1 struct {
	ID             string    `gorm:"primaryKey;type:varchar(36)"`
	UploadedBy     string    `gorm:"type:varchar(36);not null;index:idx_file_uploads_uploaded_by"`
	Uploader       userV1    `gorm:"foreignKey:UploadedBy;constraint:OnDelete:CASCADE"`
	OrganizationID *string   `gorm:"type:varchar(36);index:idx_file_uploads_organization_id"`
	Name           string    `gorm:"type:varchar(255);not null"`
	MimeType       string    `gorm:"type:varchar(100);not null"`
	Size           int64     `gorm:"not null"`
	ThumbnailURL   *string   `gorm:"type:varchar(2048)"`
	CreatedAt      time.Time `gorm:"not null"`
}

func (fileUploadV1) TableName() string { return "file_uploads" }

func upAppAccessAndPayments(tx *gorm.DB) error {
	return tx.Migrator().CreateTable(&organizationAppAccessV1{}, &paymentV1{}, &fileUploadV1{})
}

func downAppAccessAndPayments(tx *gorm.DB) error {
	return dropTables(tx, "file_uploads", "payments", "organization_app_access")
}
