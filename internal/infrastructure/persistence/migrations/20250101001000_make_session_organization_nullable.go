package migrations

import (
	"time"

	"gorm.io/gorm"
)

// System admin sessions are not bound to an organization.
type sessionV2 struct {
	ID               string         `gorm:"primaryKey;type:varchar(36)"`
	UserID           string         `gorm:"type:varchar(36);not null;index:idx_sessions_user_id"`
	User             userV1         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	OrganizationID   *string        `gorm:"type:varchar(36);index:idx_sessions_organization_id"`
	Organization     organizationV1 `gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	RefreshTokenHash string         `gorm:"type:varchar(255);not null"`
	IPAddress        string         `gorm:"type:varchar(45)"`
	UserAgent        string         `gorm:"type:varchar(500)"`
	ExpiresAt        time.Time      `gorm:"not null;index:idx_sessions_expires_at"`
	RevokedAt        *time.Time
	CreatedAt        time.Time `gorm:"not null"`
	UpdatedAt        time.Time `gorm:"not null"`
}

func (sessionV2) TableName() string { return "sessions" }

func upSessionOrganizationNullable(tx *gorm.DB) error {
	return tx.Migrator().AlterColumn(&sessionV2{}, "OrganizationID")
}

// Rows without an organization cannot satisfy the restored constraint, so
// they are removed first.
func downSessionOrganizationNullable(tx *gorm.DB) error {
	if err := tx.Exec("DELETE FROM sessions WHERE organization_id IS NULL").Error; err != nil {
		return err
	}
	return tx.Migrator().AlterColumn(&sessionV1{}, "OrganizationID")
}
