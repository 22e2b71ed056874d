package models

import "time"

// UserModel represents the database persistence model for users.
// MFABackupCodes holds a JSON array of hashed codes.
type UserModel struct {
	ID                  string     `gorm:"primaryKey;type:varchar(36)"`
	Email               string     `gorm:"type:varchar(255);not null;uniqueIndex:uk_users_email"`
	PasswordHash        string     `gorm:"type:varchar(255)"`
	FirstName           string     `gorm:"type:varchar(100)"`
	LastName            string     `gorm:"type:varchar(100)"`
	Status              string     `gorm:"type:varchar(20);not null;default:active"`
	EmailVerified       bool       `gorm:"not null;default:false"`
	MFAEnabled          bool       `gorm:"column:mfa_enabled;not null;default:false"`
	MFASecret           *string    `gorm:"column:mfa_secret;type:varchar(255)"`
	MFABackupCodes      *string    `gorm:"column:mfa_backup_codes;type:text"`
	MFASetupCompletedAt *time.Time `gorm:"column:mfa_setup_completed_at"`
	IsSystemAdmin       bool       `gorm:"not null;default:false"`
	SystemAdminRole     *string    `gorm:"type:varchar(50)"`
	LastLoginAt         *time.Time
	CreatedAt           time.Time `gorm:"not null"`
	UpdatedAt           time.Time `gorm:"not null"`
}

func (UserModel) TableName() string {
	return "users"
}
