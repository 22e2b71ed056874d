package models

import "time"

// SessionModel represents the database persistence model for sessions.
// OrganizationID is NULL for system admin sessions.
type SessionModel struct {
	ID               string    `gorm:"primaryKey;type:varchar(36)"`
	UserID           string    `gorm:"type:varchar(36);not null"`
	OrganizationID   *string   `gorm:"type:varchar(36)"`
	RefreshTokenHash string    `gorm:"type:varchar(255);not null"`
	IPAddress        string    `gorm:"type:varchar(45)"`
	UserAgent        string    `gorm:"type:varchar(500)"`
	ExpiresAt        time.Time `gorm:"not null"`
	RevokedAt        *time.Time
	CreatedAt        time.Time `gorm:"not null"`
	UpdatedAt        time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (SessionModel) TableName() string {
	return "sessions"
}
