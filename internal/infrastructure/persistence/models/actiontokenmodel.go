package models

import "time"

// ActionTokenModel stores the SHA-256 digest of a mailed single use token.
type ActionTokenModel struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `gorm:"type:varchar(36);not null"`
	Purpose   string    `gorm:"type:varchar(30);not null"`
	TokenHash string    `gorm:"type:varchar(64);not null"`
	ExpiresAt time.Time `gorm:"not null"`
	UsedAt    *time.Time
	CreatedAt time.Time `gorm:"not null"`
}

func (ActionTokenModel) TableName() string {
	return "user_action_tokens"
}
