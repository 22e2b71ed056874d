package migrations

import (
	"time"

	"gorm.io/gorm"
)

type userActionTokenV1 struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `gorm:"type:varchar(36);not null;index:idx_user_action_tokens_user_purpose,priority:1"`
	User      userV1    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Purpose   string    `gorm:"type:varchar(30);not null;index:idx_user_action_tokens_user_purpose,priority:2"`
	TokenHash string    `gorm:"type:varchar(64);not null;uniqueIndex:uk_user_action_tokens_hash"`
	ExpiresAt time.Time `gorm:"not null"`
	UsedAt    *time.Time
	CreatedAt time.Time `gorm:"not null"`
}

func (userActionTokenV1) TableName() string { return "user_action_tokens" }

func upUserActionTokens(tx *gorm.DB) error {
	return tx.Migrator().CreateTable(&userActionTokenV1{})
}

func downUserActionTokens(tx *gorm.DB) error {
	return dropTables(tx, "user_action_tokens")
}
