// Package seeds inserts reference data that a fresh installation needs.
package seeds

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/merojugx/mero/internal/infrastructure/persistence/models"
	"github.com/merojugx/mero/internal/shared/biztime"
	"github.com/merojugx/mero/internal/shared/id"
)

// DefaultSystemSettings are created on first start. Existing rows are never
// overwritten, so admin edits survive restarts.
var DefaultSystemSettings = []models.SystemSettingModel{
	{Key: "platform.name", Value: "Mero Jugx", Description: "Display name of the platform", Category: "general", IsPublic: true},
	{Key: "platform.support_email", Value: "support@merojugx.com", Description: "Address shown on help pages", Category: "general", IsPublic: true},
	{Key: "platform.maintenance_mode", Value: "false", Description: "Reject non-admin traffic while true", Category: "general", IsPublic: true},
	{Key: "security.session_ttl_hours", Value: "168", Description: "Lifetime of a login session", Category: "security"},
	{Key: "security.mfa_required_for_admins", Value: "false", Description: "Require MFA for system admin login", Category: "security"},
	{Key: "uploads.max_file_size_mb", Value: "25", Description: "Largest accepted upload", Category: "uploads", IsPublic: true},
	{Key: "tickets.default_priority", Value: "medium", Description: "Priority assigned when none is given", Category: "tickets"},
}

func SeedSystemSettings(db *gorm.DB) error {
	for _, def := range DefaultSystemSettings {
		now := biztime.NowUTC()
		setting := def
		setting.ID = id.New()
		setting.CreatedAt = now
		setting.UpdatedAt = now

		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoNothing: true,
		}).Create(&setting).Error
		if err != nil {
			return fmt.Errorf("failed to seed system setting %s: %w", def.Key, err)
		}
	}
	return nil
}
