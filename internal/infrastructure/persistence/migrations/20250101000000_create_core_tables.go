package migrations

import (
	"time"

	"gorm.io/gorm"
)

type organizationV1 struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Slug      string    `gorm:"type:varchar(50);not null;uniqueIndex:uk_organizations_slug"`
	Status    string    `gorm:"type:varchar(20);not null;default:active"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (organizationV1) TableName() string { return "organizations" }

type userV1 struct {
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
	LastLoginAt         *time.Time
	CreatedAt           time.Time `gorm:"not null"`
	UpdatedAt           time.Time `gorm:"not null"`
}

func (userV1) TableName() string { return "users" }

type roleV1 struct {
	ID                  string         `gorm:"primaryKey;type:varchar(36)"`
	OrganizationID      string         `gorm:"type:varchar(36);not null;uniqueIndex:uk_roles_org_slug,priority:1"`
	Organization        organizationV1 `gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Name                string         `gorm:"type:varchar(100);not null"`
	Slug                string         `gorm:"type:varchar(100);not null;uniqueIndex:uk_roles_org_slug,priority:2"`
	Description         string         `gorm:"type:varchar(500)"`
	IsSystemRole        bool           `gorm:"not null;default:false"`
	IsOrganizationOwner bool           `gorm:"not null;default:false"`
	CreatedAt           time.Time      `gorm:"not null"`
	UpdatedAt           time.Time      `gorm:"not null"`
}

func (roleV1) TableName() string { return "roles" }

type organizationMemberV1 struct {
	ID             string         `gorm:"primaryKey;type:varchar(36)"`
	OrganizationID string         `gorm:"type:varchar(36);not null;uniqueIndex:uk_members_org_user,priority:1"`
	Organization   organizationV1 `gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	UserID         string         `gorm:"type:varchar(36);not null;uniqueIndex:uk_members_org_user,priority:2;index:idx_members_user_id"`
	User           userV1         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	RoleID         string         `gorm:"type:varchar(36);not null"`
	Role           roleV1         `gorm:"foreignKey:RoleID;constraint:OnDelete:RESTRICT"`
	Status         string         `gorm:"type:varchar(20);not null;default:active"`
	CreatedAt      time.Time      `gorm:"not null"`
	UpdatedAt      time.Time      `gorm:"not null"`
}

func (organizationMemberV1) TableName() string { return "organization_members" }

// sessions start out bound to an organization; see the 001000 step.
type sessionV1 struct {
	ID               string         `gorm:"primaryKey;type:varchar(36)"`
	UserID           string         `gorm:"type:varchar(36);not null;index:idx_sessions_user_id"`
	User             userV1         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	OrganizationID   string         `gorm:"type:varchar(36);not null;index:idx_sessions_organization_id"`
	Organization     organizationV1 `gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	RefreshTokenHash string         `gorm:"type:varchar(255);not null"`
	IPAddress        string         `gorm:"type:varchar(45)"`
	UserAgent        string         `gorm:"type:varchar(500)"`
	ExpiresAt        time.Time      `gorm:"not null;index:idx_sessions_expires_at"`
	RevokedAt        *time.Time
	CreatedAt        time.Time `gorm:"not null"`
	UpdatedAt        time.Time `gorm:"not null"`
}

func (sessionV1) TableName() string { return "sessions" }

func upCoreTables(tx *gorm.DB) error {
	return tx.Migrator().CreateTable(
		&organizationV1{},
		&userV1{},
		&roleV1{},
		&organizationMemberV1{},
		&sessionV1{},
	)
}

func downCoreTables(tx *gorm.DB) error {
	return dropTables(tx, "sessions", "organization_members", "roles", "users", "organizations")
}
