package user

import (
	"strings"
	"time"

	"github.com/merojugx/mero/internal/shared/authorization"
	"github.com/merojugx/mero/internal/shared/biztime"
	"github.com/merojugx/mero/internal/shared/id"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusSuspended Status = "suspended"
)

type User struct {
	id                  string
	email               string
	passwordHash        string
	firstName           string
	lastName            string
	status              Status
	emailVerified       bool
	mfaEnabled          bool
	mfaSecret           *string
	mfaBackupCodes      []string
	mfaSetupCompletedAt *time.Time
	isSystemAdmin       bool
	systemAdminRole     *authorization.SystemAdminRole
	lastLoginAt         *time.Time
	createdAt           time.Time
	updatedAt           time.Time
}

func NewUser(email, passwordHash, firstName, lastName string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}

	now := biztime.NowUTC()
	return &User{
		id:           id.New(),
		email:        email,
		passwordHash: passwordHash,
		firstName:    firstName,
		lastName:     lastName,
		status:       StatusActive,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// Snapshot carries every persisted field of a user.
type Snapshot struct {
	ID                  string
	Email               string
	PasswordHash        string
	FirstName           string
	LastName            string
	Status              Status
	EmailVerified       bool
	MFAEnabled          bool
	MFASecret           *string
	MFABackupCodes      []string
	MFASetupCompletedAt *time.Time
	IsSystemAdmin       bool
	SystemAdminRole     *authorization.SystemAdminRole
	LastLoginAt         *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// ReconstructUser rebuilds a user from persistence
func ReconstructUser(s Snapshot) *User {
	return &User{
		id:                  s.ID,
		email:               s.Email,
		passwordHash:        s.PasswordHash,
		firstName:           s.FirstName,
		lastName:            s.LastName,
		status:              s.Status,
		emailVerified:       s.EmailVerified,
		mfaEnabled:          s.MFAEnabled,
		mfaSecret:           s.MFASecret,
		mfaBackupCodes:      s.MFABackupCodes,
		mfaSetupCompletedAt: s.MFASetupCompletedAt,
		isSystemAdmin:       s.IsSystemAdmin,
		systemAdminRole:     s.SystemAdminRole,
		lastLoginAt:         s.LastLoginAt,
		createdAt:           s.CreatedAt,
		updatedAt:           s.UpdatedAt,
	}
}

func (u *User) ID() string                      { return u.id }
func (u *User) Email() string                   { return u.email }
func (u *User) PasswordHash() string            { return u.passwordHash }
func (u *User) FirstName() string               { return u.firstName }
func (u *User) LastName() string                { return u.lastName }
func (u *User) Status() Status                  { return u.status }
func (u *User) EmailVerified() bool             { return u.emailVerified }
func (u *User) MFAEnabled() bool                { return u.mfaEnabled }
func (u *User) MFASecret() *string              { return u.mfaSecret }
func (u *User) MFASetupCompletedAt() *time.Time { return u.mfaSetupCompletedAt }
func (u *User) IsSystemAdmin() bool             { return u.isSystemAdmin }
func (u *User) LastLoginAt() *time.Time         { return u.lastLoginAt }
func (u *User) CreatedAt() time.Time            { return u.createdAt }
func (u *User) UpdatedAt() time.Time            { return u.updatedAt }

func (u *User) SystemAdminRole() *authorization.SystemAdminRole { return u.systemAdminRole }

// MFABackupCodes returns the hashed backup codes.
func (u *User) MFABackupCodes() []string {
	return append([]string(nil), u.mfaBackupCodes...)
}

func (u *User) FullName() string {
	return strings.TrimSpace(u.firstName + " " + u.lastName)
}

func (u *User) IsActive() bool {
	return u.status == StatusActive
}

func (u *User) VerifyEmail() {
	u.emailVerified = true
	u.updatedAt = biztime.NowUTC()
}

// CanLoginAsSystemAdmin checks the preconditions of the admin console login.
func (u *User) CanLoginAsSystemAdmin() error {
	if !u.isSystemAdmin || u.systemAdminRole == nil || !u.systemAdminRole.IsValid() {
		return ErrNotSystemAdmin
	}
	if !u.emailVerified {
		return ErrEmailNotVerified
	}
	if !u.IsActive() {
		return ErrUserInactive
	}
	return nil
}

func (u *User) GrantSystemAdmin(role authorization.SystemAdminRole) error {
	if !role.IsValid() {
		return ErrInvalidSystemAdminRole
	}
	u.isSystemAdmin = true
	u.systemAdminRole = &role
	u.updatedAt = biztime.NowUTC()
	return nil
}

func (u *User) RevokeSystemAdmin() {
	u.isSystemAdmin = false
	u.systemAdminRole = nil
	u.updatedAt = biztime.NowUTC()
}

// CanLogin checks the preconditions of an organization login.
func (u *User) CanLogin() error {
	if !u.IsActive() {
		return ErrUserInactive
	}
	if !u.emailVerified {
		return ErrEmailNotVerified
	}
	return nil
}

func (u *User) ChangePassword(passwordHash string) {
	u.passwordHash = passwordHash
	u.updatedAt = biztime.NowUTC()
}

func (u *User) RecordLogin() {
	now := biztime.NowUTC()
	u.lastLoginAt = &now
	u.updatedAt = now
}

// BeginMFASetup stores a secret that is not trusted until a code generated
// from it is confirmed.
func (u *User) BeginMFASetup(secret string) error {
	if u.mfaEnabled {
		return ErrMFAAlreadyEnabled
	}
	u.mfaSecret = &secret
	u.mfaBackupCodes = nil
	u.updatedAt = biztime.NowUTC()
	return nil
}

// PendingMFASecret returns the secret of an unfinished setup.
func (u *User) PendingMFASecret() (string, bool) {
	if u.mfaEnabled || u.mfaSecret == nil {
		return "", false
	}
	return *u.mfaSecret, true
}

// EnableMFA stores a confirmed TOTP secret together with hashed backup codes.
func (u *User) EnableMFA(secret string, hashedBackupCodes []string) {
	now := biztime.NowUTC()
	u.mfaEnabled = true
	u.mfaSecret = &secret
	u.mfaBackupCodes = append([]string(nil), hashedBackupCodes...)
	u.mfaSetupCompletedAt = &now
	u.updatedAt = now
}

func (u *User) DisableMFA() error {
	if !u.mfaEnabled {
		return ErrMFANotEnabled
	}
	u.mfaEnabled = false
	u.mfaSecret = nil
	u.mfaBackupCodes = nil
	u.mfaSetupCompletedAt = nil
	u.updatedAt = biztime.NowUTC()
	return nil
}

// ReplaceBackupCodes swaps every backup code hash for a fresh set.
func (u *User) ReplaceBackupCodes(hashedBackupCodes []string) error {
	if !u.mfaEnabled {
		return ErrMFANotEnabled
	}
	u.mfaBackupCodes = append([]string(nil), hashedBackupCodes...)
	u.updatedAt = biztime.NowUTC()
	return nil
}

// ConsumeBackupCode removes the backup code hash at index i.
func (u *User) ConsumeBackupCode(i int) {
	if i < 0 || i >= len(u.mfaBackupCodes) {
		return
	}
	codes := make([]string, 0, len(u.mfaBackupCodes)-1)
	codes = append(codes, u.mfaBackupCodes[:i]...)
	u.mfaBackupCodes = append(codes, u.mfaBackupCodes[i+1:]...)
	u.updatedAt = biztime.NowUTC()
}
