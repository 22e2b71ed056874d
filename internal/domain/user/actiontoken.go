package user

import (
	"time"

	"github.com/merojugx/mero/internal/shared/biztime"
	"github.com/merojugx/mero/internal/shared/id"
)

type TokenPurpose string

const (
	PurposeEmailVerification TokenPurpose = "email_verification"
	PurposePasswordReset     TokenPurpose = "password_reset"
)

// Lifetimes of the links sent by email.
const (
	EmailVerificationTTL = 24 * time.Hour
	PasswordResetTTL     = 30 * time.Minute
)

// ActionToken is a single use secret mailed to a user. Only its hash is kept.
type ActionToken struct {
	id        string
	userID    string
	purpose   TokenPurpose
	tokenHash string
	expiresAt time.Time
	usedAt    *time.Time
	createdAt time.Time
}

func NewActionToken(userID string, purpose TokenPurpose, tokenHash string, ttl time.Duration) *ActionToken {
	now := biztime.NowUTC()
	return &ActionToken{
		id:        id.New(),
		userID:    userID,
		purpose:   purpose,
		tokenHash: tokenHash,
		expiresAt: now.Add(ttl),
		createdAt: now,
	}
}

// ReconstructActionToken rebuilds a token from persistence
func ReconstructActionToken(
	id, userID string,
	purpose TokenPurpose,
	tokenHash string,
	expiresAt time.Time,
	usedAt *time.Time,
	createdAt time.Time,
) *ActionToken {
	return &ActionToken{
		id:        id,
		userID:    userID,
		purpose:   purpose,
		tokenHash: tokenHash,
		expiresAt: expiresAt,
		usedAt:    usedAt,
		createdAt: createdAt,
	}
}

func (t *ActionToken) ID() string            { return t.id }
func (t *ActionToken) UserID() string        { return t.userID }
func (t *ActionToken) Purpose() TokenPurpose { return t.purpose }
func (t *ActionToken) TokenHash() string     { return t.tokenHash }
func (t *ActionToken) ExpiresAt() time.Time  { return t.expiresAt }
func (t *ActionToken) UsedAt() *time.Time    { return t.usedAt }
func (t *ActionToken) CreatedAt() time.Time  { return t.createdAt }

// Use marks the token consumed. Expired and spent tokens are refused.
func (t *ActionToken) Use() error {
	now := biztime.NowUTC()
	if t.usedAt != nil || !now.Before(t.expiresAt) {
		return ErrActionTokenInvalid
	}
	t.usedAt = &now
	return nil
}
