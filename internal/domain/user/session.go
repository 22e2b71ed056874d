package user

import (
	"time"

	"github.com/merojugx/mero/internal/shared/biztime"
	"github.com/merojugx/mero/internal/shared/id"
)

// Session is a refresh token grant. System admin sessions carry no
// organization.
type Session struct {
	id               string
	userID           string
	organizationID   *string
	refreshTokenHash string
	ipAddress        string
	userAgent        string
	expiresAt        time.Time
	revokedAt        *time.Time
	createdAt        time.Time
	updatedAt        time.Time
}

// NewSession creates a session. Pass a nil organizationID for a system admin session.
func NewSession(userID string, organizationID *string, ipAddress, userAgent string, ttl time.Duration) *Session {
	now := biztime.NowUTC()
	return &Session{
		id:             id.New(),
		userID:         userID,
		organizationID: organizationID,
		ipAddress:      ipAddress,
		userAgent:      userAgent,
		expiresAt:      now.Add(ttl),
		createdAt:      now,
		updatedAt:      now,
	}
}

// ReconstructSession rebuilds a session from persistence
func ReconstructSession(
	id, userID string,
	organizationID *string,
	refreshTokenHash, ipAddress, userAgent string,
	expiresAt time.Time,
	revokedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Session {
	return &Session{
		id:               id,
		userID:           userID,
		organizationID:   organizationID,
		refreshTokenHash: refreshTokenHash,
		ipAddress:        ipAddress,
		userAgent:        userAgent,
		expiresAt:        expiresAt,
		revokedAt:        revokedAt,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

func (s *Session) ID() string               { return s.id }
func (s *Session) UserID() string           { return s.userID }
func (s *Session) OrganizationID() *string  { return s.organizationID }
func (s *Session) RefreshTokenHash() string { return s.refreshTokenHash }
func (s *Session) IPAddress() string        { return s.ipAddress }
func (s *Session) UserAgent() string        { return s.userAgent }
func (s *Session) ExpiresAt() time.Time     { return s.expiresAt }
func (s *Session) RevokedAt() *time.Time    { return s.revokedAt }
func (s *Session) CreatedAt() time.Time     { return s.createdAt }
func (s *Session) UpdatedAt() time.Time     { return s.updatedAt }

func (s *Session) IsSystemAdminSession() bool {
	return s.organizationID == nil
}

func (s *Session) IsActive() bool {
	return s.revokedAt == nil && biztime.NowUTC().Before(s.expiresAt)
}

// SetRefreshTokenHash binds the hashed refresh token. It is set after the
// session id is known because the token embeds it.
func (s *Session) SetRefreshTokenHash(hash string) {
	s.refreshTokenHash = hash
	s.updatedAt = biztime.NowUTC()
}

func (s *Session) Revoke() {
	if s.revokedAt != nil {
		return
	}
	now := biztime.NowUTC()
	s.revokedAt = &now
	s.updatedAt = now
}
