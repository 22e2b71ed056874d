package usecases

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	"github.com/merojugx/mero/internal/application/auth/dto"
	"github.com/merojugx/mero/internal/shared/authorization"
)

const minPasswordLength = 8

type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// RefreshClaims is the identity carried by a verified refresh token.
type RefreshClaims struct {
	UserID         string
	SessionID      string
	OrganizationID *string
}

// SessionTokens signs token pairs and reads refresh tokens back.
type SessionTokens interface {
	IssueForOrganization(userID, sessionID, organizationID string) (*TokenPair, error)
	IssueSystemAdmin(userID, sessionID string, role authorization.SystemAdminRole) (*TokenPair, error)
	// ParseRefresh fails for access tokens, bad signatures and expired tokens.
	ParseRefresh(token string) (*RefreshClaims, error)
}

type PasswordHasher interface {
	Hash(secret string) (string, error)
	Verify(secret, hash string) error
}

// LinkTokens mints the single use secrets sent in emailed links.
type LinkTokens interface {
	Generate() (plain string, hash string, err error)
	Hash(plain string) string
}

type EmailService interface {
	SendVerificationEmail(to, token string) error
	SendPasswordResetEmail(to, token string) error
	SendPasswordChangedEmail(to string) error
}

type CodeValidator interface {
	Validate(code, secret string) bool
}

type BackupCodeMatcher interface {
	Match(code string, hashes []string) int
}

type RegisterOrganizationExecutor interface {
	Execute(ctx context.Context, cmd RegisterOrganizationCommand) (*dto.RegisterOrganizationResponse, error)
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*dto.LoginResponse, error)
}

type RefreshTokenExecutor interface {
	Execute(ctx context.Context, cmd RefreshTokenCommand) (*dto.TokenResponse, error)
}

type LogoutExecutor interface {
	Execute(ctx context.Context, cmd LogoutCommand) error
}

type VerifyEmailExecutor interface {
	Execute(ctx context.Context, cmd VerifyEmailCommand) error
}

type RequestPasswordResetExecutor interface {
	Execute(ctx context.Context, cmd RequestPasswordResetCommand) error
}

type ResetPasswordExecutor interface {
	Execute(ctx context.Context, cmd ResetPasswordCommand) error
}

// hashRefreshToken is the storage form of a refresh token.
func hashRefreshToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
