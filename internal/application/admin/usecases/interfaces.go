package usecases

import (
	"context"

	"github.com/merojugx/mero/internal/application/admin/dto"
	"github.com/merojugx/mero/internal/shared/authorization"
)

// TokenPair is an issued access/refresh token pair.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// TokenIssuer signs tokens for a system admin session.
type TokenIssuer interface {
	IssueSystemAdmin(userID, sessionID string, role authorization.SystemAdminRole) (*TokenPair, error)
}

type PasswordVerifier interface {
	Verify(secret, hash string) error
}

// RoleSyncer mirrors a user's system admin role into the permission enforcer.
// An empty role clears every grant.
type RoleSyncer interface {
	SetUserRole(userID, role string) error
}

type AdminLoginExecutor interface {
	Execute(ctx context.Context, cmd AdminLoginCommand) (*dto.AdminLoginResponse, error)
}

type SetSystemAdminExecutor interface {
	Execute(ctx context.Context, cmd SetSystemAdminCommand) (*dto.SystemAdminDTO, error)
}

type GetPlatformStatsExecutor interface {
	Execute(ctx context.Context) (*dto.PlatformStatsResponse, error)
}
