package adapters

import (
	adminUsecases "github.com/merojugx/mero/internal/application/admin/usecases"
	"github.com/merojugx/mero/internal/infrastructure/auth"
	"github.com/merojugx/mero/internal/shared/authorization"
)

// TokenIssuerAdapter adapts the JWT service to the admin login use case.
type TokenIssuerAdapter struct {
	jwt *auth.JWTService
}

func NewTokenIssuerAdapter(jwt *auth.JWTService) *TokenIssuerAdapter {
	return &TokenIssuerAdapter{jwt: jwt}
}

// IssueSystemAdmin signs a pair without an organization claim.
func (a *TokenIssuerAdapter) IssueSystemAdmin(userID, sessionID string, role authorization.SystemAdminRole) (*adminUsecases.TokenPair, error) {
	pair, err := a.jwt.Generate(auth.Subject{
		UserID:          userID,
		SessionID:       sessionID,
		IsSystemAdmin:   true,
		SystemAdminRole: role.String(),
	})
	if err != nil {
		return nil, err
	}
	return &adminUsecases.TokenPair{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}
