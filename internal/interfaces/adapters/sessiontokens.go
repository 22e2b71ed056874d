package adapters

import (
	authUsecases "github.com/merojugx/mero/internal/application/auth/usecases"
	"github.com/merojugx/mero/internal/infrastructure/auth"
	"github.com/merojugx/mero/internal/shared/authorization"
)

// SessionTokenAdapter adapts the JWT service to the login and refresh use cases.
type SessionTokenAdapter struct {
	jwt *auth.JWTService
}

func NewSessionTokenAdapter(jwt *auth.JWTService) *SessionTokenAdapter {
	return &SessionTokenAdapter{jwt: jwt}
}

func (a *SessionTokenAdapter) IssueForOrganization(userID, sessionID, organizationID string) (*authUsecases.TokenPair, error) {
	return a.issue(auth.Subject{
		UserID:         userID,
		SessionID:      sessionID,
		OrganizationID: &organizationID,
	})
}

func (a *SessionTokenAdapter) IssueSystemAdmin(userID, sessionID string, role authorization.SystemAdminRole) (*authUsecases.TokenPair, error) {
	return a.issue(auth.Subject{
		UserID:          userID,
		SessionID:       sessionID,
		IsSystemAdmin:   true,
		SystemAdminRole: role.String(),
	})
}

func (a *SessionTokenAdapter) ParseRefresh(token string) (*authUsecases.RefreshClaims, error) {
	claims, err := a.jwt.VerifyRefresh(token)
	if err != nil {
		return nil, err
	}
	return &authUsecases.RefreshClaims{
		UserID:         claims.UserID,
		SessionID:      claims.SessionID,
		OrganizationID: claims.OrganizationID,
	}, nil
}

func (a *SessionTokenAdapter) issue(sub auth.Subject) (*authUsecases.TokenPair, error) {
	pair, err := a.jwt.Generate(sub)
	if err != nil {
		return nil, err
	}
	return &authUsecases.TokenPair{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}
