package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/merojugx/mero/internal/domain/user"
	"github.com/merojugx/mero/internal/infrastructure/auth"
	"github.com/merojugx/mero/internal/shared/authorization"
	"github.com/merojugx/mero/internal/shared/constants"
	"github.com/merojugx/mero/internal/shared/logger"
	"github.com/merojugx/mero/internal/shared/utils"
)

// AccessTokenVerifier validates an access token.
type AccessTokenVerifier interface {
	VerifyAccess(token string) (*auth.Claims, error)
}

// SessionLookup loads the session an access token was issued for.
type SessionLookup interface {
	GetByID(ctx context.Context, id string) (*user.Session, error)
}

var errSessionMismatch = errors.New("session does not match token")

type AuthMiddleware struct {
	verifier AccessTokenVerifier
	sessions SessionLookup
	logger   logger.Interface
}

func NewAuthMiddleware(verifier AccessTokenVerifier, sessions SessionLookup, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
		sessions: sessions,
		logger:   logger,
	}
}

// RequireAuth resolves the principal from the Authorization header, falling
// back to the access token cookie, and rejects the request with 401 otherwise.
// The token's session must still be live, so logout and revocation take
// effect before the access token expires.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := utils.GetBearerToken(c)
		if !ok {
			token = utils.GetTokenFromCookie(c, constants.AccessTokenCookie)
		}
		if token == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		claims, err := m.verifier.VerifyAccess(token)
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		if err := m.checkSession(c.Request.Context(), claims); err != nil {
			if errors.Is(err, errSessionMismatch) || errors.Is(err, user.ErrSessionNotFound) {
				m.logger.Warnw("rejected token for dead session", "session_id", claims.SessionID, "user_id", claims.UserID, "error", err)
				utils.ErrorResponse(c, http.StatusUnauthorized, "session expired or revoked")
			} else {
				m.logger.Errorw("failed to load session", "session_id", claims.SessionID, "error", err)
				utils.ErrorResponse(c, http.StatusInternalServerError, "failed to verify session")
			}
			c.Abort()
			return
		}

		setPrincipal(c, principalFromClaims(claims))
		c.Next()
	}
}

// OptionalAuth sets the principal when a valid token is present and never rejects.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := utils.GetBearerToken(c)
		if !ok {
			token = utils.GetTokenFromCookie(c, constants.AccessTokenCookie)
		}
		if token != "" {
			if claims, err := m.verifier.VerifyAccess(token); err == nil && m.checkSession(c.Request.Context(), claims) == nil {
				setPrincipal(c, principalFromClaims(claims))
			}
		}
		c.Next()
	}
}

// checkSession requires a live session owned by the token's user whose
// organization binding matches the claims. An admin claim is only honored on
// a session without an organization.
func (m *AuthMiddleware) checkSession(ctx context.Context, claims *auth.Claims) error {
	session, err := m.sessions.GetByID(ctx, claims.SessionID)
	if err != nil {
		return err
	}
	if session.UserID() != claims.UserID || !session.IsActive() {
		return errSessionMismatch
	}

	orgID := session.OrganizationID()
	switch {
	case orgID == nil && claims.OrganizationID != nil:
		return errSessionMismatch
	case orgID != nil && (claims.OrganizationID == nil || *claims.OrganizationID != *orgID):
		return errSessionMismatch
	case orgID != nil && claims.IsSystemAdmin:
		return errSessionMismatch
	}
	return nil
}

func principalFromClaims(claims *auth.Claims) authorization.Principal {
	p := authorization.Principal{
		UserID:         claims.UserID,
		SessionID:      claims.SessionID,
		OrganizationID: claims.OrganizationID,
	}
	if claims.IsSystemAdmin {
		if role, ok := authorization.ParseSystemAdminRole(claims.SystemAdminRole); ok {
			p.IsSystemAdmin = true
			p.SystemAdminRole = role
		}
	}
	return p
}

func setPrincipal(c *gin.Context, p authorization.Principal) {
	c.Set(constants.ContextKeyPrincipal, p)
	c.Set(constants.ContextKeyUserID, p.UserID)
	c.Set(constants.ContextKeySessionID, p.SessionID)
}
