package utils

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/merojugx/mero/internal/shared/authorization"
	"github.com/merojugx/mero/internal/shared/constants"
)

// GetTokenFromCookie returns the cookie value or "" when absent.
func GetTokenFromCookie(c *gin.Context, name string) string {
	token, err := c.Cookie(name)
	if err != nil {
		return ""
	}
	return token
}

// GetBearerToken returns the token of an "Authorization: Bearer <token>"
// header. ok is false when the header is missing or malformed.
func GetBearerToken(c *gin.Context) (token string, ok bool) {
	header := c.GetHeader(constants.HeaderAuthorization)
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", false
	}
	return token, true
}

// GetPrincipal returns the principal stored by the auth middleware.
func GetPrincipal(c *gin.Context) (authorization.Principal, bool) {
	v, exists := c.Get(constants.ContextKeyPrincipal)
	if !exists {
		return authorization.Principal{}, false
	}
	p, ok := v.(authorization.Principal)
	return p, ok
}

// RequirePrincipal returns the principal or writes a 401 response. Handlers
// return immediately when ok is false.
func RequirePrincipal(c *gin.Context) (p authorization.Principal, ok bool) {
	p, ok = GetPrincipal(c)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
	}
	return p, ok
}
