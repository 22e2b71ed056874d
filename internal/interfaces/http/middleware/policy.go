package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/merojugx/mero/internal/shared/authorization"
	"github.com/merojugx/mero/internal/shared/utils"
)

// RequirePolicy rejects the request before the handler runs: 401 when no
// principal was resolved, 403 when the policy denies it.
func RequirePolicy(policy authorization.Policy) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := utils.GetPrincipal(c)
		if !ok {
			utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
			c.Abort()
			return
		}
		if !policy.Permits(p) {
			utils.ErrorResponse(c, http.StatusForbidden, policyDeniedMessage(policy))
			c.Abort()
			return
		}
		c.Next()
	}
}

func RequireSystemAdmin() gin.HandlerFunc {
	return RequirePolicy(authorization.PolicySystemAdmin)
}

func policyDeniedMessage(policy authorization.Policy) string {
	switch policy {
	case authorization.PolicySystemAdmin:
		return "system admin access required"
	case authorization.PolicyOrganizationMember:
		return "organization session required"
	default:
		return "access denied"
	}
}
