package middleware

import (
	"net"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/merojugx/mero/internal/shared/constants"
	"github.com/merojugx/mero/internal/shared/utils"
)

// CORS admits origins listed exactly in allowedOrigins and any origin whose
// host satisfies a host rule (see HostAllowed).
func CORS(allowedOrigins, hostRules []string) gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowOriginFunc = func(origin string) bool {
		if slices.Contains(allowedOrigins, origin) {
			return true
		}
		u, err := url.Parse(origin)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			return false
		}
		return HostAllowed(u.Host, hostRules)
	}
	cfg.AddAllowHeaders(constants.HeaderAuthorization, constants.HeaderXRequestID, "Accept", "Cache-Control", "X-Requested-With")
	cfg.AddExposeHeaders("Content-Length", constants.HeaderXRequestID)
	cfg.AllowCredentials = true
	cfg.MaxAge = 24 * time.Hour
	return cors.New(cfg)
}

// HostAllowed matches host (port ignored, case-insensitive) against rules.
// A rule with a leading dot matches the domain and every subdomain; any other
// rule must match exactly. An empty rule set allows every host.
func HostAllowed(host string, rules []string) bool {
	if len(rules) == 0 {
		return true
	}
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	host = strings.ToLower(strings.TrimSuffix(host, "."))
	if host == "" {
		return false
	}
	for _, rule := range rules {
		rule = strings.ToLower(rule)
		if suffix, ok := strings.CutPrefix(rule, "."); ok {
			if host == suffix || strings.HasSuffix(host, rule) {
				return true
			}
			continue
		}
		if host == rule {
			return true
		}
	}
	return false
}

// AllowedHosts rejects requests whose Host header matches no rule.
func AllowedHosts(rules []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !HostAllowed(c.Request.Host, rules) {
			utils.ErrorResponse(c, http.StatusForbidden, "host not allowed")
			c.Abort()
			return
		}
		c.Next()
	}
}

// SecurityHeaders returns a middleware that sets security headers
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Next()
	}
}
