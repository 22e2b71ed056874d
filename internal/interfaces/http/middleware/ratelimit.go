package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/merojugx/mero/internal/infrastructure/ratelimit"
	"github.com/merojugx/mero/internal/shared/logger"
	"github.com/merojugx/mero/internal/shared/utils"
)

// RateLimitMiddleware limits requests per client IP and route. Keys are shared
// across instances through the limiter's backend.
type RateLimitMiddleware struct {
	limiter ratelimit.RateLimiter
	rule    ratelimit.Rule
	logger  logger.Interface
}

func NewRateLimitMiddleware(limiter ratelimit.RateLimiter, rule ratelimit.Rule, logger logger.Interface) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
		rule:    rule,
		logger:  logger,
	}
}

// Limit fails open when the backend is unavailable.
func (m *RateLimitMiddleware) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "ip:" + c.ClientIP() + ":" + c.FullPath()

		allowed, err := m.limiter.Allow(c.Request.Context(), key, m.rule)
		if err != nil {
			m.logger.Warnw("rate limiter unavailable, allowing request", "key", key, "error", err)
			c.Next()
			return
		}

		if !allowed {
			c.Header("Retry-After", strconv.Itoa(int(m.rule.Window.Seconds())))
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
