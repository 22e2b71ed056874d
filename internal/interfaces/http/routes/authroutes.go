package routes

import (
	"github.com/gin-gonic/gin"

	authhandlers "github.com/merojugx/mero/internal/interfaces/http/handlers/auth"
	"github.com/merojugx/mero/internal/interfaces/http/middleware"
)

type AuthRouteConfig struct {
	AuthHandler    *authhandlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
	// RateLimit guards registration, login and reset requests; nil disables it.
	RateLimit gin.HandlerFunc
}

// SetupAuthRoutes configures the tenant /auth tree.
func SetupAuthRoutes(api *gin.RouterGroup, cfg *AuthRouteConfig) {
	auth := api.Group("/auth")

	limited := func(h gin.HandlerFunc) []gin.HandlerFunc {
		if cfg.RateLimit == nil {
			return []gin.HandlerFunc{h}
		}
		return []gin.HandlerFunc{cfg.RateLimit, h}
	}

	auth.POST("/organization/register", limited(cfg.AuthHandler.RegisterOrganization)...)
	auth.POST("/login", limited(cfg.AuthHandler.Login)...)
	auth.POST("/forgot-password", limited(cfg.AuthHandler.ForgotPassword)...)
	auth.POST("/refresh", cfg.AuthHandler.Refresh)
	auth.POST("/reset-password", cfg.AuthHandler.ResetPassword)
	auth.GET("/verify-email", cfg.AuthHandler.VerifyEmail)
	auth.POST("/logout", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.Logout)
}
