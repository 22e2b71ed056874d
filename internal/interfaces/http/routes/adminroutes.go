package routes

import (
	"github.com/gin-gonic/gin"

	adminhandlers "github.com/merojugx/mero/internal/interfaces/http/handlers/admin"
	settinghandlers "github.com/merojugx/mero/internal/interfaces/http/handlers/setting"
	"github.com/merojugx/mero/internal/interfaces/http/middleware"
	"github.com/merojugx/mero/internal/shared/authorization"
)

// AdminRouteConfig holds dependencies for system admin routes.
type AdminRouteConfig struct {
	AdminHandler         *adminhandlers.AdminHandler
	SystemSettingHandler *settinghandlers.SystemSettingHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
	// LoginRateLimit guards the login endpoint; nil disables it.
	LoginRateLimit gin.HandlerFunc
}

// SetupAdminRoutes configures the /system-admin tree. Every route past login
// requires the system admin flag plus a casbin grant for its resource.
func SetupAdminRoutes(api *gin.RouterGroup, cfg *AdminRouteConfig) {
	admin := api.Group("/system-admin")

	login := []gin.HandlerFunc{cfg.AdminHandler.Login}
	if cfg.LoginRateLimit != nil {
		login = append([]gin.HandlerFunc{cfg.LoginRateLimit}, login...)
	}
	admin.POST("/auth/login", login...)

	protected := admin.Group("")
	protected.Use(cfg.AuthMiddleware.RequireAuth(), middleware.RequireSystemAdmin())

	perm := cfg.PermissionMiddleware.RequirePermission

	settings := protected.Group("/settings")
	{
		settings.GET("", perm(authorization.ResourceSystemSettings, authorization.ActionView), cfg.SystemSettingHandler.List)
		settings.GET("/:key", perm(authorization.ResourceSystemSettings, authorization.ActionView), cfg.SystemSettingHandler.Get)
		settings.PUT("/:key", perm(authorization.ResourceSystemSettings, authorization.ActionEdit), cfg.SystemSettingHandler.Upsert)
		settings.PATCH("/:key", perm(authorization.ResourceSystemSettings, authorization.ActionEdit), cfg.SystemSettingHandler.Update)
		settings.DELETE("/:key", perm(authorization.ResourceSystemSettings, authorization.ActionDelete), cfg.SystemSettingHandler.Delete)
	}

	protected.PUT("/users/:userId/system-admin",
		perm(authorization.ResourceSystemUsers, authorization.ActionEdit),
		cfg.AdminHandler.SetSystemAdmin)
	protected.GET("/stats",
		perm(authorization.ResourceSystemStats, authorization.ActionView),
		cfg.AdminHandler.GetStats)
}
