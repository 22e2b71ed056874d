package routes

import (
	"github.com/gin-gonic/gin"

	apphandlers "github.com/merojugx/mero/internal/interfaces/http/handlers/app"
	orghandlers "github.com/merojugx/mero/internal/interfaces/http/handlers/organization"
	settinghandlers "github.com/merojugx/mero/internal/interfaces/http/handlers/setting"
	"github.com/merojugx/mero/internal/interfaces/http/middleware"
	"github.com/merojugx/mero/internal/shared/authorization"
)

type OrganizationRouteConfig struct {
	OrganizationHandler *orghandlers.OrganizationHandler
	SettingHandler      *settinghandlers.OrganizationSettingHandler
	AppHandler          *apphandlers.AppHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// SetupOrganizationRoutes registers routes scoped to one organization. The
// use cases check membership and manager rights against :orgId.
func SetupOrganizationRoutes(api *gin.RouterGroup, config *OrganizationRouteConfig) {
	orgs := api.Group("/organizations/:orgId")
	orgs.Use(config.AuthMiddleware.RequireAuth(), middleware.RequirePolicy(authorization.PolicyOrganizationMember))
	{
		orgs.PUT("/slug", config.OrganizationHandler.UpdateSlug)

		orgs.GET("/settings", config.SettingHandler.List)
		orgs.PUT("/settings/:key", config.SettingHandler.Upsert)
		orgs.DELETE("/settings/:key", config.SettingHandler.Delete)

		orgs.GET("/roles", config.OrganizationHandler.ListRoles)
		orgs.PUT("/roles/:roleId/hierarchy", config.OrganizationHandler.SetRoleHierarchy)

		orgs.PUT("/app-access", config.AppHandler.UpdateAccess)
		orgs.GET("/warehouses", config.OrganizationHandler.ListWarehouses)
	}
}
