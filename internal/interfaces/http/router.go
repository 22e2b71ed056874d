package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/merojugx/mero/docs"
	"github.com/merojugx/mero/internal/infrastructure/metrics"
	"github.com/merojugx/mero/internal/interfaces/http/middleware"
	"github.com/merojugx/mero/internal/interfaces/http/routes"
)

// setupRoutes installs global middleware and every route group.
func (c *Container) setupRoutes() {
	cfg := c.cfg
	r := c.engine

	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(c.log))
	r.Use(middleware.Logger(c.log))
	r.Use(middleware.ErrorHandler(c.log))
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics())
	}
	r.Use(middleware.AllowedHosts(cfg.Server.AllowedHosts))
	r.Use(middleware.CORS(cfg.Server.AllowedOrigins, cfg.Server.AllowedHosts))
	r.Use(middleware.SecurityHeaders())

	r.GET("/health", c.healthCheck)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if cfg.Metrics.Enabled {
		r.GET(cfg.Metrics.Path, gin.WrapH(metrics.Handler()))
	}

	api := r.Group("/api/v1")
	h := c.hdlrs

	var loginLimit gin.HandlerFunc
	if c.loginRateLimiter != nil {
		loginLimit = c.loginRateLimiter.Limit()
	}

	routes.SetupAuthRoutes(api, &routes.AuthRouteConfig{
		AuthHandler:    h.authHandler,
		AuthMiddleware: c.authMiddleware,
		RateLimit:      loginLimit,
	})
	routes.SetupAdminRoutes(api, &routes.AdminRouteConfig{
		AdminHandler:         h.adminHandler,
		SystemSettingHandler: h.systemSettingHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
		LoginRateLimit:       loginLimit,
	})
	routes.SetupOrganizationRoutes(api, &routes.OrganizationRouteConfig{
		OrganizationHandler: h.organizationHandler,
		SettingHandler:      h.organizationSettingHandler,
		AppHandler:          h.appHandler,
		AuthMiddleware:      c.authMiddleware,
	})
	routes.SetupTicketRoutes(api, &routes.TicketRouteConfig{
		TicketHandler:  h.ticketHandler,
		AuthMiddleware: c.authMiddleware,
	})
	routes.SetupAccountRoutes(api, &routes.AccountRouteConfig{
		MFAHandler:           h.mfaHandler,
		AppHandler:           h.appHandler,
		PaymentHandler:       h.paymentHandler,
		UploadHandler:        h.uploadHandler,
		SystemSettingHandler: h.systemSettingHandler,
		AuthMiddleware:       c.authMiddleware,
	})
}

func (c *Container) healthCheck(ctx *gin.Context) {
	status := http.StatusOK
	dbStatus := "ok"

	sqlDB, err := c.db.DB()
	if err == nil {
		pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
		err = sqlDB.PingContext(pingCtx)
		cancel()
	}
	if err != nil {
		c.log.Warnw("health check database ping failed", "error", err)
		status = http.StatusServiceUnavailable
		dbStatus = "unavailable"
	}

	ctx.JSON(status, gin.H{"status": http.StatusText(status), "database": dbStatus})
}
