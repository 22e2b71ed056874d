package routes

import (
	"github.com/gin-gonic/gin"

	apphandlers "github.com/merojugx/mero/internal/interfaces/http/handlers/app"
	paymenthandlers "github.com/merojugx/mero/internal/interfaces/http/handlers/payment"
	settinghandlers "github.com/merojugx/mero/internal/interfaces/http/handlers/setting"
	uploadhandlers "github.com/merojugx/mero/internal/interfaces/http/handlers/upload"
	userhandlers "github.com/merojugx/mero/internal/interfaces/http/handlers/user"
	"github.com/merojugx/mero/internal/interfaces/http/middleware"
)

// AccountRouteConfig covers the signed in user's own endpoints plus the
// public catalog and settings.
type AccountRouteConfig struct {
	MFAHandler           *userhandlers.MFAHandler
	AppHandler           *apphandlers.AppHandler
	PaymentHandler       *paymenthandlers.PaymentHandler
	UploadHandler        *uploadhandlers.UploadHandler
	SystemSettingHandler *settinghandlers.SystemSettingHandler
	AuthMiddleware       *middleware.AuthMiddleware
}

func SetupAccountRoutes(api *gin.RouterGroup, config *AccountRouteConfig) {
	api.GET("/settings/public", config.SystemSettingHandler.ListPublic)
	api.GET("/apps", config.AppHandler.ListApps)

	auth := config.AuthMiddleware.RequireAuth()
	mfa := api.Group("/mfa", auth)
	{
		mfa.GET("/check", config.MFAHandler.Status)
		mfa.POST("/setup/initialize", config.MFAHandler.InitializeSetup)
		mfa.POST("/setup/verify", config.MFAHandler.VerifySetup)
		mfa.POST("/backup-codes/regenerate", config.MFAHandler.RegenerateBackupCodes)
		mfa.POST("/disable", config.MFAHandler.Disable)
	}
	api.POST("/payments/stripe/verify", auth, config.PaymentHandler.VerifyStripe)
	api.POST("/uploads/metadata", auth, config.UploadHandler.RegisterMetadata)
}
