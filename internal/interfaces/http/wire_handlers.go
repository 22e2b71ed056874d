package http

import (
	adminHandlers "github.com/merojugx/mero/internal/interfaces/http/handlers/admin"
	appHandlers "github.com/merojugx/mero/internal/interfaces/http/handlers/app"
	authHandlers "github.com/merojugx/mero/internal/interfaces/http/handlers/auth"
	orgHandlers "github.com/merojugx/mero/internal/interfaces/http/handlers/organization"
	paymentHandlers "github.com/merojugx/mero/internal/interfaces/http/handlers/payment"
	settingHandlers "github.com/merojugx/mero/internal/interfaces/http/handlers/setting"
	ticketHandlers "github.com/merojugx/mero/internal/interfaces/http/handlers/ticket"
	uploadHandlers "github.com/merojugx/mero/internal/interfaces/http/handlers/upload"
	userHandlers "github.com/merojugx/mero/internal/interfaces/http/handlers/user"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	authHandler                *authHandlers.AuthHandler
	adminHandler               *adminHandlers.AdminHandler
	organizationHandler        *orgHandlers.OrganizationHandler
	organizationSettingHandler *settingHandlers.OrganizationSettingHandler
	systemSettingHandler       *settingHandlers.SystemSettingHandler
	ticketHandler              *ticketHandlers.TicketHandler
	mfaHandler                 *userHandlers.MFAHandler
	appHandler                 *appHandlers.AppHandler
	paymentHandler             *paymentHandlers.PaymentHandler
	uploadHandler              *uploadHandlers.UploadHandler
}

func (c *Container) initHandlers() {
	u := c.ucs
	log := c.log

	c.hdlrs = &allHandlers{
		authHandler: authHandlers.NewAuthHandler(
			u.registerOrgUC, u.loginUC, u.refreshTokenUC, u.logoutUC,
			u.verifyEmailUC, u.requestResetUC, u.resetPasswordUC, log,
		),
		adminHandler:               adminHandlers.NewAdminHandler(u.adminLoginUC, u.setSystemAdminUC, u.platformStatsUC, log),
		organizationHandler:        orgHandlers.NewOrganizationHandler(u.updateSlugUC, u.listRolesUC, u.setHierarchyUC, u.listWarehousesUC, log),
		organizationSettingHandler: settingHandlers.NewOrganizationSettingHandler(u.listOrgSettingsUC, u.upsertOrgSettingUC, u.deleteOrgSettingUC, log),
		systemSettingHandler: settingHandlers.NewSystemSettingHandler(
			u.listSystemSettingsUC, u.getSystemSettingUC, u.upsertSystemSettingUC,
			u.updateSystemSettingUC, u.deleteSystemSettingUC, u.listPublicSettingsUC, log,
		),
		ticketHandler: ticketHandlers.NewTicketHandler(
			u.createTicketUC, u.getTicketUC, u.listTicketsUC, u.deleteTicketUC,
			u.addCommentUC, u.listCommentsUC, u.deleteCommentUC, log,
		),
		mfaHandler: userHandlers.NewMFAHandler(
			u.mfaStatusUC, u.setupMFAUC, u.verifyMFASetupUC,
			u.regenerateBackupUC, u.disableMFAUC, log,
		),
		appHandler:     appHandlers.NewAppHandler(u.listAppsUC, u.updateAppAccessUC, log),
		paymentHandler: paymentHandlers.NewPaymentHandler(u.verifyStripeUC, log),
		uploadHandler:  uploadHandlers.NewUploadHandler(u.registerUploadUC, log),
	}
}
