package http

import (
	"time"

	adminUsecases "github.com/merojugx/mero/internal/application/admin/usecases"
	appUsecases "github.com/merojugx/mero/internal/application/app/usecases"
	authUsecases "github.com/merojugx/mero/internal/application/auth/usecases"
	"github.com/merojugx/mero/internal/application/common"
	orgUsecases "github.com/merojugx/mero/internal/application/organization/usecases"
	paymentUsecases "github.com/merojugx/mero/internal/application/payment/usecases"
	roleUsecases "github.com/merojugx/mero/internal/application/role/usecases"
	settingUsecases "github.com/merojugx/mero/internal/application/setting/usecases"
	ticketUsecases "github.com/merojugx/mero/internal/application/ticket/usecases"
	uploadUsecases "github.com/merojugx/mero/internal/application/upload/usecases"
	userUsecases "github.com/merojugx/mero/internal/application/user/usecases"
	warehouseUsecases "github.com/merojugx/mero/internal/application/warehouse/usecases"
	"github.com/merojugx/mero/internal/infrastructure/auth"
	"github.com/merojugx/mero/internal/infrastructure/email"
	"github.com/merojugx/mero/internal/infrastructure/payment/stripe"
	"github.com/merojugx/mero/internal/infrastructure/token"
	"github.com/merojugx/mero/internal/interfaces/adapters"
	sharedConfig "github.com/merojugx/mero/internal/shared/config"
	"github.com/merojugx/mero/internal/shared/db"
	"github.com/merojugx/mero/internal/shared/logger"
	"github.com/merojugx/mero/internal/shared/services/markdown"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// Auth
	registerOrgUC   *authUsecases.RegisterOrganizationUseCase
	loginUC         *authUsecases.LoginUseCase
	refreshTokenUC  *authUsecases.RefreshTokenUseCase
	logoutUC        *authUsecases.LogoutUseCase
	verifyEmailUC   *authUsecases.VerifyEmailUseCase
	requestResetUC  *authUsecases.RequestPasswordResetUseCase
	resetPasswordUC *authUsecases.ResetPasswordUseCase

	// Admin
	adminLoginUC     *adminUsecases.AdminLoginUseCase
	setSystemAdminUC *adminUsecases.SetSystemAdminUseCase
	platformStatsUC  *adminUsecases.GetPlatformStatsUseCase

	// Organization
	updateSlugUC     *orgUsecases.UpdateOrganizationSlugUseCase
	listRolesUC      *roleUsecases.ListRolesUseCase
	setHierarchyUC   *roleUsecases.SetRoleHierarchyLevelUseCase
	listWarehousesUC *warehouseUsecases.ListWarehousesUseCase

	// Settings
	listOrgSettingsUC     *settingUsecases.ListOrganizationSettingsUseCase
	upsertOrgSettingUC    *settingUsecases.UpsertOrganizationSettingUseCase
	deleteOrgSettingUC    *settingUsecases.DeleteOrganizationSettingUseCase
	listSystemSettingsUC  *settingUsecases.ListSystemSettingsUseCase
	getSystemSettingUC    *settingUsecases.GetSystemSettingUseCase
	upsertSystemSettingUC *settingUsecases.UpsertSystemSettingUseCase
	updateSystemSettingUC *settingUsecases.UpdateSystemSettingUseCase
	deleteSystemSettingUC *settingUsecases.DeleteSystemSettingUseCase
	listPublicSettingsUC  *settingUsecases.ListPublicSettingsUseCase

	// Tickets
	createTicketUC  *ticketUsecases.CreateTicketUseCase
	getTicketUC     *ticketUsecases.GetTicketUseCase
	listTicketsUC   *ticketUsecases.ListTicketsUseCase
	deleteTicketUC  *ticketUsecases.DeleteTicketUseCase
	addCommentUC    *ticketUsecases.AddCommentUseCase
	listCommentsUC  *ticketUsecases.ListCommentsUseCase
	deleteCommentUC *ticketUsecases.DeleteCommentUseCase

	// Account
	mfaStatusUC        *userUsecases.GetMFAStatusUseCase
	setupMFAUC         *userUsecases.SetupMFAUseCase
	verifyMFASetupUC   *userUsecases.VerifyMFASetupUseCase
	regenerateBackupUC *userUsecases.RegenerateBackupCodesUseCase
	disableMFAUC       *userUsecases.DisableMFAUseCase
	cleanupSessionsUC  *userUsecases.CleanupExpiredSessionsUseCase
	listAppsUC         *appUsecases.ListAppsUseCase
	updateAppAccessUC  *appUsecases.UpdateAppAccessUseCase
	verifyStripeUC     *paymentUsecases.VerifyStripePaymentUseCase
	registerUploadUC   *uploadUsecases.RegisterUploadUseCase
}

func (c *Container) initUseCases() {
	r := c.repos
	log := c.log
	cfg := c.cfg

	access := common.NewOrganizationAccess(r.memberRepo, r.roleRepo, log)
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	sessionTTL := time.Duration(cfg.Auth.JWT.RefreshExpDays) * 24 * time.Hour
	txMgr := db.NewTransactionManager(c.db)
	renderer := markdown.NewRenderer()
	totp := auth.NewTOTPVerifier(cfg.Auth.MFA.Issuer)
	backupCodes := token.NewBackupCodes()
	linkTokens := token.NewOpaqueTokens()
	sessionTokens := adapters.NewSessionTokenAdapter(c.jwtSvc)
	mailer := newEmailService(cfg.Email, log)

	c.ucs = &allUseCases{
		registerOrgUC: authUsecases.NewRegisterOrganizationUseCase(
			r.orgRepo, r.memberRepo, r.roleRepo, r.userRepo, r.actionTokenRepo,
			hasher, linkTokens, mailer, txMgr, log,
		),
		loginUC: authUsecases.NewLoginUseCase(
			r.userRepo, r.sessionRepo, r.orgRepo, r.memberRepo,
			hasher, sessionTokens, totp, backupCodes, sessionTTL, log,
		),
		refreshTokenUC:  authUsecases.NewRefreshTokenUseCase(r.userRepo, r.sessionRepo, r.memberRepo, sessionTokens, log),
		logoutUC:        authUsecases.NewLogoutUseCase(r.sessionRepo, log),
		verifyEmailUC:   authUsecases.NewVerifyEmailUseCase(r.userRepo, r.actionTokenRepo, linkTokens, txMgr, log),
		requestResetUC:  authUsecases.NewRequestPasswordResetUseCase(r.userRepo, r.actionTokenRepo, linkTokens, mailer, log),
		resetPasswordUC: authUsecases.NewResetPasswordUseCase(r.userRepo, r.sessionRepo, r.actionTokenRepo, hasher, linkTokens, mailer, txMgr, log),

		adminLoginUC:     adminUsecases.NewAdminLoginUseCase(r.userRepo, r.sessionRepo, hasher, adapters.NewTokenIssuerAdapter(c.jwtSvc), sessionTTL, log),
		setSystemAdminUC: adminUsecases.NewSetSystemAdminUseCase(r.userRepo, r.sessionRepo, c.enforcer, log),
		platformStatsUC:  adminUsecases.NewGetPlatformStatsUseCase(r.orgRepo, r.userRepo, r.appRepo, r.ticketRepo, r.sessionRepo, log),

		updateSlugUC:     orgUsecases.NewUpdateOrganizationSlugUseCase(r.orgRepo, access, log),
		listRolesUC:      roleUsecases.NewListRolesUseCase(r.roleRepo, access, log),
		setHierarchyUC:   roleUsecases.NewSetRoleHierarchyLevelUseCase(r.roleRepo, access, log),
		listWarehousesUC: warehouseUsecases.NewListWarehousesUseCase(r.warehouseRepo, access, log),

		listOrgSettingsUC:     settingUsecases.NewListOrganizationSettingsUseCase(r.orgSettingRepo, access, log),
		upsertOrgSettingUC:    settingUsecases.NewUpsertOrganizationSettingUseCase(r.orgSettingRepo, access, log),
		deleteOrgSettingUC:    settingUsecases.NewDeleteOrganizationSettingUseCase(r.orgSettingRepo, access, log),
		listSystemSettingsUC:  settingUsecases.NewListSystemSettingsUseCase(r.systemSettingRepo, log),
		getSystemSettingUC:    settingUsecases.NewGetSystemSettingUseCase(r.systemSettingRepo, log),
		upsertSystemSettingUC: settingUsecases.NewUpsertSystemSettingUseCase(r.systemSettingRepo, log),
		updateSystemSettingUC: settingUsecases.NewUpdateSystemSettingUseCase(r.systemSettingRepo, log),
		deleteSystemSettingUC: settingUsecases.NewDeleteSystemSettingUseCase(r.systemSettingRepo, log),
		listPublicSettingsUC:  settingUsecases.NewListPublicSettingsUseCase(r.systemSettingRepo, log),

		createTicketUC:  ticketUsecases.NewCreateTicketUseCase(r.ticketRepo, log),
		getTicketUC:     ticketUsecases.NewGetTicketUseCase(r.ticketRepo, log),
		listTicketsUC:   ticketUsecases.NewListTicketsUseCase(r.ticketRepo, log),
		deleteTicketUC:  ticketUsecases.NewDeleteTicketUseCase(r.ticketRepo, log),
		addCommentUC:    ticketUsecases.NewAddCommentUseCase(r.ticketRepo, r.commentRepo, txMgr, renderer, log),
		listCommentsUC:  ticketUsecases.NewListCommentsUseCase(r.ticketRepo, r.commentRepo, renderer, log),
		deleteCommentUC: ticketUsecases.NewDeleteCommentUseCase(r.ticketRepo, r.commentRepo, log),

		mfaStatusUC:        userUsecases.NewGetMFAStatusUseCase(r.userRepo, log),
		setupMFAUC:         userUsecases.NewSetupMFAUseCase(r.userRepo, totp, log),
		verifyMFASetupUC:   userUsecases.NewVerifyMFASetupUseCase(r.userRepo, totp, backupCodes, log),
		regenerateBackupUC: userUsecases.NewRegenerateBackupCodesUseCase(r.userRepo, totp, backupCodes, log),
		disableMFAUC:       userUsecases.NewDisableMFAUseCase(r.userRepo, totp, backupCodes, log),
		cleanupSessionsUC:  userUsecases.NewCleanupExpiredSessionsUseCase(r.sessionRepo, log),
		listAppsUC:         appUsecases.NewListAppsUseCase(r.appRepo, log),
		updateAppAccessUC:  appUsecases.NewUpdateAppAccessUseCase(r.appRepo, r.appAccessRepo, r.memberRepo, r.roleRepo, access, log),
		verifyStripeUC:     paymentUsecases.NewVerifyStripePaymentUseCase(r.paymentRepo, stripe.NewGateway(cfg.Stripe.SecretKey, log), log),
		registerUploadUC:   uploadUsecases.NewRegisterUploadUseCase(r.uploadRepo, log),
	}
}

// newEmailService sends over SMTP when a host is configured and only logs
// otherwise.
func newEmailService(cfg sharedConfig.EmailConfig, log logger.Interface) authUsecases.EmailService {
	if cfg.SMTPHost == "" {
		log.Warnw("email.smtp_host is empty, account emails will only be logged")
		return email.NewLogEmailService(log)
	}
	return email.NewSMTPEmailService(email.SMTPConfig{
		Host:        cfg.SMTPHost,
		Port:        cfg.SMTPPort,
		Username:    cfg.SMTPUser,
		Password:    cfg.SMTPPassword,
		FromAddress: cfg.FromAddress,
		FromName:    cfg.FromName,
		LinkBaseURL: cfg.LinkBaseURL,
	})
}
