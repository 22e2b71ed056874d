package http

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/merojugx/mero/internal/domain/app"
	"github.com/merojugx/mero/internal/domain/organization"
	"github.com/merojugx/mero/internal/domain/payment"
	"github.com/merojugx/mero/internal/domain/role"
	"github.com/merojugx/mero/internal/domain/setting"
	"github.com/merojugx/mero/internal/domain/ticket"
	"github.com/merojugx/mero/internal/domain/upload"
	"github.com/merojugx/mero/internal/domain/user"
	"github.com/merojugx/mero/internal/domain/warehouse"
	"github.com/merojugx/mero/internal/infrastructure/cache"
	"github.com/merojugx/mero/internal/infrastructure/config"
	"github.com/merojugx/mero/internal/infrastructure/repository"
	"github.com/merojugx/mero/internal/shared/logger"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	orgRepo           organization.Repository
	memberRepo        organization.MemberRepository
	userRepo          user.Repository
	sessionRepo       user.SessionRepository
	actionTokenRepo   user.ActionTokenRepository
	roleRepo          role.Repository
	appRepo           app.Repository
	appAccessRepo     app.AccessRepository
	orgSettingRepo    setting.OrganizationRepository
	systemSettingRepo setting.SystemRepository
	ticketRepo        ticket.Repository
	commentRepo       ticket.CommentRepository
	paymentRepo       payment.Repository
	uploadRepo        upload.Repository
	warehouseRepo     warehouse.Repository
}

func newRepositories(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *repositories {
	orgRepo := repository.NewOrganizationRepository(db, log)

	var systemSettings setting.SystemRepository = repository.NewSystemSettingRepository(db, log)
	if redisClient != nil {
		systemSettings = cache.NewSystemSettingCache(systemSettings, redisClient, cfg.Settings.CacheTTL(), log)
	}

	return &repositories{
		orgRepo:           orgRepo,
		memberRepo:        orgRepo,
		userRepo:          repository.NewUserRepository(db, log),
		sessionRepo:       repository.NewSessionRepository(db),
		actionTokenRepo:   repository.NewActionTokenRepository(db),
		roleRepo:          repository.NewRoleRepository(db),
		appRepo:           repository.NewAppRepository(db),
		appAccessRepo:     repository.NewAppAccessRepository(db),
		orgSettingRepo:    repository.NewOrganizationSettingRepository(db, log),
		systemSettingRepo: systemSettings,
		ticketRepo:        repository.NewTicketRepository(db, log),
		commentRepo:       repository.NewCommentRepository(db),
		paymentRepo:       repository.NewPaymentRepository(db, log),
		uploadRepo:        repository.NewFileUploadRepository(db),
		warehouseRepo:     repository.NewWarehouseRepository(db),
	}
}
