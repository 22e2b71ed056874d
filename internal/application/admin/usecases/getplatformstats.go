package usecases

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/merojugx/mero/internal/application/admin/dto"
	"github.com/merojugx/mero/internal/domain/app"
	"github.com/merojugx/mero/internal/domain/organization"
	"github.com/merojugx/mero/internal/domain/ticket"
	"github.com/merojugx/mero/internal/domain/user"
	"github.com/merojugx/mero/internal/shared/biztime"
	apperrors "github.com/merojugx/mero/internal/shared/errors"
	"github.com/merojugx/mero/internal/shared/logger"
)

// GetPlatformStatsUseCase collects the platform counters shown on the
// system admin console.
type GetPlatformStatsUseCase struct {
	orgRepo     organization.Repository
	userRepo    user.Repository
	appRepo     app.Repository
	ticketRepo  ticket.Repository
	sessionRepo user.SessionRepository
	logger      logger.Interface
}

func NewGetPlatformStatsUseCase(
	orgRepo organization.Repository,
	userRepo user.Repository,
	appRepo app.Repository,
	ticketRepo ticket.Repository,
	sessionRepo user.SessionRepository,
	log logger.Interface,
) *GetPlatformStatsUseCase {
	return &GetPlatformStatsUseCase{
		orgRepo:     orgRepo,
		userRepo:    userRepo,
		appRepo:     appRepo,
		ticketRepo:  ticketRepo,
		sessionRepo: sessionRepo,
		logger:      log,
	}
}

func (uc *GetPlatformStatsUseCase) Execute(ctx context.Context) (*dto.PlatformStatsResponse, error) {
	uc.logger.Debugw("fetching platform stats")

	now := biztime.NowUTC()
	out := &dto.PlatformStatsResponse{GeneratedAt: now}

	g, gctx := errgroup.WithContext(ctx)
	count := func(target *int64, what string, fn func(context.Context) (int64, error)) {
		g.Go(func() error {
			n, err := fn(gctx)
			if err != nil {
				uc.logger.Errorw("failed to count "+what, "error", err)
				return apperrors.NewInternalError("failed to count " + what)
			}
			*target = n
			return nil
		})
	}

	count(&out.Organizations, "organizations", uc.orgRepo.Count)
	count(&out.Users, "users", uc.userRepo.Count)
	count(&out.SystemAdmins, "system admins", uc.userRepo.CountSystemAdmins)
	count(&out.Apps, "apps", uc.appRepo.Count)
	count(&out.Tickets, "tickets", uc.ticketRepo.Count)
	count(&out.ActiveSessions, "active sessions", func(ctx context.Context) (int64, error) {
		return uc.sessionRepo.CountActive(ctx, now)
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
