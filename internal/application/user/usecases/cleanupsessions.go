package usecases

import (
	"context"
	"fmt"

	"github.com/merojugx/mero/internal/domain/user"
	"github.com/merojugx/mero/internal/shared/biztime"
	"github.com/merojugx/mero/internal/shared/logger"
)

// CleanupExpiredSessionsUseCase deletes sessions past their expiry. It is
// run by the scheduler.
type CleanupExpiredSessionsUseCase struct {
	sessionRepo user.SessionRepository
	logger      logger.Interface
}

func NewCleanupExpiredSessionsUseCase(sessionRepo user.SessionRepository, logger logger.Interface) *CleanupExpiredSessionsUseCase {
	return &CleanupExpiredSessionsUseCase{sessionRepo: sessionRepo, logger: logger}
}

// Execute returns the number of deleted sessions.
func (uc *CleanupExpiredSessionsUseCase) Execute(ctx context.Context) (int, error) {
	n, err := uc.sessionRepo.DeleteExpired(ctx, biztime.NowUTC())
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}
	if n > 0 {
		uc.logger.Debugw("expired sessions deleted", "count", n)
	}
	return int(n), nil
}
