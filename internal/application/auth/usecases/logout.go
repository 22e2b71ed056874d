package usecases

import (
	"context"
	"errors"

	"github.com/merojugx/mero/internal/domain/user"
	"github.com/merojugx/mero/internal/shared/authorization"
	apperrors "github.com/merojugx/mero/internal/shared/errors"
	"github.com/merojugx/mero/internal/shared/logger"
)

type LogoutCommand struct {
	Actor authorization.Principal
}

// LogoutUseCase revokes the caller's current session. Logging out twice is
// not an error.
type LogoutUseCase struct {
	sessionRepo user.SessionRepository
	logger      logger.Interface
}

func NewLogoutUseCase(sessionRepo user.SessionRepository, logger logger.Interface) *LogoutUseCase {
	return &LogoutUseCase{
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

func (uc *LogoutUseCase) Execute(ctx context.Context, cmd LogoutCommand) error {
	uc.logger.Infow("executing logout use case", "user_id", cmd.Actor.UserID, "session_id", cmd.Actor.SessionID)

	session, err := uc.sessionRepo.GetByID(ctx, cmd.Actor.SessionID)
	if err != nil {
		if errors.Is(err, user.ErrSessionNotFound) {
			return nil
		}
		uc.logger.Errorw("failed to get session", "session_id", cmd.Actor.SessionID, "error", err)
		return apperrors.NewInternalError("failed to log out")
	}
	if session.UserID() != cmd.Actor.UserID {
		return apperrors.NewForbiddenError("session belongs to another user")
	}
	if session.RevokedAt() != nil {
		return nil
	}

	session.Revoke()
	if err := uc.sessionRepo.Update(ctx, session); err != nil {
		uc.logger.Errorw("failed to revoke session", "session_id", session.ID(), "error", err)
		return apperrors.NewInternalError("failed to log out")
	}

	uc.logger.Infow("user logged out", "user_id", cmd.Actor.UserID, "session_id", session.ID())
	return nil
}
