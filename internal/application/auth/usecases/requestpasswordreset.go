package usecases

import (
	"context"
	"errors"
	"strings"

	"github.com/merojugx/mero/internal/domain/user"
	"github.com/merojugx/mero/internal/shared/biztime"
	apperrors "github.com/merojugx/mero/internal/shared/errors"
	"github.com/merojugx/mero/internal/shared/logger"
)

type RequestPasswordResetCommand struct {
	Email string
}

// RequestPasswordResetUseCase mails a reset link. The response never reveals
// whether the address is registered.
type RequestPasswordResetUseCase struct {
	userRepo     user.Repository
	actionTokens user.ActionTokenRepository
	linkTokens   LinkTokens
	emailService EmailService
	logger       logger.Interface
}

func NewRequestPasswordResetUseCase(
	userRepo user.Repository,
	actionTokens user.ActionTokenRepository,
	linkTokens LinkTokens,
	emailService EmailService,
	logger logger.Interface,
) *RequestPasswordResetUseCase {
	return &RequestPasswordResetUseCase{
		userRepo:     userRepo,
		actionTokens: actionTokens,
		linkTokens:   linkTokens,
		emailService: emailService,
		logger:       logger,
	}
}

func (uc *RequestPasswordResetUseCase) Execute(ctx context.Context, cmd RequestPasswordResetCommand) error {
	email := strings.ToLower(strings.TrimSpace(cmd.Email))

	u, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			uc.logger.Infow("password reset requested for unknown email")
			return nil
		}
		uc.logger.Errorw("failed to get user by email", "error", err)
		return apperrors.NewInternalError("failed to request password reset")
	}
	if !u.IsActive() {
		uc.logger.Infow("password reset requested for inactive account", "user_id", u.ID())
		return nil
	}

	// Only the newest link works.
	if err := uc.actionTokens.InvalidateForUser(ctx, u.ID(), user.PurposePasswordReset, biztime.NowUTC()); err != nil {
		uc.logger.Errorw("failed to invalidate reset tokens", "user_id", u.ID(), "error", err)
		return apperrors.NewInternalError("failed to request password reset")
	}

	plain, hash, err := uc.linkTokens.Generate()
	if err != nil {
		uc.logger.Errorw("failed to generate reset token", "user_id", u.ID(), "error", err)
		return apperrors.NewInternalError("failed to request password reset")
	}
	if err := uc.actionTokens.Create(ctx, user.NewActionToken(u.ID(), user.PurposePasswordReset, hash, user.PasswordResetTTL)); err != nil {
		uc.logger.Errorw("failed to store reset token", "user_id", u.ID(), "error", err)
		return apperrors.NewInternalError("failed to request password reset")
	}

	if err := uc.emailService.SendPasswordResetEmail(u.Email(), plain); err != nil {
		uc.logger.Warnw("failed to send password reset email", "user_id", u.ID(), "error", err)
	}

	uc.logger.Infow("password reset requested", "user_id", u.ID())
	return nil
}
