package usecases

import (
	"context"
	"errors"
	"strings"

	"github.com/merojugx/mero/internal/domain/user"
	"github.com/merojugx/mero/internal/shared/biztime"
	"github.com/merojugx/mero/internal/shared/db"
	apperrors "github.com/merojugx/mero/internal/shared/errors"
	"github.com/merojugx/mero/internal/shared/logger"
)

type ResetPasswordCommand struct {
	Token       string
	NewPassword string
}

// ResetPasswordUseCase sets a new password from an emailed link and signs the
// user out everywhere.
type ResetPasswordUseCase struct {
	userRepo     user.Repository
	sessionRepo  user.SessionRepository
	actionTokens user.ActionTokenRepository
	hasher       PasswordHasher
	linkTokens   LinkTokens
	emailService EmailService
	txMgr        db.Transactor
	logger       logger.Interface
}

func NewResetPasswordUseCase(
	userRepo user.Repository,
	sessionRepo user.SessionRepository,
	actionTokens user.ActionTokenRepository,
	hasher PasswordHasher,
	linkTokens LinkTokens,
	emailService EmailService,
	txMgr db.Transactor,
	logger logger.Interface,
) *ResetPasswordUseCase {
	return &ResetPasswordUseCase{
		userRepo:     userRepo,
		sessionRepo:  sessionRepo,
		actionTokens: actionTokens,
		hasher:       hasher,
		linkTokens:   linkTokens,
		emailService: emailService,
		txMgr:        txMgr,
		logger:       logger,
	}
}

func (uc *ResetPasswordUseCase) Execute(ctx context.Context, cmd ResetPasswordCommand) error {
	plain := strings.TrimSpace(cmd.Token)
	if plain == "" {
		return apperrors.NewBadRequestError("reset token is required")
	}
	if len(cmd.NewPassword) < minPasswordLength {
		return apperrors.NewValidationError("password must be at least 8 characters")
	}

	passwordHash, err := uc.hasher.Hash(cmd.NewPassword)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return apperrors.NewInternalError("failed to reset password")
	}

	var (
		u       *user.User
		revoked int64
	)
	err = uc.txMgr.RunInTransaction(ctx, func(ctx context.Context) error {
		t, err := useActionToken(ctx, uc.actionTokens, user.PurposePasswordReset, uc.linkTokens.Hash(plain))
		if err != nil {
			return err
		}

		u, err = uc.userRepo.GetByID(ctx, t.UserID())
		if err != nil {
			if errors.Is(err, user.ErrUserNotFound) {
				return apperrors.NewBadRequestError("invalid or expired token")
			}
			return err
		}

		u.ChangePassword(passwordHash)
		// The link was delivered to the address, which proves it.
		if !u.EmailVerified() {
			u.VerifyEmail()
		}
		if err := uc.userRepo.Update(ctx, u); err != nil {
			return err
		}

		revoked, err = uc.sessionRepo.RevokeAllForUser(ctx, u.ID(), biztime.NowUTC())
		return err
	})
	if err != nil {
		if apperrors.IsAppError(err) {
			return err
		}
		uc.logger.Errorw("failed to reset password", "error", err)
		return apperrors.NewInternalError("failed to reset password")
	}

	if err := uc.emailService.SendPasswordChangedEmail(u.Email()); err != nil {
		uc.logger.Warnw("failed to send password changed email", "user_id", u.ID(), "error", err)
	}

	uc.logger.Infow("password reset", "user_id", u.ID(), "sessions_revoked", revoked)
	return nil
}
