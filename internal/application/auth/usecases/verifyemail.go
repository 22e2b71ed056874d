package usecases

import (
	"context"
	"errors"
	"strings"

	"github.com/merojugx/mero/internal/domain/user"
	"github.com/merojugx/mero/internal/shared/db"
	apperrors "github.com/merojugx/mero/internal/shared/errors"
	"github.com/merojugx/mero/internal/shared/logger"
)

type VerifyEmailCommand struct {
	Token string
}

type VerifyEmailUseCase struct {
	userRepo     user.Repository
	actionTokens user.ActionTokenRepository
	linkTokens   LinkTokens
	txMgr        db.Transactor
	logger       logger.Interface
}

func NewVerifyEmailUseCase(
	userRepo user.Repository,
	actionTokens user.ActionTokenRepository,
	linkTokens LinkTokens,
	txMgr db.Transactor,
	logger logger.Interface,
) *VerifyEmailUseCase {
	return &VerifyEmailUseCase{
		userRepo:     userRepo,
		actionTokens: actionTokens,
		linkTokens:   linkTokens,
		txMgr:        txMgr,
		logger:       logger,
	}
}

func (uc *VerifyEmailUseCase) Execute(ctx context.Context, cmd VerifyEmailCommand) error {
	plain := strings.TrimSpace(cmd.Token)
	if plain == "" {
		return apperrors.NewBadRequestError("verification token is required")
	}

	var verifiedUserID string
	err := uc.txMgr.RunInTransaction(ctx, func(ctx context.Context) error {
		t, err := useActionToken(ctx, uc.actionTokens, user.PurposeEmailVerification, uc.linkTokens.Hash(plain))
		if err != nil {
			return err
		}

		u, err := uc.userRepo.GetByID(ctx, t.UserID())
		if err != nil {
			if errors.Is(err, user.ErrUserNotFound) {
				return apperrors.NewBadRequestError("invalid or expired token")
			}
			return err
		}
		u.VerifyEmail()
		if err := uc.userRepo.Update(ctx, u); err != nil {
			return err
		}
		verifiedUserID = u.ID()
		return nil
	})
	if err != nil {
		if apperrors.IsAppError(err) {
			return err
		}
		uc.logger.Errorw("failed to verify email", "error", err)
		return apperrors.NewInternalError("failed to verify email")
	}

	uc.logger.Infow("email verified", "user_id", verifiedUserID)
	return nil
}

// useActionToken marks the token identified by hash as used. Unknown, used
// and expired tokens all report the same bad request.
func useActionToken(ctx context.Context, repo user.ActionTokenRepository, purpose user.TokenPurpose, hash string) (*user.ActionToken, error) {
	t, err := repo.GetByHash(ctx, purpose, hash)
	if err != nil {
		if errors.Is(err, user.ErrActionTokenNotFound) {
			return nil, apperrors.NewBadRequestError("invalid or expired token")
		}
		return nil, err
	}
	if err := t.Use(); err != nil {
		return nil, apperrors.NewBadRequestError("invalid or expired token")
	}
	if err := repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}
