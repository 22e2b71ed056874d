package usecases

import (
	"context"
	"errors"
	"strings"

	"github.com/merojugx/mero/internal/domain/user"
	"github.com/merojugx/mero/internal/shared/authorization"
	apperrors "github.com/merojugx/mero/internal/shared/errors"
	"github.com/merojugx/mero/internal/shared/logger"
)

const totpCodeLength = 6

type DisableMFACommand struct {
	Actor authorization.Principal
	// Code is the current 6 digit TOTP code or one unused backup code.
	Code string
}

type DisableMFAUseCase struct {
	userRepo    user.Repository
	totp        CodeValidator
	backupCodes BackupCodeMatcher
	logger      logger.Interface
}

func NewDisableMFAUseCase(userRepo user.Repository, totp CodeValidator, backupCodes BackupCodeMatcher, logger logger.Interface) *DisableMFAUseCase {
	return &DisableMFAUseCase{
		userRepo:    userRepo,
		totp:        totp,
		backupCodes: backupCodes,
		logger:      logger,
	}
}

func (uc *DisableMFAUseCase) Execute(ctx context.Context, cmd DisableMFACommand) error {
	uc.logger.Infow("executing disable mfa use case", "user_id", cmd.Actor.UserID)

	u, err := uc.userRepo.GetByID(ctx, cmd.Actor.UserID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return apperrors.NewNotFoundError("user not found")
		}
		uc.logger.Errorw("failed to get user", "user_id", cmd.Actor.UserID, "error", err)
		return apperrors.NewInternalError("failed to get user")
	}
	if !u.MFAEnabled() || u.MFASecret() == nil {
		return apperrors.NewBadRequestError("two-factor authentication is not enabled")
	}

	if !uc.codeAccepted(u, strings.TrimSpace(cmd.Code)) {
		uc.logger.Warnw("mfa disable rejected: invalid code", "user_id", u.ID())
		return apperrors.NewUnauthorizedError("invalid verification code")
	}

	if err := u.DisableMFA(); err != nil {
		return apperrors.NewBadRequestError(err.Error())
	}
	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to update user", "user_id", u.ID(), "error", err)
		return apperrors.NewInternalError("failed to disable two-factor authentication")
	}

	uc.logger.Infow("mfa disabled", "user_id", u.ID())
	return nil
}

// codeAccepted tries the TOTP secret for 6 digit codes and the backup codes
// otherwise.
func (uc *DisableMFAUseCase) codeAccepted(u *user.User, code string) bool {
	if len(code) == totpCodeLength && isDigits(code) {
		return uc.totp.Validate(code, *u.MFASecret())
	}
	return uc.backupCodes.Match(code, u.MFABackupCodes()) >= 0
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
