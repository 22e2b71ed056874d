package usecases

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/merojugx/mero/internal/domain/user"
	"github.com/merojugx/mero/internal/shared/authorization"
	apperrors "github.com/merojugx/mero/internal/shared/errors"
	"github.com/merojugx/mero/internal/shared/logger"
)

// backupCodeCount is how many backup codes each enrollment hands out.
const backupCodeCount = 10

type GetMFAStatusCommand struct {
	Actor authorization.Principal
}

type MFAStatusResult struct {
	Enabled          bool       `json:"enabled"`
	SetupPending     bool       `json:"setup_pending"`
	BackupCodesLeft  int        `json:"backup_codes_left"`
	SetupCompletedAt *time.Time `json:"setup_completed_at,omitempty"`
}

type GetMFAStatusUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetMFAStatusUseCase(userRepo user.Repository, logger logger.Interface) *GetMFAStatusUseCase {
	return &GetMFAStatusUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *GetMFAStatusUseCase) Execute(ctx context.Context, cmd GetMFAStatusCommand) (*MFAStatusResult, error) {
	u, err := loadActor(ctx, uc.userRepo, uc.logger, cmd.Actor)
	if err != nil {
		return nil, err
	}
	_, pending := u.PendingMFASecret()
	return &MFAStatusResult{
		Enabled:          u.MFAEnabled(),
		SetupPending:     pending,
		BackupCodesLeft:  len(u.MFABackupCodes()),
		SetupCompletedAt: u.MFASetupCompletedAt(),
	}, nil
}

type SetupMFACommand struct {
	Actor authorization.Principal
}

type SetupMFAResult struct {
	Secret     string `json:"secret"`
	OTPAuthURL string `json:"otpauth_url"`
}

// SetupMFAUseCase starts enrollment. The secret stays inactive until
// VerifyMFASetup confirms a code generated from it; calling it again replaces
// an unconfirmed secret.
type SetupMFAUseCase struct {
	userRepo user.Repository
	secrets  SecretGenerator
	logger   logger.Interface
}

func NewSetupMFAUseCase(userRepo user.Repository, secrets SecretGenerator, logger logger.Interface) *SetupMFAUseCase {
	return &SetupMFAUseCase{
		userRepo: userRepo,
		secrets:  secrets,
		logger:   logger,
	}
}

func (uc *SetupMFAUseCase) Execute(ctx context.Context, cmd SetupMFACommand) (*SetupMFAResult, error) {
	uc.logger.Infow("executing setup mfa use case", "user_id", cmd.Actor.UserID)

	u, err := loadActor(ctx, uc.userRepo, uc.logger, cmd.Actor)
	if err != nil {
		return nil, err
	}
	if u.MFAEnabled() {
		return nil, apperrors.NewConflictError("two-factor authentication is already enabled")
	}

	secret, otpauthURL, err := uc.secrets.NewSecret(u.Email())
	if err != nil {
		uc.logger.Errorw("failed to generate totp secret", "user_id", u.ID(), "error", err)
		return nil, apperrors.NewInternalError("failed to start two-factor setup")
	}
	if err := u.BeginMFASetup(secret); err != nil {
		return nil, apperrors.NewConflictError(err.Error())
	}
	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to update user", "user_id", u.ID(), "error", err)
		return nil, apperrors.NewInternalError("failed to start two-factor setup")
	}

	uc.logger.Infow("mfa setup started", "user_id", u.ID())
	return &SetupMFAResult{Secret: secret, OTPAuthURL: otpauthURL}, nil
}

type VerifyMFASetupCommand struct {
	Actor authorization.Principal
	Code  string
}

// BackupCodesResult carries plain backup codes. They are shown once and only
// their hashes are stored.
type BackupCodesResult struct {
	BackupCodes []string `json:"backup_codes"`
}

type VerifyMFASetupUseCase struct {
	userRepo    user.Repository
	totp        CodeValidator
	backupCodes BackupCodeGenerator
	logger      logger.Interface
}

func NewVerifyMFASetupUseCase(userRepo user.Repository, totp CodeValidator, backupCodes BackupCodeGenerator, logger logger.Interface) *VerifyMFASetupUseCase {
	return &VerifyMFASetupUseCase{
		userRepo:    userRepo,
		totp:        totp,
		backupCodes: backupCodes,
		logger:      logger,
	}
}

func (uc *VerifyMFASetupUseCase) Execute(ctx context.Context, cmd VerifyMFASetupCommand) (*BackupCodesResult, error) {
	uc.logger.Infow("executing verify mfa setup use case", "user_id", cmd.Actor.UserID)

	u, err := loadActor(ctx, uc.userRepo, uc.logger, cmd.Actor)
	if err != nil {
		return nil, err
	}
	if u.MFAEnabled() {
		return nil, apperrors.NewConflictError("two-factor authentication is already enabled")
	}
	secret, ok := u.PendingMFASecret()
	if !ok {
		return nil, apperrors.NewBadRequestError(user.ErrMFASetupNotStarted.Error())
	}

	code := strings.TrimSpace(cmd.Code)
	if len(code) != totpCodeLength || !isDigits(code) || !uc.totp.Validate(code, secret) {
		uc.logger.Warnw("mfa setup rejected: invalid code", "user_id", u.ID())
		return nil, apperrors.NewUnauthorizedError("invalid verification code")
	}

	plain, hashes, err := uc.backupCodes.Generate(backupCodeCount)
	if err != nil {
		uc.logger.Errorw("failed to generate backup codes", "user_id", u.ID(), "error", err)
		return nil, apperrors.NewInternalError("failed to complete two-factor setup")
	}

	u.EnableMFA(secret, hashes)
	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to update user", "user_id", u.ID(), "error", err)
		return nil, apperrors.NewInternalError("failed to complete two-factor setup")
	}

	uc.logger.Infow("mfa enabled", "user_id", u.ID())
	return &BackupCodesResult{BackupCodes: plain}, nil
}

type RegenerateBackupCodesCommand struct {
	Actor authorization.Principal
	// Code is the current TOTP code. Backup codes are not accepted here.
	Code string
}

type RegenerateBackupCodesUseCase struct {
	userRepo    user.Repository
	totp        CodeValidator
	backupCodes BackupCodeGenerator
	logger      logger.Interface
}

func NewRegenerateBackupCodesUseCase(userRepo user.Repository, totp CodeValidator, backupCodes BackupCodeGenerator, logger logger.Interface) *RegenerateBackupCodesUseCase {
	return &RegenerateBackupCodesUseCase{
		userRepo:    userRepo,
		totp:        totp,
		backupCodes: backupCodes,
		logger:      logger,
	}
}

func (uc *RegenerateBackupCodesUseCase) Execute(ctx context.Context, cmd RegenerateBackupCodesCommand) (*BackupCodesResult, error) {
	uc.logger.Infow("executing regenerate backup codes use case", "user_id", cmd.Actor.UserID)

	u, err := loadActor(ctx, uc.userRepo, uc.logger, cmd.Actor)
	if err != nil {
		return nil, err
	}
	if !u.MFAEnabled() || u.MFASecret() == nil {
		return nil, apperrors.NewBadRequestError("two-factor authentication is not enabled")
	}

	code := strings.TrimSpace(cmd.Code)
	if len(code) != totpCodeLength || !isDigits(code) || !uc.totp.Validate(code, *u.MFASecret()) {
		uc.logger.Warnw("backup code regeneration rejected: invalid code", "user_id", u.ID())
		return nil, apperrors.NewUnauthorizedError("invalid verification code")
	}

	plain, hashes, err := uc.backupCodes.Generate(backupCodeCount)
	if err != nil {
		uc.logger.Errorw("failed to generate backup codes", "user_id", u.ID(), "error", err)
		return nil, apperrors.NewInternalError("failed to regenerate backup codes")
	}
	if err := u.ReplaceBackupCodes(hashes); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}
	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to update user", "user_id", u.ID(), "error", err)
		return nil, apperrors.NewInternalError("failed to regenerate backup codes")
	}

	uc.logger.Infow("backup codes regenerated", "user_id", u.ID())
	return &BackupCodesResult{BackupCodes: plain}, nil
}

func loadActor(ctx context.Context, userRepo user.Repository, log logger.Interface, actor authorization.Principal) (*user.User, error) {
	u, err := userRepo.GetByID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		log.Errorw("failed to get user", "user_id", actor.UserID, "error", err)
		return nil, apperrors.NewInternalError("failed to get user")
	}
	return u, nil
}
