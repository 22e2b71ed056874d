package usecases

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/merojugx/mero/internal/application/admin/dto"
	"github.com/merojugx/mero/internal/domain/user"
	apperrors "github.com/merojugx/mero/internal/shared/errors"
	"github.com/merojugx/mero/internal/shared/logger"
)

type AdminLoginCommand struct {
	Email     string
	Password  string
	IPAddress string
	UserAgent string
}

// AdminLoginUseCase authenticates a system admin and opens a session that is
// not bound to any organization.
type AdminLoginUseCase struct {
	userRepo    user.Repository
	sessionRepo user.SessionRepository
	hasher      PasswordVerifier
	tokens      TokenIssuer
	sessionTTL  time.Duration
	logger      logger.Interface
}

func NewAdminLoginUseCase(
	userRepo user.Repository,
	sessionRepo user.SessionRepository,
	hasher PasswordVerifier,
	tokens TokenIssuer,
	sessionTTL time.Duration,
	logger logger.Interface,
) *AdminLoginUseCase {
	return &AdminLoginUseCase{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		hasher:      hasher,
		tokens:      tokens,
		sessionTTL:  sessionTTL,
		logger:      logger,
	}
}

func (uc *AdminLoginUseCase) Execute(ctx context.Context, cmd AdminLoginCommand) (*dto.AdminLoginResponse, error) {
	u, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, apperrors.NewUnauthorizedError("invalid email or password")
		}
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, apperrors.NewInternalError("failed to log in")
	}

	// Unknown email and wrong password are indistinguishable to the caller.
	if err := uc.hasher.Verify(cmd.Password, u.PasswordHash()); err != nil {
		uc.logger.Warnw("system admin login with invalid password", "user_id", u.ID(), "ip", cmd.IPAddress)
		return nil, apperrors.NewUnauthorizedError("invalid email or password")
	}

	if err := u.CanLoginAsSystemAdmin(); err != nil {
		uc.logger.Warnw("system admin login refused", "user_id", u.ID(), "reason", err)
		switch {
		case errors.Is(err, user.ErrEmailNotVerified):
			return nil, apperrors.NewForbiddenError("email address must be verified")
		case errors.Is(err, user.ErrUserInactive):
			return nil, apperrors.NewForbiddenError("account is not active")
		default:
			return nil, apperrors.NewForbiddenError("system admin access required")
		}
	}
	role := *u.SystemAdminRole()

	session := user.NewSession(u.ID(), nil, cmd.IPAddress, cmd.UserAgent, uc.sessionTTL)
	pair, err := uc.tokens.IssueSystemAdmin(u.ID(), session.ID(), role)
	if err != nil {
		uc.logger.Errorw("failed to issue tokens", "user_id", u.ID(), "error", err)
		return nil, apperrors.NewInternalError("failed to log in")
	}
	session.SetRefreshTokenHash(hashToken(pair.RefreshToken))

	if err := uc.sessionRepo.Create(ctx, session); err != nil {
		uc.logger.Errorw("failed to create session", "user_id", u.ID(), "error", err)
		return nil, apperrors.NewInternalError("failed to log in")
	}

	u.RecordLogin()
	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Warnw("failed to record login time", "user_id", u.ID(), "error", err)
	}

	uc.logger.Infow("system admin logged in", "user_id", u.ID(), "session_id", session.ID(), "role", role)

	return &dto.AdminLoginResponse{
		User:         dto.ToSystemAdminDTO(u),
		SessionID:    session.ID(),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}

// hashToken is the storage form of a refresh token.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
