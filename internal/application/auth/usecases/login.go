package usecases

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/merojugx/mero/internal/application/auth/dto"
	"github.com/merojugx/mero/internal/domain/organization"
	"github.com/merojugx/mero/internal/domain/user"
	apperrors "github.com/merojugx/mero/internal/shared/errors"
	"github.com/merojugx/mero/internal/shared/logger"
)

const totpCodeLength = 6

type LoginCommand struct {
	Email          string
	Password       string
	OrganizationID string
	// MFACode is required once the user has two-factor authentication
	// enabled. It is a TOTP code or one unused backup code.
	MFACode   string
	IPAddress string
	UserAgent string
}

// LoginUseCase authenticates a member and opens a session bound to one
// organization.
type LoginUseCase struct {
	userRepo    user.Repository
	sessionRepo user.SessionRepository
	orgRepo     organization.Repository
	memberRepo  organization.MemberRepository
	hasher      PasswordHasher
	tokens      SessionTokens
	totp        CodeValidator
	backupCodes BackupCodeMatcher
	sessionTTL  time.Duration
	logger      logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	sessionRepo user.SessionRepository,
	orgRepo organization.Repository,
	memberRepo organization.MemberRepository,
	hasher PasswordHasher,
	tokens SessionTokens,
	totp CodeValidator,
	backupCodes BackupCodeMatcher,
	sessionTTL time.Duration,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		orgRepo:     orgRepo,
		memberRepo:  memberRepo,
		hasher:      hasher,
		tokens:      tokens,
		totp:        totp,
		backupCodes: backupCodes,
		sessionTTL:  sessionTTL,
		logger:      logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*dto.LoginResponse, error) {
	uc.logger.Infow("executing login use case", "organization_id", cmd.OrganizationID, "ip", cmd.IPAddress)

	if cmd.OrganizationID == "" {
		return nil, apperrors.NewBadRequestError("organization_id is required")
	}

	u, err := uc.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(cmd.Email)))
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, apperrors.NewUnauthorizedError("invalid email or password")
		}
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, apperrors.NewInternalError("failed to log in")
	}
	if err := uc.hasher.Verify(cmd.Password, u.PasswordHash()); err != nil {
		uc.logger.Warnw("login with invalid password", "user_id", u.ID(), "ip", cmd.IPAddress)
		return nil, apperrors.NewUnauthorizedError("invalid email or password")
	}

	if err := u.CanLogin(); err != nil {
		uc.logger.Warnw("login refused", "user_id", u.ID(), "reason", err)
		if errors.Is(err, user.ErrEmailNotVerified) {
			return nil, apperrors.NewForbiddenError("email address must be verified")
		}
		return nil, apperrors.NewForbiddenError("account is not active")
	}

	org, err := uc.requireMembership(ctx, u.ID(), cmd.OrganizationID)
	if err != nil {
		return nil, err
	}

	if u.MFAEnabled() {
		if err := uc.checkMFA(ctx, u, strings.TrimSpace(cmd.MFACode)); err != nil {
			return nil, err
		}
	}

	orgID := org.ID()
	session := user.NewSession(u.ID(), &orgID, cmd.IPAddress, cmd.UserAgent, uc.sessionTTL)
	pair, err := uc.tokens.IssueForOrganization(u.ID(), session.ID(), orgID)
	if err != nil {
		uc.logger.Errorw("failed to issue tokens", "user_id", u.ID(), "error", err)
		return nil, apperrors.NewInternalError("failed to log in")
	}
	session.SetRefreshTokenHash(hashRefreshToken(pair.RefreshToken))

	if err := uc.sessionRepo.Create(ctx, session); err != nil {
		uc.logger.Errorw("failed to create session", "user_id", u.ID(), "error", err)
		return nil, apperrors.NewInternalError("failed to log in")
	}

	u.RecordLogin()
	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Warnw("failed to record login time", "user_id", u.ID(), "error", err)
	}

	uc.logger.Infow("user logged in", "user_id", u.ID(), "organization_id", orgID, "session_id", session.ID())

	return &dto.LoginResponse{
		User:         dto.ToUserDTO(u),
		Organization: dto.ToOrganizationDTO(org),
		SessionID:    session.ID(),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}

// requireMembership loads the organization and checks the user holds an
// active membership in it.
func (uc *LoginUseCase) requireMembership(ctx context.Context, userID, organizationID string) (*organization.Organization, error) {
	org, err := uc.orgRepo.GetByID(ctx, organizationID)
	if err != nil {
		if errors.Is(err, organization.ErrOrganizationNotFound) {
			return nil, apperrors.NewNotFoundError("organization not found")
		}
		uc.logger.Errorw("failed to load organization", "organization_id", organizationID, "error", err)
		return nil, apperrors.NewInternalError("failed to log in")
	}
	if !org.IsActive() {
		return nil, apperrors.NewForbiddenError("organization is not active")
	}

	member, err := uc.memberRepo.Get(ctx, organizationID, userID)
	if err != nil {
		if errors.Is(err, organization.ErrMemberNotFound) {
			uc.logger.Warnw("login to foreign organization", "user_id", userID, "organization_id", organizationID)
			return nil, apperrors.NewForbiddenError("not a member of this organization")
		}
		uc.logger.Errorw("failed to load organization member", "organization_id", organizationID, "user_id", userID, "error", err)
		return nil, apperrors.NewInternalError("failed to log in")
	}
	if !member.IsActive() {
		return nil, apperrors.NewForbiddenError("membership is not active")
	}
	return org, nil
}

// checkMFA accepts a TOTP code or burns one backup code.
func (uc *LoginUseCase) checkMFA(ctx context.Context, u *user.User, code string) error {
	if code == "" {
		return apperrors.NewUnauthorizedError("two-factor authentication code required")
	}
	if len(code) == totpCodeLength && isDigits(code) {
		if u.MFASecret() != nil && uc.totp.Validate(code, *u.MFASecret()) {
			return nil
		}
		return apperrors.NewUnauthorizedError("invalid verification code")
	}

	i := uc.backupCodes.Match(code, u.MFABackupCodes())
	if i < 0 {
		uc.logger.Warnw("login with invalid backup code", "user_id", u.ID())
		return apperrors.NewUnauthorizedError("invalid verification code")
	}
	u.ConsumeBackupCode(i)
	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to consume backup code", "user_id", u.ID(), "error", err)
		return apperrors.NewInternalError("failed to log in")
	}
	uc.logger.Infow("backup code used for login", "user_id", u.ID(), "remaining", len(u.MFABackupCodes()))
	return nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
