package usecases

import (
	"context"
	"crypto/subtle"
	"errors"

	"github.com/merojugx/mero/internal/application/auth/dto"
	"github.com/merojugx/mero/internal/domain/organization"
	"github.com/merojugx/mero/internal/domain/user"
	apperrors "github.com/merojugx/mero/internal/shared/errors"
	"github.com/merojugx/mero/internal/shared/logger"
)

type RefreshTokenCommand struct {
	RefreshToken string
}

// RefreshTokenUseCase exchanges a refresh token for a new pair. The stored
// hash is rotated on every call, so each refresh token works once.
type RefreshTokenUseCase struct {
	userRepo    user.Repository
	sessionRepo user.SessionRepository
	memberRepo  organization.MemberRepository
	tokens      SessionTokens
	logger      logger.Interface
}

func NewRefreshTokenUseCase(
	userRepo user.Repository,
	sessionRepo user.SessionRepository,
	memberRepo organization.MemberRepository,
	tokens SessionTokens,
	logger logger.Interface,
) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		memberRepo:  memberRepo,
		tokens:      tokens,
		logger:      logger,
	}
}

func (uc *RefreshTokenUseCase) Execute(ctx context.Context, cmd RefreshTokenCommand) (*dto.TokenResponse, error) {
	claims, err := uc.tokens.ParseRefresh(cmd.RefreshToken)
	if err != nil {
		return nil, apperrors.NewUnauthorizedError("invalid refresh token")
	}

	uc.logger.Infow("executing refresh token use case", "session_id", claims.SessionID)

	session, err := uc.sessionRepo.GetByID(ctx, claims.SessionID)
	if err != nil {
		if errors.Is(err, user.ErrSessionNotFound) {
			return nil, apperrors.NewUnauthorizedError("invalid refresh token")
		}
		uc.logger.Errorw("failed to get session", "session_id", claims.SessionID, "error", err)
		return nil, apperrors.NewInternalError("failed to refresh token")
	}
	if session.UserID() != claims.UserID || !session.IsActive() {
		return nil, apperrors.NewUnauthorizedError("session expired or revoked")
	}

	// A signed token that no longer matches the stored hash was already
	// rotated out. Whoever holds it may be replaying a stolen copy.
	presented := hashRefreshToken(cmd.RefreshToken)
	if subtle.ConstantTimeCompare([]byte(presented), []byte(session.RefreshTokenHash())) != 1 {
		uc.logger.Warnw("refresh token reuse detected, revoking session", "session_id", session.ID(), "user_id", session.UserID())
		uc.revoke(ctx, session)
		return nil, apperrors.NewUnauthorizedError("invalid refresh token")
	}

	u, err := uc.userRepo.GetByID(ctx, session.UserID())
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			uc.revoke(ctx, session)
			return nil, apperrors.NewUnauthorizedError("invalid refresh token")
		}
		uc.logger.Errorw("failed to get user", "user_id", session.UserID(), "error", err)
		return nil, apperrors.NewInternalError("failed to refresh token")
	}

	pair, err := uc.issue(ctx, u, session)
	if err != nil {
		return nil, err
	}

	session.SetRefreshTokenHash(hashRefreshToken(pair.RefreshToken))
	if err := uc.sessionRepo.Update(ctx, session); err != nil {
		uc.logger.Errorw("failed to rotate refresh token", "session_id", session.ID(), "error", err)
		return nil, apperrors.NewInternalError("failed to refresh token")
	}

	uc.logger.Infow("token refreshed", "user_id", u.ID(), "session_id", session.ID())
	return &dto.TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}

// issue re-checks that the user may still hold the session and signs a new
// pair with the current role. Sessions the user lost the right to are revoked.
func (uc *RefreshTokenUseCase) issue(ctx context.Context, u *user.User, session *user.Session) (*TokenPair, error) {
	var (
		pair *TokenPair
		err  error
	)
	if session.IsSystemAdminSession() {
		if err := u.CanLoginAsSystemAdmin(); err != nil {
			uc.logger.Warnw("system admin session no longer valid", "user_id", u.ID(), "reason", err)
			uc.revoke(ctx, session)
			return nil, apperrors.NewUnauthorizedError("session is no longer valid")
		}
		pair, err = uc.tokens.IssueSystemAdmin(u.ID(), session.ID(), *u.SystemAdminRole())
	} else {
		orgID := *session.OrganizationID()
		if err := uc.stillMember(ctx, u, orgID); err != nil {
			if apperrors.IsUnauthorizedError(err) {
				uc.revoke(ctx, session)
			}
			return nil, err
		}
		pair, err = uc.tokens.IssueForOrganization(u.ID(), session.ID(), orgID)
	}
	if err != nil {
		uc.logger.Errorw("failed to issue tokens", "user_id", u.ID(), "error", err)
		return nil, apperrors.NewInternalError("failed to refresh token")
	}
	return pair, nil
}

func (uc *RefreshTokenUseCase) stillMember(ctx context.Context, u *user.User, organizationID string) error {
	if err := u.CanLogin(); err != nil {
		uc.logger.Warnw("organization session no longer valid", "user_id", u.ID(), "reason", err)
		return apperrors.NewUnauthorizedError("session is no longer valid")
	}
	member, err := uc.memberRepo.Get(ctx, organizationID, u.ID())
	if err != nil {
		if errors.Is(err, organization.ErrMemberNotFound) {
			return apperrors.NewUnauthorizedError("session is no longer valid")
		}
		uc.logger.Errorw("failed to load organization member", "organization_id", organizationID, "user_id", u.ID(), "error", err)
		return apperrors.NewInternalError("failed to refresh token")
	}
	if !member.IsActive() {
		return apperrors.NewUnauthorizedError("session is no longer valid")
	}
	return nil
}

func (uc *RefreshTokenUseCase) revoke(ctx context.Context, session *user.Session) {
	session.Revoke()
	if err := uc.sessionRepo.Update(ctx, session); err != nil {
		uc.logger.Errorw("failed to revoke session", "session_id", session.ID(), "error", err)
	}
}
