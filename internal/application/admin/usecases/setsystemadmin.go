package usecases

import (
	"context"
	"errors"

	"github.com/merojugx/mero/internal/application/admin/dto"
	"github.com/merojugx/mero/internal/domain/user"
	"github.com/merojugx/mero/internal/shared/authorization"
	"github.com/merojugx/mero/internal/shared/biztime"
	apperrors "github.com/merojugx/mero/internal/shared/errors"
	"github.com/merojugx/mero/internal/shared/logger"
)

type SetSystemAdminCommand struct {
	Actor  authorization.Principal
	UserID string
	// Role grants the given system admin role; empty revokes.
	Role string
}

// SetSystemAdminUseCase grants or revokes system admin access and keeps the
// permission enforcer in step with the user record. Live sessions of the
// target are revoked because their tokens still carry the old role.
type SetSystemAdminUseCase struct {
	userRepo    user.Repository
	sessionRepo user.SessionRepository
	roles       RoleSyncer
	logger      logger.Interface
}

func NewSetSystemAdminUseCase(userRepo user.Repository, sessionRepo user.SessionRepository, roles RoleSyncer, logger logger.Interface) *SetSystemAdminUseCase {
	return &SetSystemAdminUseCase{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		roles:       roles,
		logger:      logger,
	}
}

func (uc *SetSystemAdminUseCase) Execute(ctx context.Context, cmd SetSystemAdminCommand) (*dto.SystemAdminDTO, error) {
	uc.logger.Infow("executing set system admin use case", "target_user_id", cmd.UserID, "role", cmd.Role, "actor", cmd.Actor.UserID)

	var role authorization.SystemAdminRole
	if cmd.Role != "" {
		parsed, ok := authorization.ParseSystemAdminRole(cmd.Role)
		if !ok {
			return nil, apperrors.NewValidationError("invalid system admin role", cmd.Role)
		}
		role = parsed
	}
	if cmd.Role == "" && cmd.Actor.UserID == cmd.UserID {
		return nil, apperrors.NewForbiddenError("cannot revoke your own system admin access")
	}

	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		uc.logger.Errorw("failed to get user", "user_id", cmd.UserID, "error", err)
		return nil, apperrors.NewInternalError("failed to get user")
	}

	if cmd.Role == "" {
		u.RevokeSystemAdmin()
	} else if err := u.GrantSystemAdmin(role); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to update user", "user_id", u.ID(), "error", err)
		return nil, apperrors.NewInternalError("failed to update user")
	}

	if err := uc.roles.SetUserRole(u.ID(), cmd.Role); err != nil {
		uc.logger.Errorw("failed to sync system admin role", "user_id", u.ID(), "role", cmd.Role, "error", err)
		return nil, apperrors.NewInternalError("failed to sync permissions")
	}

	revoked, err := uc.sessionRepo.RevokeAllForUser(ctx, u.ID(), biztime.NowUTC())
	if err != nil {
		uc.logger.Errorw("failed to revoke sessions", "user_id", u.ID(), "error", err)
		return nil, apperrors.NewInternalError("failed to revoke sessions")
	}

	if cmd.Role == "" {
		uc.logger.Infow("system admin revoked", "user_id", u.ID(), "actor", cmd.Actor.UserID, "sessions_revoked", revoked)
	} else {
		uc.logger.Infow("system admin granted", "user_id", u.ID(), "role", role, "actor", cmd.Actor.UserID, "sessions_revoked", revoked)
	}
	return dto.ToSystemAdminDTO(u), nil
}
