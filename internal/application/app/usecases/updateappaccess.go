package usecases

import (
	"context"
	"errors"

	"github.com/merojugx/mero/internal/application/app/dto"
	"github.com/merojugx/mero/internal/application/common"
	"github.com/merojugx/mero/internal/domain/app"
	"github.com/merojugx/mero/internal/domain/organization"
	"github.com/merojugx/mero/internal/domain/role"
	"github.com/merojugx/mero/internal/shared/authorization"
	apperrors "github.com/merojugx/mero/internal/shared/errors"
	"github.com/merojugx/mero/internal/shared/logger"
)

type UpdateAppAccessCommand struct {
	Actor          authorization.Principal
	OrganizationID string
	UserID         string
	AppID          string
	RoleID         string
}

// UpdateAppAccessUseCase grants an organization member a role inside an app,
// replacing any previous grant for the same app.
type UpdateAppAccessUseCase struct {
	appRepo    app.Repository
	accessRepo app.AccessRepository
	members    organization.MemberRepository
	roles      role.Repository
	access     *common.OrganizationAccess
	logger     logger.Interface
}

func NewUpdateAppAccessUseCase(
	appRepo app.Repository,
	accessRepo app.AccessRepository,
	members organization.MemberRepository,
	roles role.Repository,
	access *common.OrganizationAccess,
	logger logger.Interface,
) *UpdateAppAccessUseCase {
	return &UpdateAppAccessUseCase{
		appRepo:    appRepo,
		accessRepo: accessRepo,
		members:    members,
		roles:      roles,
		access:     access,
		logger:     logger,
	}
}

func (uc *UpdateAppAccessUseCase) Execute(ctx context.Context, cmd UpdateAppAccessCommand) (*dto.AppAccessDTO, error) {
	uc.logger.Infow("executing update app access use case",
		"organization_id", cmd.OrganizationID,
		"user_id", cmd.UserID,
		"app_id", cmd.AppID,
		"role_id", cmd.RoleID,
	)

	if _, err := uc.access.RequireManager(ctx, cmd.Actor, cmd.OrganizationID); err != nil {
		return nil, err
	}

	member, err := uc.members.Get(ctx, cmd.OrganizationID, cmd.UserID)
	if err != nil {
		if errors.Is(err, organization.ErrMemberNotFound) {
			return nil, apperrors.NewNotFoundError("user is not a member of this organization")
		}
		uc.logger.Errorw("failed to load member", "user_id", cmd.UserID, "error", err)
		return nil, apperrors.NewInternalError("failed to load member")
	}
	if !member.IsActive() {
		return nil, apperrors.NewValidationError("membership is not active")
	}

	a, err := uc.appRepo.GetByID(ctx, cmd.AppID)
	if err != nil {
		if errors.Is(err, app.ErrAppNotFound) {
			return nil, apperrors.NewNotFoundError("app not found")
		}
		uc.logger.Errorw("failed to load app", "app_id", cmd.AppID, "error", err)
		return nil, apperrors.NewInternalError("failed to load app")
	}
	if !a.IsActive() {
		return nil, apperrors.NewValidationError(app.ErrAppInactive.Error())
	}

	if _, err := uc.roles.GetInOrganization(ctx, cmd.OrganizationID, cmd.RoleID); err != nil {
		if errors.Is(err, role.ErrRoleNotFound) {
			return nil, apperrors.NewNotFoundError("role not found")
		}
		uc.logger.Errorw("failed to load role", "role_id", cmd.RoleID, "error", err)
		return nil, apperrors.NewInternalError("failed to load role")
	}

	stored, err := uc.accessRepo.Upsert(ctx, app.NewAccess(cmd.OrganizationID, cmd.UserID, a.ID(), cmd.RoleID, cmd.Actor.UserID))
	if err != nil {
		uc.logger.Errorw("failed to save app access", "organization_id", cmd.OrganizationID, "user_id", cmd.UserID, "error", err)
		return nil, apperrors.NewInternalError("failed to save app access")
	}

	uc.logger.Infow("app access updated", "access_id", stored.ID(), "app", a.Slug())
	return dto.ToAppAccessDTO(stored), nil
}
