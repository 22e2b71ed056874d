package usecases

import (
	"context"

	"github.com/merojugx/mero/internal/application/common"
	"github.com/merojugx/mero/internal/application/role/dto"
	"github.com/merojugx/mero/internal/domain/role"
	"github.com/merojugx/mero/internal/shared/authorization"
	apperrors "github.com/merojugx/mero/internal/shared/errors"
	"github.com/merojugx/mero/internal/shared/logger"
)

type ListRolesQuery struct {
	Actor          authorization.Principal
	OrganizationID string
}

type ListRolesUseCase struct {
	roleRepo role.Repository
	access   *common.OrganizationAccess
	logger   logger.Interface
}

func NewListRolesUseCase(roleRepo role.Repository, access *common.OrganizationAccess, logger logger.Interface) *ListRolesUseCase {
	return &ListRolesUseCase{roleRepo: roleRepo, access: access, logger: logger}
}

func (uc *ListRolesUseCase) Execute(ctx context.Context, query ListRolesQuery) ([]*dto.RoleDTO, error) {
	if err := uc.access.RequireMember(query.Actor, query.OrganizationID); err != nil {
		return nil, err
	}

	list, err := uc.roleRepo.ListByOrganization(ctx, query.OrganizationID)
	if err != nil {
		uc.logger.Errorw("failed to list roles", "organization_id", query.OrganizationID, "error", err)
		return nil, apperrors.NewInternalError("failed to list roles")
	}
	return dto.ToRoleDTOs(list), nil
}
