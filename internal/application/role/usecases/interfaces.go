package usecases

import (
	"context"

	"github.com/merojugx/mero/internal/application/role/dto"
)

type SetRoleHierarchyLevelExecutor interface {
	Execute(ctx context.Context, cmd SetRoleHierarchyLevelCommand) (*dto.RoleDTO, error)
}

type ListRolesExecutor interface {
	Execute(ctx context.Context, query ListRolesQuery) ([]*dto.RoleDTO, error)
}
