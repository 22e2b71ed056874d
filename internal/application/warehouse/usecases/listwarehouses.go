package usecases

import (
	"context"

	"github.com/merojugx/mero/internal/application/common"
	"github.com/merojugx/mero/internal/application/warehouse/dto"
	"github.com/merojugx/mero/internal/domain/warehouse"
	"github.com/merojugx/mero/internal/shared/authorization"
	apperrors "github.com/merojugx/mero/internal/shared/errors"
	"github.com/merojugx/mero/internal/shared/logger"
)

type ListWarehousesExecutor interface {
	Execute(ctx context.Context, query ListWarehousesQuery) ([]*dto.WarehouseDTO, error)
}

type ListWarehousesQuery struct {
	Actor          authorization.Principal
	OrganizationID string
	// Type filters by warehouse type; empty lists every type.
	Type string
}

type ListWarehousesUseCase struct {
	warehouseRepo warehouse.Repository
	access        *common.OrganizationAccess
	logger        logger.Interface
}

func NewListWarehousesUseCase(warehouseRepo warehouse.Repository, access *common.OrganizationAccess, logger logger.Interface) *ListWarehousesUseCase {
	return &ListWarehousesUseCase{
		warehouseRepo: warehouseRepo,
		access:        access,
		logger:        logger,
	}
}

func (uc *ListWarehousesUseCase) Execute(ctx context.Context, query ListWarehousesQuery) ([]*dto.WarehouseDTO, error) {
	if err := uc.access.RequireMember(query.Actor, query.OrganizationID); err != nil {
		return nil, err
	}

	t := warehouse.Type(query.Type)
	if t != "" && !t.IsValid() {
		return nil, apperrors.NewValidationError(warehouse.ErrInvalidType.Error(), query.Type)
	}

	list, err := uc.warehouseRepo.ListByOrganization(ctx, query.OrganizationID, t)
	if err != nil {
		uc.logger.Errorw("failed to list warehouses", "organization_id", query.OrganizationID, "error", err)
		return nil, apperrors.NewInternalError("failed to list warehouses")
	}
	return dto.ToWarehouseDTOs(list), nil
}
