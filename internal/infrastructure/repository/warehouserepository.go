package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/merojugx/mero/internal/domain/warehouse"
	"github.com/merojugx/mero/internal/infrastructure/persistence/mappers"
	"github.com/merojugx/mero/internal/infrastructure/persistence/models"
	"github.com/merojugx/mero/internal/shared/db"
)

type WarehouseRepository struct {
	db *gorm.DB
}

func NewWarehouseRepository(gdb *gorm.DB) *WarehouseRepository {
	return &WarehouseRepository{db: gdb}
}

func (r *WarehouseRepository) Create(ctx context.Context, w *warehouse.Warehouse) error {
	if err := db.GetTxFromContext(ctx, r.db).Create(mappers.WarehouseToModel(w)).Error; err != nil {
		return fmt.Errorf("failed to create warehouse: %w", err)
	}
	return nil
}

func (r *WarehouseRepository) GetByID(ctx context.Context, warehouseID string) (*warehouse.Warehouse, error) {
	var model models.WarehouseModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id = ?", warehouseID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, warehouse.ErrWarehouseNotFound
		}
		return nil, fmt.Errorf("failed to get warehouse: %w", err)
	}
	return mappers.WarehouseToDomain(&model), nil
}

func (r *WarehouseRepository) ListByOrganization(ctx context.Context, organizationID string, t warehouse.Type) ([]*warehouse.Warehouse, error) {
	q := db.GetTxFromContext(ctx, r.db).Scopes(db.ByOrganization(organizationID))
	if t != "" {
		q = q.Where("type = ?", string(t))
	}

	var list []*models.WarehouseModel
	if err := q.Order("name ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list warehouses: %w", err)
	}

	out := make([]*warehouse.Warehouse, 0, len(list))
	for _, m := range list {
		out = append(out, mappers.WarehouseToDomain(m))
	}
	return out, nil
}
