package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/merojugx/mero/internal/domain/role"
	"github.com/merojugx/mero/internal/infrastructure/persistence/mappers"
	"github.com/merojugx/mero/internal/infrastructure/persistence/models"
	"github.com/merojugx/mero/internal/shared/db"
	apperrors "github.com/merojugx/mero/internal/shared/errors"
)

type RoleRepository struct {
	db     *gorm.DB
	mapper mappers.RoleMapper
}

func NewRoleRepository(gdb *gorm.DB) *RoleRepository {
	return &RoleRepository{db: gdb, mapper: mappers.NewRoleMapper()}
}

func (r *RoleRepository) Create(ctx context.Context, rl *role.Role) error {
	if err := db.GetTxFromContext(ctx, r.db).Create(r.mapper.ToModel(rl)).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return fmt.Errorf("%w: %s", role.ErrSlugTaken, rl.Slug())
		}
		return fmt.Errorf("failed to create role: %w", err)
	}
	return nil
}

func (r *RoleRepository) GetByID(ctx context.Context, roleID string) (*role.Role, error) {
	var model models.RoleModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id = ?", roleID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, role.ErrRoleNotFound
		}
		return nil, fmt.Errorf("failed to get role: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *RoleRepository) GetInOrganization(ctx context.Context, organizationID, roleID string) (*role.Role, error) {
	var model models.RoleModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("id = ? AND organization_id = ?", roleID, organizationID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, role.ErrRoleNotFound
		}
		return nil, fmt.Errorf("failed to get role: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *RoleRepository) ListByOrganization(ctx context.Context, organizationID string) ([]*role.Role, error) {
	var list []*models.RoleModel
	err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.ByOrganization(organizationID)).
		Order("name ASC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}
	return r.mapper.ToDomainList(list), nil
}

// Update persists name, description and hierarchy level. A nil level is
// written as NULL.
func (r *RoleRepository) Update(ctx context.Context, rl *role.Role) error {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.RoleModel{}).
		Where("id = ?", rl.ID()).
		Updates(map[string]any{
			"name":            rl.Name(),
			"description":     rl.Description(),
			"hierarchy_level": rl.StoredHierarchyLevel(),
			"updated_at":      rl.UpdatedAt(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update role: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return role.ErrRoleNotFound
	}
	return nil
}
