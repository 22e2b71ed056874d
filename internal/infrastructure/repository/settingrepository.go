package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/merojugx/mero/internal/domain/setting"
	"github.com/merojugx/mero/internal/infrastructure/persistence/mappers"
	"github.com/merojugx/mero/internal/infrastructure/persistence/models"
	"github.com/merojugx/mero/internal/shared/db"
	apperrors "github.com/merojugx/mero/internal/shared/errors"
	"github.com/merojugx/mero/internal/shared/logger"
)

// "key" is reserved in MySQL, so conditions on it go through gorm's quoting.
var orderByKey = clause.OrderByColumn{Column: clause.Column{Name: "key"}}

// OrganizationSettingRepository implements setting.OrganizationRepository
type OrganizationSettingRepository struct {
	db     *gorm.DB
	logger logger.Interface
	mapper mappers.SettingMapper
}

func NewOrganizationSettingRepository(gdb *gorm.DB, log logger.Interface) *OrganizationSettingRepository {
	return &OrganizationSettingRepository{
		db:     gdb,
		logger: log,
		mapper: mappers.NewSettingMapper(),
	}
}

func (r *OrganizationSettingRepository) Get(ctx context.Context, organizationID, key string) (*setting.OrganizationSetting, error) {
	var model models.OrganizationSettingModel
	err := db.GetTxFromContext(ctx, r.db).
		Where(map[string]any{"organization_id": organizationID, "key": key}).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, setting.ErrSettingNotFound
		}
		return nil, fmt.Errorf("failed to get organization setting: %w", err)
	}
	return r.mapper.OrganizationToDomain(&model), nil
}

func (r *OrganizationSettingRepository) ListByOrganization(ctx context.Context, organizationID string) ([]*setting.OrganizationSetting, error) {
	var list []*models.OrganizationSettingModel
	err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.ByOrganization(organizationID)).
		Order(orderByKey).
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list organization settings: %w", err)
	}

	out := make([]*setting.OrganizationSetting, 0, len(list))
	for _, m := range list {
		out = append(out, r.mapper.OrganizationToDomain(m))
	}
	return out, nil
}

func (r *OrganizationSettingRepository) Create(ctx context.Context, s *setting.OrganizationSetting) error {
	if err := db.GetTxFromContext(ctx, r.db).Create(r.mapper.OrganizationToModel(s)).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return fmt.Errorf("%w: %s", setting.ErrDuplicateKey, s.Key())
		}
		r.logger.Errorw("failed to create organization setting", "organization_id", s.OrganizationID(), "key", s.Key(), "error", err)
		return fmt.Errorf("failed to create organization setting: %w", err)
	}
	return nil
}

func (r *OrganizationSettingRepository) Upsert(ctx context.Context, s *setting.OrganizationSetting) error {
	err := db.GetTxFromContext(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "organization_id"}, {Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(r.mapper.OrganizationToModel(s)).Error
	if err != nil {
		r.logger.Errorw("failed to upsert organization setting", "organization_id", s.OrganizationID(), "key", s.Key(), "error", err)
		return fmt.Errorf("failed to upsert organization setting: %w", err)
	}
	return nil
}

func (r *OrganizationSettingRepository) Delete(ctx context.Context, organizationID, key string) error {
	result := db.GetTxFromContext(ctx, r.db).
		Where(map[string]any{"organization_id": organizationID, "key": key}).
		Delete(&models.OrganizationSettingModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete organization setting: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return setting.ErrSettingNotFound
	}
	return nil
}

// SystemSettingRepository implements setting.SystemRepository
type SystemSettingRepository struct {
	db     *gorm.DB
	logger logger.Interface
	mapper mappers.SettingMapper
}

// NewSystemSettingRepository creates a new SystemSettingRepository
func NewSystemSettingRepository(gdb *gorm.DB, log logger.Interface) *SystemSettingRepository {
	return &SystemSettingRepository{
		db:     gdb,
		logger: log,
		mapper: mappers.NewSettingMapper(),
	}
}

// GetByKey retrieves a setting by key
func (r *SystemSettingRepository) GetByKey(ctx context.Context, key string) (*setting.SystemSetting, error) {
	var model models.SystemSettingModel
	err := db.GetTxFromContext(ctx, r.db).Where(map[string]any{"key": key}).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, setting.ErrSettingNotFound
		}
		r.logger.Errorw("failed to get setting by key", "key", key, "error", err)
		return nil, fmt.Errorf("failed to get setting by key: %w", err)
	}
	return r.mapper.SystemToDomain(&model), nil
}

// List returns settings ordered by category then key. An empty category lists all.
func (r *SystemSettingRepository) List(ctx context.Context, category string) ([]*setting.SystemSetting, error) {
	var list []*models.SystemSettingModel
	q := db.GetTxFromContext(ctx, r.db)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if err := q.Order("category ASC").Order(orderByKey).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list system settings: %w", err)
	}
	return r.mapper.SystemToDomainList(list), nil
}

func (r *SystemSettingRepository) ListPublic(ctx context.Context) ([]*setting.SystemSetting, error) {
	var list []*models.SystemSettingModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("is_public = ?", true).
		Order(orderByKey).
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list public settings: %w", err)
	}
	return r.mapper.SystemToDomainList(list), nil
}

// Upsert creates or updates a setting
func (r *SystemSettingRepository) Upsert(ctx context.Context, s *setting.SystemSetting) error {
	err := db.GetTxFromContext(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "description", "category", "is_public", "updated_by", "updated_at"}),
	}).Create(r.mapper.SystemToModel(s)).Error
	if err != nil {
		r.logger.Errorw("failed to upsert setting", "key", s.Key(), "error", err)
		return fmt.Errorf("failed to upsert setting: %w", err)
	}
	return nil
}

func (r *SystemSettingRepository) Update(ctx context.Context, s *setting.SystemSetting) error {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.SystemSettingModel{}).
		Where(map[string]any{"key": s.Key()}).
		Updates(map[string]any{
			"value":       s.Value(),
			"description": s.Description(),
			"category":    s.Category(),
			"is_public":   s.IsPublic(),
			"updated_by":  s.UpdatedBy(),
			"updated_at":  s.UpdatedAt(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update setting: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return setting.ErrSettingNotFound
	}
	return nil
}

// Delete removes a setting by key
func (r *SystemSettingRepository) Delete(ctx context.Context, key string) error {
	result := db.GetTxFromContext(ctx, r.db).
		Where(map[string]any{"key": key}).
		Delete(&models.SystemSettingModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete setting", "key", key, "error", result.Error)
		return fmt.Errorf("failed to delete setting: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return setting.ErrSettingNotFound
	}
	return nil
}
