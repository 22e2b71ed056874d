package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/merojugx/mero/internal/domain/app"
	"github.com/merojugx/mero/internal/infrastructure/persistence/mappers"
	"github.com/merojugx/mero/internal/infrastructure/persistence/models"
	"github.com/merojugx/mero/internal/shared/db"
)

type AppRepository struct {
	db *gorm.DB
}

func NewAppRepository(gdb *gorm.DB) *AppRepository {
	return &AppRepository{db: gdb}
}

func (r *AppRepository) GetByID(ctx context.Context, appID string) (*app.App, error) {
	return r.getBy(ctx, "id = ?", appID)
}

func (r *AppRepository) GetBySlug(ctx context.Context, slug string) (*app.App, error) {
	return r.getBy(ctx, "slug = ?", slug)
}

func (r *AppRepository) getBy(ctx context.Context, query string, arg any) (*app.App, error) {
	var model models.AppModel
	if err := db.GetTxFromContext(ctx, r.db).Where(query, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, app.ErrAppNotFound
		}
		return nil, fmt.Errorf("failed to get app: %w", err)
	}
	return mappers.AppToDomain(&model), nil
}

func (r *AppRepository) ListActive(ctx context.Context) ([]*app.App, error) {
	var list []*models.AppModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("status = ?", string(app.StatusActive)).
		Order("name ASC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list apps: %w", err)
	}

	out := make([]*app.App, 0, len(list))
	for _, m := range list {
		out = append(out, mappers.AppToDomain(m))
	}
	return out, nil
}

func (r *AppRepository) Update(ctx context.Context, a *app.App) error {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.AppModel{}).
		Where("id = ?", a.ID()).
		Updates(map[string]any{
			"name":           a.Name(),
			"description":    a.Description(),
			"price":          a.Price(),
			"billing_period": string(a.BillingPeriod()),
			"status":         string(a.Status()),
			"updated_at":     a.UpdatedAt(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update app: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return app.ErrAppNotFound
	}
	return nil
}

func (r *AppRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.AppModel{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count apps: %w", err)
	}
	return n, nil
}

type AppAccessRepository struct {
	db *gorm.DB
}

func NewAppAccessRepository(gdb *gorm.DB) *AppAccessRepository {
	return &AppAccessRepository{db: gdb}
}

// Upsert keeps the original row id and created_at when the grant exists.
func (r *AppAccessRepository) Upsert(ctx context.Context, a *app.Access) (*app.Access, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "organization_id"}, {Name: "user_id"}, {Name: "app_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"role_id", "granted_by", "updated_at"}),
	}).Create(mappers.AppAccessToModel(a)).Error
	if err != nil {
		return nil, fmt.Errorf("failed to upsert app access: %w", err)
	}
	return r.Get(ctx, a.OrganizationID(), a.UserID(), a.AppID())
}

func (r *AppAccessRepository) Get(ctx context.Context, organizationID, userID, appID string) (*app.Access, error) {
	var model models.OrganizationAppAccessModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("organization_id = ? AND user_id = ? AND app_id = ?", organizationID, userID, appID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, app.ErrAppNotFound
		}
		return nil, fmt.Errorf("failed to get app access: %w", err)
	}
	return mappers.AppAccessToDomain(&model), nil
}
