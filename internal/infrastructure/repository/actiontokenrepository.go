package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/merojugx/mero/internal/domain/user"
	"github.com/merojugx/mero/internal/infrastructure/persistence/mappers"
	"github.com/merojugx/mero/internal/infrastructure/persistence/models"
	"github.com/merojugx/mero/internal/shared/db"
)

type ActionTokenRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
}

func NewActionTokenRepository(gdb *gorm.DB) *ActionTokenRepository {
	return &ActionTokenRepository{
		db:     gdb,
		mapper: mappers.NewUserMapper(),
	}
}

func (r *ActionTokenRepository) Create(ctx context.Context, t *user.ActionToken) error {
	if err := db.GetTxFromContext(ctx, r.db).Create(r.mapper.ActionTokenToModel(t)).Error; err != nil {
		return fmt.Errorf("failed to create action token: %w", err)
	}
	return nil
}

func (r *ActionTokenRepository) GetByHash(ctx context.Context, purpose user.TokenPurpose, tokenHash string) (*user.ActionToken, error) {
	var model models.ActionTokenModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("token_hash = ? AND purpose = ?", tokenHash, string(purpose)).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrActionTokenNotFound
		}
		return nil, fmt.Errorf("failed to get action token: %w", err)
	}
	return r.mapper.ActionTokenToDomain(&model), nil
}

// Update persists the used marker, the only mutable field.
func (r *ActionTokenRepository) Update(ctx context.Context, t *user.ActionToken) error {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.ActionTokenModel{}).
		Where("id = ?", t.ID()).
		Update("used_at", t.UsedAt())
	if result.Error != nil {
		return fmt.Errorf("failed to update action token: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return user.ErrActionTokenNotFound
	}
	return nil
}

func (r *ActionTokenRepository) InvalidateForUser(ctx context.Context, userID string, purpose user.TokenPurpose, now time.Time) error {
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.ActionTokenModel{}).
		Where("user_id = ? AND purpose = ? AND used_at IS NULL", userID, string(purpose)).
		Update("used_at", now).Error
	if err != nil {
		return fmt.Errorf("failed to invalidate action tokens: %w", err)
	}
	return nil
}
