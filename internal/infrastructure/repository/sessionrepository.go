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

type SessionRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
}

func NewSessionRepository(gdb *gorm.DB) *SessionRepository {
	return &SessionRepository{
		db:     gdb,
		mapper: mappers.NewUserMapper(),
	}
}

func (r *SessionRepository) Create(ctx context.Context, s *user.Session) error {
	if err := db.GetTxFromContext(ctx, r.db).Create(r.mapper.SessionToModel(s)).Error; err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

func (r *SessionRepository) GetByID(ctx context.Context, sessionID string) (*user.Session, error) {
	var model models.SessionModel
	err := db.GetTxFromContext(ctx, r.db).Where("id = ?", sessionID).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session by ID: %w", err)
	}
	return r.mapper.SessionToDomain(&model), nil
}

func (r *SessionRepository) Update(ctx context.Context, s *user.Session) error {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.SessionModel{}).
		Where("id = ?", s.ID()).
		Updates(map[string]any{
			"refresh_token_hash": s.RefreshTokenHash(),
			"expires_at":         s.ExpiresAt(),
			"revoked_at":         s.RevokedAt(),
			"updated_at":         s.UpdatedAt(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update session: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return user.ErrSessionNotFound
	}
	return nil
}

func (r *SessionRepository) CountActive(ctx context.Context, now time.Time) (int64, error) {
	var n int64
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.SessionModel{}).
		Where("revoked_at IS NULL AND expires_at > ?", now).
		Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count active sessions: %w", err)
	}
	return n, nil
}

func (r *SessionRepository) RevokeAllForUser(ctx context.Context, userID string, now time.Time) (int64, error) {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.SessionModel{}).
		Where("user_id = ? AND revoked_at IS NULL AND expires_at > ?", userID, now).
		Updates(map[string]any{
			"revoked_at": now,
			"updated_at": now,
		})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to revoke sessions of user: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *SessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := db.GetTxFromContext(ctx, r.db).
		Where("expires_at <= ?", now).
		Delete(&models.SessionModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", result.Error)
	}
	return result.RowsAffected, nil
}
