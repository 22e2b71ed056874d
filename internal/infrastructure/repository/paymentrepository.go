package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/merojugx/mero/internal/domain/payment"
	"github.com/merojugx/mero/internal/infrastructure/persistence/mappers"
	"github.com/merojugx/mero/internal/infrastructure/persistence/models"
	"github.com/merojugx/mero/internal/shared/db"
	"github.com/merojugx/mero/internal/shared/logger"
)

type PaymentRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewPaymentRepository(gdb *gorm.DB, log logger.Interface) *PaymentRepository {
	return &PaymentRepository{db: gdb, logger: log}
}

func (r *PaymentRepository) Create(ctx context.Context, p *payment.Payment) error {
	if err := db.GetTxFromContext(ctx, r.db).Create(mappers.PaymentToModel(p)).Error; err != nil {
		r.logger.Errorw("failed to create payment", "organization_id", p.OrganizationID(), "error", err)
		return fmt.Errorf("failed to create payment: %w", err)
	}
	return nil
}

func (r *PaymentRepository) GetByID(ctx context.Context, paymentID string) (*payment.Payment, error) {
	return r.getBy(ctx, "id = ?", paymentID)
}

func (r *PaymentRepository) GetByGatewaySessionID(ctx context.Context, sessionID string) (*payment.Payment, error) {
	return r.getBy(ctx, "gateway_session_id = ?", sessionID)
}

func (r *PaymentRepository) getBy(ctx context.Context, query string, arg any) (*payment.Payment, error) {
	var model models.PaymentModel
	if err := db.GetTxFromContext(ctx, r.db).Where(query, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, payment.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	return mappers.PaymentToDomain(&model), nil
}

func (r *PaymentRepository) Update(ctx context.Context, p *payment.Payment) error {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.PaymentModel{}).
		Where("id = ?", p.ID()).
		Updates(map[string]any{
			"status":             string(p.Status()),
			"gateway_session_id": p.GatewaySessionID(),
			"completed_at":       p.CompletedAt(),
			"updated_at":         p.UpdatedAt(),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update payment", "payment_id", p.ID(), "error", result.Error)
		return fmt.Errorf("failed to update payment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return payment.ErrPaymentNotFound
	}
	return nil
}
