package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/merojugx/mero/internal/domain/ticket"
	"github.com/merojugx/mero/internal/infrastructure/persistence/mappers"
	"github.com/merojugx/mero/internal/infrastructure/persistence/models"
	"github.com/merojugx/mero/internal/shared/db"
	"github.com/merojugx/mero/internal/shared/logger"
)

// TicketRepository implements ticket.Repository
type TicketRepository struct {
	db     *gorm.DB
	logger logger.Interface
	mapper mappers.TicketMapper
}

func NewTicketRepository(gdb *gorm.DB, log logger.Interface) *TicketRepository {
	return &TicketRepository{
		db:     gdb,
		logger: log,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	if err := db.GetTxFromContext(ctx, r.db).Create(r.mapper.ToModel(t)).Error; err != nil {
		r.logger.Errorw("failed to create ticket", "organization_id", t.OrganizationID(), "error", err)
		return fmt.Errorf("failed to create ticket: %w", err)
	}
	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, ticketID string) (*ticket.Ticket, error) {
	var model models.TicketModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id = ?", ticketID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ticket.ErrTicketNotFound
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *TicketRepository) List(ctx context.Context, filter ticket.ListFilter) ([]*ticket.Ticket, int64, error) {
	q := db.GetTxFromContext(ctx, r.db).Model(&models.TicketModel{}).Session(&gorm.Session{})
	if filter.OrganizationID != "" {
		q = q.Scopes(db.ByOrganization(filter.OrganizationID))
	}
	if filter.Status != "" {
		q = q.Where("status = ?", string(filter.Status))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	var list []*models.TicketModel
	if err := q.Order("created_at DESC").Scopes(db.Paginate(filter.Page, filter.PageSize)).Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	out := make([]*ticket.Ticket, 0, len(list))
	for _, m := range list {
		out = append(out, r.mapper.ToDomain(m))
	}
	return out, total, nil
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.TicketModel{}).
		Where("id = ?", t.ID()).
		Updates(map[string]any{
			"title":       t.Title(),
			"description": t.Description(),
			"status":      string(t.Status()),
			"priority":    string(t.Priority()),
			"updated_at":  t.UpdatedAt(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ticket.ErrTicketNotFound
	}
	return nil
}

// Delete removes the ticket. ticket_comments rows are removed by the
// ON DELETE CASCADE foreign key.
func (r *TicketRepository) Delete(ctx context.Context, ticketID string) error {
	result := db.GetTxFromContext(ctx, r.db).Where("id = ?", ticketID).Delete(&models.TicketModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete ticket", "ticket_id", ticketID, "error", result.Error)
		return fmt.Errorf("failed to delete ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ticket.ErrTicketNotFound
	}
	return nil
}

func (r *TicketRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.TicketModel{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count tickets: %w", err)
	}
	return n, nil
}

// CommentRepository implements ticket.CommentRepository
type CommentRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewCommentRepository(gdb *gorm.DB) *CommentRepository {
	return &CommentRepository{db: gdb, mapper: mappers.NewTicketMapper()}
}

func (r *CommentRepository) Create(ctx context.Context, c *ticket.Comment) error {
	model, err := r.mapper.CommentToModel(c)
	if err != nil {
		return err
	}
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

func (r *CommentRepository) GetByID(ctx context.Context, commentID string) (*ticket.Comment, error) {
	var model models.TicketCommentModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id = ?", commentID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ticket.ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}
	return r.mapper.CommentToDomain(&model)
}

func (r *CommentRepository) ListByTicket(ctx context.Context, ticketID string, includeInternal bool) ([]*ticket.Comment, error) {
	q := db.GetTxFromContext(ctx, r.db).Where("ticket_id = ?", ticketID)
	if !includeInternal {
		q = q.Where("is_internal = ?", false)
	}

	var list []*models.TicketCommentModel
	if err := q.Order("created_at ASC").Order("id ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	out := make([]*ticket.Comment, 0, len(list))
	for _, m := range list {
		c, err := r.mapper.CommentToDomain(m)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *CommentRepository) Delete(ctx context.Context, commentID string) error {
	result := db.GetTxFromContext(ctx, r.db).Where("id = ?", commentID).Delete(&models.TicketCommentModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete comment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ticket.ErrCommentNotFound
	}
	return nil
}
