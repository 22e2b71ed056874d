package usecases

import (
	"context"

	"github.com/merojugx/mero/internal/application/ticket/dto"
	"github.com/merojugx/mero/internal/domain/ticket"
	"github.com/merojugx/mero/internal/shared/authorization"
	apperrors "github.com/merojugx/mero/internal/shared/errors"
	"github.com/merojugx/mero/internal/shared/logger"
	"github.com/merojugx/mero/internal/shared/services/markdown"
)

type ListCommentsQuery struct {
	Actor    authorization.Principal
	TicketID string
}

// ListCommentsUseCase returns the comments of a ticket oldest first with
// bodies rendered to sanitized HTML. Internal comments are included for
// system admins only.
type ListCommentsUseCase struct {
	ticketRepo  ticket.Repository
	commentRepo ticket.CommentRepository
	renderer    markdown.Renderer
	logger      logger.Interface
}

func NewListCommentsUseCase(
	ticketRepo ticket.Repository,
	commentRepo ticket.CommentRepository,
	renderer markdown.Renderer,
	logger logger.Interface,
) *ListCommentsUseCase {
	return &ListCommentsUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		renderer:    renderer,
		logger:      logger,
	}
}

func (uc *ListCommentsUseCase) Execute(ctx context.Context, query ListCommentsQuery) ([]*dto.CommentDTO, error) {
	t, err := loadVisibleTicket(ctx, uc.ticketRepo, uc.logger, query.Actor, query.TicketID)
	if err != nil {
		return nil, err
	}

	comments, err := uc.commentRepo.ListByTicket(ctx, t.ID(), isSystemAdmin(query.Actor))
	if err != nil {
		uc.logger.Errorw("failed to list comments", "ticket_id", t.ID(), "error", err)
		return nil, apperrors.NewInternalError("failed to list comments")
	}

	out := make([]*dto.CommentDTO, 0, len(comments))
	for _, c := range comments {
		item := dto.ToCommentDTO(c)
		item.BodyHTML = renderComment(uc.renderer, uc.logger, c)
		out = append(out, item)
	}
	return out, nil
}
