package usecases

import (
	"context"
	"errors"

	"github.com/merojugx/mero/internal/domain/ticket"
	"github.com/merojugx/mero/internal/shared/authorization"
	apperrors "github.com/merojugx/mero/internal/shared/errors"
	"github.com/merojugx/mero/internal/shared/logger"
)

type DeleteCommentCommand struct {
	Actor     authorization.Principal
	TicketID  string
	CommentID string
}

type DeleteCommentUseCase struct {
	ticketRepo  ticket.Repository
	commentRepo ticket.CommentRepository
	logger      logger.Interface
}

func NewDeleteCommentUseCase(ticketRepo ticket.Repository, commentRepo ticket.CommentRepository, logger logger.Interface) *DeleteCommentUseCase {
	return &DeleteCommentUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		logger:      logger,
	}
}

func (uc *DeleteCommentUseCase) Execute(ctx context.Context, cmd DeleteCommentCommand) error {
	t, err := loadVisibleTicket(ctx, uc.ticketRepo, uc.logger, cmd.Actor, cmd.TicketID)
	if err != nil {
		return err
	}

	c, err := uc.commentRepo.GetByID(ctx, cmd.CommentID)
	if err != nil {
		if errors.Is(err, ticket.ErrCommentNotFound) {
			return apperrors.NewNotFoundError("comment not found")
		}
		uc.logger.Errorw("failed to load comment", "comment_id", cmd.CommentID, "error", err)
		return apperrors.NewInternalError("failed to load comment")
	}
	if c.TicketID() != t.ID() || (c.IsInternal() && !isSystemAdmin(cmd.Actor)) {
		return apperrors.NewNotFoundError("comment not found")
	}
	if !c.CanBeDeletedBy(cmd.Actor.UserID, isSystemAdmin(cmd.Actor)) {
		return apperrors.NewForbiddenError("only the author or a system admin can delete this comment")
	}

	if err := uc.commentRepo.Delete(ctx, c.ID()); err != nil {
		if errors.Is(err, ticket.ErrCommentNotFound) {
			return apperrors.NewNotFoundError("comment not found")
		}
		uc.logger.Errorw("failed to delete comment", "comment_id", c.ID(), "error", err)
		return apperrors.NewInternalError("failed to delete comment")
	}

	uc.logger.Infow("comment deleted", "comment_id", c.ID(), "ticket_id", t.ID(), "user_id", cmd.Actor.UserID)
	return nil
}
