package usecases

import (
	"context"
	"fmt"

	"github.com/merojugx/mero/internal/application/ticket/dto"
	"github.com/merojugx/mero/internal/domain/ticket"
	"github.com/merojugx/mero/internal/shared/authorization"
	"github.com/merojugx/mero/internal/shared/db"
	apperrors "github.com/merojugx/mero/internal/shared/errors"
	"github.com/merojugx/mero/internal/shared/logger"
	"github.com/merojugx/mero/internal/shared/services/markdown"
)

type AddCommentCommand struct {
	Actor          authorization.Principal
	TicketID       string
	Body           string
	AttachmentURLs []string
	IsInternal     bool
}

type AddCommentUseCase struct {
	ticketRepo  ticket.Repository
	commentRepo ticket.CommentRepository
	txMgr       db.Transactor
	renderer    markdown.Renderer
	logger      logger.Interface
}

func NewAddCommentUseCase(
	ticketRepo ticket.Repository,
	commentRepo ticket.CommentRepository,
	txMgr db.Transactor,
	renderer markdown.Renderer,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		txMgr:       txMgr,
		renderer:    renderer,
		logger:      logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*dto.CommentDTO, error) {
	uc.logger.Infow("executing add comment use case", "ticket_id", cmd.TicketID, "user_id", cmd.Actor.UserID)

	t, err := loadVisibleTicket(ctx, uc.ticketRepo, uc.logger, cmd.Actor, cmd.TicketID)
	if err != nil {
		return nil, err
	}
	if t.IsClosed() {
		return nil, apperrors.NewConflictError("ticket is closed")
	}
	if cmd.IsInternal && !isSystemAdmin(cmd.Actor) {
		uc.logger.Warnw("user cannot create internal comment", "user_id", cmd.Actor.UserID)
		return nil, apperrors.NewForbiddenError("only system admins can add internal comments")
	}

	comment, err := ticket.NewComment(t.ID(), cmd.Actor.UserID, cmd.Body, cmd.AttachmentURLs, cmd.IsInternal)
	if err != nil {
		if vErr := commentValidationError(err); vErr != nil {
			return nil, vErr
		}
		return nil, apperrors.NewValidationError("invalid comment", err.Error())
	}

	// The comment and the ticket's activity timestamp are written together.
	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.commentRepo.Create(txCtx, comment); err != nil {
			return fmt.Errorf("failed to save comment: %w", err)
		}
		t.Touch()
		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return fmt.Errorf("failed to update ticket: %w", err)
		}
		return nil
	})
	if txErr != nil {
		uc.logger.Errorw("failed to add comment", "ticket_id", t.ID(), "error", txErr)
		return nil, apperrors.NewInternalError("failed to add comment")
	}

	result := dto.ToCommentDTO(comment)
	result.BodyHTML = renderComment(uc.renderer, uc.logger, comment)

	uc.logger.Infow("comment added successfully", "comment_id", comment.ID(), "ticket_id", t.ID())
	return result, nil
}

// renderComment returns an empty string when rendering fails; the raw body
// is still returned to the client.
func renderComment(r markdown.Renderer, log logger.Interface, c *ticket.Comment) string {
	out, err := r.RenderComment(c.Body(), markdown.CommentOptions{
		Internal:      c.IsInternal(),
		Edited:        c.IsEdited(),
		HasAttachment: len(c.AttachmentURLs()) > 0,
	})
	if err != nil {
		log.Warnw("failed to render comment body", "comment_id", c.ID(), "error", err)
		return ""
	}
	return out
}
