package usecases

import (
	"context"
	"errors"

	"github.com/merojugx/mero/internal/domain/ticket"
	"github.com/merojugx/mero/internal/shared/authorization"
	apperrors "github.com/merojugx/mero/internal/shared/errors"
	"github.com/merojugx/mero/internal/shared/logger"
)

type DeleteTicketCommand struct {
	Actor    authorization.Principal
	TicketID string
}

// DeleteTicketUseCase removes a ticket together with its comments. The
// creator and system admins may delete.
type DeleteTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewDeleteTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) error {
	uc.logger.Infow("executing delete ticket use case", "ticket_id", cmd.TicketID, "user_id", cmd.Actor.UserID)

	t, err := loadVisibleTicket(ctx, uc.ticketRepo, uc.logger, cmd.Actor, cmd.TicketID)
	if err != nil {
		return err
	}
	if t.CreatedBy() != cmd.Actor.UserID && !isSystemAdmin(cmd.Actor) {
		return apperrors.NewForbiddenError("only the ticket creator or a system admin can delete this ticket")
	}

	if err := uc.ticketRepo.Delete(ctx, t.ID()); err != nil {
		if errors.Is(err, ticket.ErrTicketNotFound) {
			return apperrors.NewNotFoundError("ticket not found")
		}
		uc.logger.Errorw("failed to delete ticket", "ticket_id", t.ID(), "error", err)
		return apperrors.NewInternalError("failed to delete ticket")
	}

	uc.logger.Infow("ticket deleted", "ticket_id", t.ID())
	return nil
}
