package usecases

import (
	"context"

	"github.com/merojugx/mero/internal/application/ticket/dto"
	"github.com/merojugx/mero/internal/domain/ticket"
	"github.com/merojugx/mero/internal/shared/authorization"
	apperrors "github.com/merojugx/mero/internal/shared/errors"
	"github.com/merojugx/mero/internal/shared/logger"
)

type CreateTicketCommand struct {
	Actor       authorization.Principal
	Title       string
	Description string
	Priority    string
}

// CreateTicketUseCase opens a ticket in the organization of the caller's session.
type CreateTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewCreateTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error) {
	if !authorization.PolicyOrganizationMember.Permits(cmd.Actor) {
		return nil, apperrors.NewForbiddenError("tickets can only be opened from an organization session")
	}
	orgID := *cmd.Actor.OrganizationID

	uc.logger.Infow("executing create ticket use case", "organization_id", orgID, "user_id", cmd.Actor.UserID)

	t, err := ticket.NewTicket(orgID, cmd.Actor.UserID, cmd.Title, cmd.Description, ticket.Priority(cmd.Priority))
	if err != nil {
		if vErr := commentValidationError(err); vErr != nil {
			return nil, vErr
		}
		return nil, apperrors.NewValidationError("invalid ticket", err.Error())
	}

	if err := uc.ticketRepo.Create(ctx, t); err != nil {
		uc.logger.Errorw("failed to create ticket", "organization_id", orgID, "error", err)
		return nil, apperrors.NewInternalError("failed to create ticket")
	}

	uc.logger.Infow("ticket created", "ticket_id", t.ID(), "organization_id", orgID)
	return dto.ToTicketDTO(t), nil
}
