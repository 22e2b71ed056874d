package usecases

import (
	"context"
	"errors"

	"github.com/merojugx/mero/internal/domain/ticket"
	"github.com/merojugx/mero/internal/shared/authorization"
	apperrors "github.com/merojugx/mero/internal/shared/errors"
	"github.com/merojugx/mero/internal/shared/logger"
)

func isSystemAdmin(p authorization.Principal) bool {
	return authorization.PolicySystemAdmin.Permits(p)
}

// loadVisibleTicket returns the ticket when the principal belongs to its
// organization or is a system admin. Invisible tickets are reported as
// missing.
func loadVisibleTicket(ctx context.Context, repo ticket.Repository, log logger.Interface, p authorization.Principal, ticketID string) (*ticket.Ticket, error) {
	t, err := repo.GetByID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, ticket.ErrTicketNotFound) {
			return nil, apperrors.NewNotFoundError("ticket not found")
		}
		log.Errorw("failed to load ticket", "ticket_id", ticketID, "error", err)
		return nil, apperrors.NewInternalError("failed to load ticket")
	}
	if !isSystemAdmin(p) && !p.InOrganization(t.OrganizationID()) {
		log.Warnw("ticket not visible to principal", "ticket_id", ticketID, "user_id", p.UserID)
		return nil, apperrors.NewNotFoundError("ticket not found")
	}
	return t, nil
}

// commentValidationError maps comment and ticket rule violations to
// client errors.
func commentValidationError(err error) error {
	switch {
	case errors.Is(err, ticket.ErrEmptyComment),
		errors.Is(err, ticket.ErrCommentTooLong),
		errors.Is(err, ticket.ErrTooManyAttachments),
		errors.Is(err, ticket.ErrInvalidAttachmentURL),
		errors.Is(err, ticket.ErrInvalidTitle),
		errors.Is(err, ticket.ErrInvalidPriority):
		return apperrors.NewValidationError(err.Error())
	default:
		return nil
	}
}
