package usecases

import (
	"context"

	"github.com/merojugx/mero/internal/application/ticket/dto"
	"github.com/merojugx/mero/internal/domain/ticket"
	"github.com/merojugx/mero/internal/shared/authorization"
	apperrors "github.com/merojugx/mero/internal/shared/errors"
	"github.com/merojugx/mero/internal/shared/logger"
	"github.com/merojugx/mero/internal/shared/utils"
)

type ListTicketsQuery struct {
	Actor authorization.Principal
	// OrganizationID is honoured for system admins only; everyone else sees
	// the tickets of their session's organization.
	OrganizationID string
	Status         string
	Page           int
	PageSize       int
}

type ListTicketsResult struct {
	Tickets  []*dto.TicketDTO
	Total    int64
	Page     int
	PageSize int
}

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	orgID := query.OrganizationID
	if !isSystemAdmin(query.Actor) {
		if !authorization.PolicyOrganizationMember.Permits(query.Actor) {
			return nil, apperrors.NewForbiddenError("not a member of any organization")
		}
		orgID = *query.Actor.OrganizationID
	}

	status := ticket.Status(query.Status)
	if status != "" && !status.IsValid() {
		return nil, apperrors.NewValidationError("invalid status filter", query.Status)
	}

	p := utils.ValidatePagination(query.Page, query.PageSize)
	list, total, err := uc.ticketRepo.List(ctx, ticket.ListFilter{
		OrganizationID: orgID,
		Status:         status,
		Page:           p.Page,
		PageSize:       p.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "organization_id", orgID, "error", err)
		return nil, apperrors.NewInternalError("failed to list tickets")
	}

	return &ListTicketsResult{
		Tickets:  dto.ToTicketDTOs(list),
		Total:    total,
		Page:     p.Page,
		PageSize: p.PageSize,
	}, nil
}
