package usecases

import (
	"context"

	"github.com/merojugx/mero/internal/application/ticket/dto"
	"github.com/merojugx/mero/internal/domain/ticket"
	"github.com/merojugx/mero/internal/shared/authorization"
	"github.com/merojugx/mero/internal/shared/logger"
)

type GetTicketQuery struct {
	Actor    authorization.Principal
	TicketID string
}

type GetTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewGetTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *GetTicketUseCase {
	return &GetTicketUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	t, err := loadVisibleTicket(ctx, uc.ticketRepo, uc.logger, query.Actor, query.TicketID)
	if err != nil {
		return nil, err
	}
	return dto.ToTicketDTO(t), nil
}
