package usecases

import (
	"context"
	"sort"
	"time"

	"github.com/merojugx/mero/internal/domain/ticket"
	"github.com/merojugx/mero/internal/shared/authorization"
)

// memoryTickets is an in-memory ticket.Repository. UpdateFunc, when set,
// replaces the default update.
type memoryTickets struct {
	items      map[string]*ticket.Ticket
	UpdateFunc func(ctx context.Context, t *ticket.Ticket) error
	deleted    []string
}

func newMemoryTickets(list ...*ticket.Ticket) *memoryTickets {
	m := &memoryTickets{items: map[string]*ticket.Ticket{}}
	for _, t := range list {
		m.items[t.ID()] = t
	}
	return m
}

func (m *memoryTickets) Create(ctx context.Context, t *ticket.Ticket) error {
	m.items[t.ID()] = t
	return nil
}

func (m *memoryTickets) GetByID(ctx context.Context, id string) (*ticket.Ticket, error) {
	t, ok := m.items[id]
	if !ok {
		return nil, ticket.ErrTicketNotFound
	}
	return t, nil
}

func (m *memoryTickets) List(ctx context.Context, filter ticket.ListFilter) ([]*ticket.Ticket, int64, error) {
	var out []*ticket.Ticket
	for _, t := range m.items {
		if filter.OrganizationID != "" && t.OrganizationID() != filter.OrganizationID {
			continue
		}
		if filter.Status != "" && t.Status() != filter.Status {
			continue
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out, int64(len(out)), nil
}

func (m *memoryTickets) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	m.items[t.ID()] = t
	return nil
}

func (m *memoryTickets) Delete(ctx context.Context, id string) error {
	if _, ok := m.items[id]; !ok {
		return ticket.ErrTicketNotFound
	}
	delete(m.items, id)
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *memoryTickets) Count(ctx context.Context) (int64, error) {
	return int64(len(m.items)), nil
}

type memoryComments struct {
	items []*ticket.Comment
}

func (m *memoryComments) Create(ctx context.Context, c *ticket.Comment) error {
	m.items = append(m.items, c)
	return nil
}

func (m *memoryComments) GetByID(ctx context.Context, id string) (*ticket.Comment, error) {
	for _, c := range m.items {
		if c.ID() == id {
			return c, nil
		}
	}
	return nil, ticket.ErrCommentNotFound
}

func (m *memoryComments) ListByTicket(ctx context.Context, ticketID string, includeInternal bool) ([]*ticket.Comment, error) {
	var out []*ticket.Comment
	for _, c := range m.items {
		if c.TicketID() != ticketID || (c.IsInternal() && !includeInternal) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (m *memoryComments) Delete(ctx context.Context, id string) error {
	for i, c := range m.items {
		if c.ID() == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return ticket.ErrCommentNotFound
}

// passthroughTx runs fn directly and returns its error.
type passthroughTx struct {
	calls int
}

func (p *passthroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	p.calls++
	return fn(ctx)
}

func openTicket(id, orgID, createdBy string) *ticket.Ticket {
	created := time.Now().Add(-time.Hour)
	return ticket.ReconstructTicket(id, orgID, createdBy, "Printer on fire", "", ticket.StatusOpen, ticket.PriorityHigh, created, created)
}

func closedTicket(id, orgID, createdBy string) *ticket.Ticket {
	created := time.Now().Add(-time.Hour)
	return ticket.ReconstructTicket(id, orgID, createdBy, "Old issue", "", ticket.StatusClosed, ticket.PriorityLow, created, created)
}

func memberOf(orgID, userID string) authorization.Principal {
	return authorization.Principal{UserID: userID, SessionID: "sess-" + userID, OrganizationID: &orgID}
}

func systemAdmin() authorization.Principal {
	return authorization.Principal{
		UserID:          "admin-1",
		SessionID:       "sess-admin",
		IsSystemAdmin:   true,
		SystemAdminRole: authorization.SystemAdminRoleSupport,
	}
}
