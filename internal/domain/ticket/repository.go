package ticket

import "context"

type ListFilter struct {
	OrganizationID string
	Status         Status
	Page           int
	PageSize       int
}

type Repository interface {
	Create(ctx context.Context, t *Ticket) error
	GetByID(ctx context.Context, id string) (*Ticket, error)
	List(ctx context.Context, filter ListFilter) ([]*Ticket, int64, error)
	Update(ctx context.Context, t *Ticket) error
	// Delete removes the ticket; its comments go with it.
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type CommentRepository interface {
	Create(ctx context.Context, c *Comment) error
	GetByID(ctx context.Context, id string) (*Comment, error)
	// ListByTicket returns comments oldest first.
	ListByTicket(ctx context.Context, ticketID string, includeInternal bool) ([]*Comment, error)
	Delete(ctx context.Context, id string) error
}
