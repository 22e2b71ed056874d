package warehouse

import "context"

type Repository interface {
	Create(ctx context.Context, w *Warehouse) error
	GetByID(ctx context.Context, id string) (*Warehouse, error)
	// ListByOrganization returns warehouses ordered by name. An empty type lists all.
	ListByOrganization(ctx context.Context, organizationID string, t Type) ([]*Warehouse, error)
}
