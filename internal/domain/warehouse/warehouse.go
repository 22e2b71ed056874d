package warehouse

import (
	"strings"
	"time"

	"github.com/merojugx/mero/internal/shared/biztime"
	"github.com/merojugx/mero/internal/shared/id"
)

type Type string

const (
	TypeMain    Type = "main"
	TypeBranch  Type = "branch"
	TypeTransit Type = "transit"
	TypeVirtual Type = "virtual"
)

func (t Type) IsValid() bool {
	switch t {
	case TypeMain, TypeBranch, TypeTransit, TypeVirtual:
		return true
	}
	return false
}

type Warehouse struct {
	id             string
	organizationID string
	name           string
	code           string
	address        string
	warehouseType  Type
	isActive       bool
	createdAt      time.Time
	updatedAt      time.Time
}

// NewWarehouse creates an active warehouse. An empty type means main.
func NewWarehouse(organizationID, name, code, address string, t Type) (*Warehouse, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if t == "" {
		t = TypeMain
	}
	if !t.IsValid() {
		return nil, ErrInvalidType
	}

	now := biztime.NowUTC()
	return &Warehouse{
		id:             id.New(),
		organizationID: organizationID,
		name:           name,
		code:           code,
		address:        address,
		warehouseType:  t,
		isActive:       true,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// ReconstructWarehouse rebuilds a warehouse from persistence
func ReconstructWarehouse(
	id, organizationID, name, code, address string,
	t Type,
	isActive bool,
	createdAt, updatedAt time.Time,
) *Warehouse {
	return &Warehouse{
		id:             id,
		organizationID: organizationID,
		name:           name,
		code:           code,
		address:        address,
		warehouseType:  t,
		isActive:       isActive,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (w *Warehouse) ID() string             { return w.id }
func (w *Warehouse) OrganizationID() string { return w.organizationID }
func (w *Warehouse) Name() string           { return w.name }
func (w *Warehouse) Code() string           { return w.code }
func (w *Warehouse) Address() string        { return w.address }
func (w *Warehouse) Type() Type             { return w.warehouseType }
func (w *Warehouse) IsActive() bool         { return w.isActive }
func (w *Warehouse) CreatedAt() time.Time   { return w.createdAt }
func (w *Warehouse) UpdatedAt() time.Time   { return w.updatedAt }
