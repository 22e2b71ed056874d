package dto

import (
	"time"

	"github.com/merojugx/mero/internal/domain/warehouse"
)

type WarehouseDTO struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	Name           string    `json:"name"`
	Code           string    `json:"code,omitempty"`
	Address        string    `json:"address,omitempty"`
	Type           string    `json:"type"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}

func ToWarehouseDTOs(list []*warehouse.Warehouse) []*WarehouseDTO {
	out := make([]*WarehouseDTO, 0, len(list))
	for _, w := range list {
		out = append(out, &WarehouseDTO{
			ID:             w.ID(),
			OrganizationID: w.OrganizationID(),
			Name:           w.Name(),
			Code:           w.Code(),
			Address:        w.Address(),
			Type:           string(w.Type()),
			IsActive:       w.IsActive(),
			CreatedAt:      w.CreatedAt(),
		})
	}
	return out
}
