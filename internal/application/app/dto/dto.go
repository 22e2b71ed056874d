package dto

import (
	"time"

	"github.com/merojugx/mero/internal/domain/app"
)

type AppDTO struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Slug          string `json:"slug"`
	Description   string `json:"description,omitempty"`
	Price         string `json:"price"`
	BillingPeriod string `json:"billing_period"`
	Status        string `json:"status"`
}

type AppAccessDTO struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	UserID         string    `json:"user_id"`
	AppID          string    `json:"app_id"`
	RoleID         string    `json:"role_id"`
	GrantedBy      *string   `json:"granted_by,omitempty"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ToAppDTO renders the price with two decimals.
func ToAppDTO(a *app.App) *AppDTO {
	if a == nil {
		return nil
	}
	return &AppDTO{
		ID:            a.ID(),
		Name:          a.Name(),
		Slug:          a.Slug(),
		Description:   a.Description(),
		Price:         a.Price().StringFixed(2),
		BillingPeriod: string(a.BillingPeriod()),
		Status:        string(a.Status()),
	}
}

func ToAppDTOs(list []*app.App) []*AppDTO {
	out := make([]*AppDTO, 0, len(list))
	for _, a := range list {
		out = append(out, ToAppDTO(a))
	}
	return out
}

func ToAppAccessDTO(a *app.Access) *AppAccessDTO {
	if a == nil {
		return nil
	}
	return &AppAccessDTO{
		ID:             a.ID(),
		OrganizationID: a.OrganizationID(),
		UserID:         a.UserID(),
		AppID:          a.AppID(),
		RoleID:         a.RoleID(),
		GrantedBy:      a.GrantedBy(),
		UpdatedAt:      a.UpdatedAt(),
	}
}
