package dto

import (
	"github.com/merojugx/mero/internal/domain/organization"
	"github.com/merojugx/mero/internal/domain/user"
)

type UserDTO struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	EmailVerified bool   `json:"email_verified"`
	MFAEnabled    bool   `json:"mfa_enabled"`
}

func ToUserDTO(u *user.User) *UserDTO {
	if u == nil {
		return nil
	}
	return &UserDTO{
		ID:            u.ID(),
		Email:         u.Email(),
		FirstName:     u.FirstName(),
		LastName:      u.LastName(),
		EmailVerified: u.EmailVerified(),
		MFAEnabled:    u.MFAEnabled(),
	}
}

type OrganizationDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func ToOrganizationDTO(o *organization.Organization) *OrganizationDTO {
	if o == nil {
		return nil
	}
	return &OrganizationDTO{
		ID:   o.ID(),
		Name: o.Name(),
		Slug: o.Slug(),
	}
}

type RegisterOrganizationResponse struct {
	Organization *OrganizationDTO `json:"organization"`
	Owner        *UserDTO         `json:"owner"`
}

// LoginResponse is returned by the organization login. The session is bound
// to Organization.
type LoginResponse struct {
	User         *UserDTO         `json:"user"`
	Organization *OrganizationDTO `json:"organization"`
	SessionID    string           `json:"session_id"`
	AccessToken  string           `json:"access_token"`
	RefreshToken string           `json:"refresh_token"`
	ExpiresIn    int64            `json:"expires_in"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}
