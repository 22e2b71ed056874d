package dto

import (
	"time"

	"github.com/merojugx/mero/internal/domain/user"
)

// SystemAdminDTO is the console view of a system admin account.
type SystemAdminDTO struct {
	ID              string     `json:"id"`
	Email           string     `json:"email"`
	FullName        string     `json:"full_name"`
	IsSystemAdmin   bool       `json:"is_system_admin"`
	SystemAdminRole string     `json:"system_admin_role,omitempty"`
	MFAEnabled      bool       `json:"mfa_enabled"`
	LastLoginAt     *time.Time `json:"last_login_at,omitempty"`
}

func ToSystemAdminDTO(u *user.User) *SystemAdminDTO {
	if u == nil {
		return nil
	}
	out := &SystemAdminDTO{
		ID:            u.ID(),
		Email:         u.Email(),
		FullName:      u.FullName(),
		IsSystemAdmin: u.IsSystemAdmin(),
		MFAEnabled:    u.MFAEnabled(),
		LastLoginAt:   u.LastLoginAt(),
	}
	if r := u.SystemAdminRole(); r != nil {
		out.SystemAdminRole = r.String()
	}
	return out
}

type AdminLoginResponse struct {
	User         *SystemAdminDTO `json:"user"`
	SessionID    string          `json:"session_id"`
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	ExpiresIn    int64           `json:"expires_in"`
}

type PlatformStatsResponse struct {
	Organizations  int64     `json:"organizations"`
	Users          int64     `json:"users"`
	SystemAdmins   int64     `json:"system_admins"`
	Apps           int64     `json:"apps"`
	Tickets        int64     `json:"tickets"`
	ActiveSessions int64     `json:"active_sessions"`
	GeneratedAt    time.Time `json:"generated_at"`
}
