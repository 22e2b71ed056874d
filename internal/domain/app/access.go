package app

import (
	"time"

	"github.com/merojugx/mero/internal/shared/biztime"
	"github.com/merojugx/mero/internal/shared/id"
)

// Access grants one organization member a role inside an app. There is at
// most one grant per (organization, user, app).
type Access struct {
	id             string
	organizationID string
	userID         string
	appID          string
	roleID         string
	grantedBy      *string
	createdAt      time.Time
	updatedAt      time.Time
}

func NewAccess(organizationID, userID, appID, roleID, grantedBy string) *Access {
	now := biztime.NowUTC()
	a := &Access{
		id:             id.New(),
		organizationID: organizationID,
		userID:         userID,
		appID:          appID,
		roleID:         roleID,
		createdAt:      now,
		updatedAt:      now,
	}
	if grantedBy != "" {
		a.grantedBy = &grantedBy
	}
	return a
}

func ReconstructAccess(id, organizationID, userID, appID, roleID string, grantedBy *string, createdAt, updatedAt time.Time) *Access {
	return &Access{
		id:             id,
		organizationID: organizationID,
		userID:         userID,
		appID:          appID,
		roleID:         roleID,
		grantedBy:      grantedBy,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (a *Access) ID() string             { return a.id }
func (a *Access) OrganizationID() string { return a.organizationID }
func (a *Access) UserID() string         { return a.userID }
func (a *Access) AppID() string          { return a.appID }
func (a *Access) RoleID() string         { return a.roleID }
func (a *Access) GrantedBy() *string     { return a.grantedBy }
func (a *Access) CreatedAt() time.Time   { return a.createdAt }
func (a *Access) UpdatedAt() time.Time   { return a.updatedAt }
