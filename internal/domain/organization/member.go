package organization

import "time"

// Member links a user to an organization through one role.
type Member struct {
	id             string
	organizationID string
	userID         string
	roleID         string
	status         string
	createdAt      time.Time
}

func ReconstructMember(id, organizationID, userID, roleID, status string, createdAt time.Time) *Member {
	return &Member{
		id:             id,
		organizationID: organizationID,
		userID:         userID,
		roleID:         roleID,
		status:         status,
		createdAt:      createdAt,
	}
}

func (m *Member) ID() string             { return m.id }
func (m *Member) OrganizationID() string { return m.organizationID }
func (m *Member) UserID() string         { return m.userID }
func (m *Member) RoleID() string         { return m.roleID }
func (m *Member) Status() string         { return m.status }
func (m *Member) CreatedAt() time.Time   { return m.createdAt }

func (m *Member) IsActive() bool {
	return m.status == "active"
}
