// Package authorization declares the access policies handlers are tagged with
// and the principal they are evaluated against.
package authorization

// Policy is a static access requirement attached to a route.
type Policy int

const (
	// PolicyAuthenticated admits any principal.
	PolicyAuthenticated Policy = iota + 1
	// PolicySystemAdmin admits principals holding the system admin flag.
	PolicySystemAdmin
	// PolicyOrganizationMember admits principals bound to an organization.
	PolicyOrganizationMember
)

func (p Policy) String() string {
	switch p {
	case PolicyAuthenticated:
		return "authenticated"
	case PolicySystemAdmin:
		return "system_admin"
	case PolicyOrganizationMember:
		return "organization_member"
	default:
		return "unknown"
	}
}

// Principal is the authenticated caller of a request.
type Principal struct {
	UserID          string
	SessionID       string
	OrganizationID  *string
	IsSystemAdmin   bool
	SystemAdminRole SystemAdminRole
}

// Permits reports whether p admits the principal. An unknown policy denies.
func (p Policy) Permits(pr Principal) bool {
	if pr.UserID == "" {
		return false
	}
	switch p {
	case PolicyAuthenticated:
		return true
	case PolicySystemAdmin:
		return pr.IsSystemAdmin && pr.SystemAdminRole.IsValid()
	case PolicyOrganizationMember:
		return pr.OrganizationID != nil && *pr.OrganizationID != ""
	default:
		return false
	}
}

// InOrganization reports whether the principal's session is bound to orgID.
func (pr Principal) InOrganization(orgID string) bool {
	return pr.OrganizationID != nil && *pr.OrganizationID == orgID
}
