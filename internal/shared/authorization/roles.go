package authorization

type SystemAdminRole string

const (
	SystemAdminRoleSuperAdmin SystemAdminRole = "super_admin"
	SystemAdminRoleAdmin      SystemAdminRole = "admin"
	SystemAdminRoleSupport    SystemAdminRole = "support"
	SystemAdminRoleViewer     SystemAdminRole = "viewer"
)

var systemAdminRoles = []SystemAdminRole{
	SystemAdminRoleSuperAdmin,
	SystemAdminRoleAdmin,
	SystemAdminRoleSupport,
	SystemAdminRoleViewer,
}

func SystemAdminRoles() []SystemAdminRole {
	out := make([]SystemAdminRole, len(systemAdminRoles))
	copy(out, systemAdminRoles)
	return out
}

func (r SystemAdminRole) String() string {
	return string(r)
}

func (r SystemAdminRole) IsValid() bool {
	for _, v := range systemAdminRoles {
		if r == v {
			return true
		}
	}
	return false
}

func ParseSystemAdminRole(s string) (SystemAdminRole, bool) {
	r := SystemAdminRole(s)
	return r, r.IsValid()
}

// Permission resources and actions checked through casbin.
const (
	ResourceSystemSettings = "system.settings"
	ResourceSystemUsers    = "system.users"
	ResourceSystemStats    = "system.stats"
	ResourceTickets        = "system.tickets"

	ActionView   = "view"
	ActionEdit   = "edit"
	ActionDelete = "delete"
)
