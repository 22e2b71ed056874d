package role

import (
	"fmt"
	"time"

	"github.com/merojugx/mero/internal/shared/biztime"
	"github.com/merojugx/mero/internal/shared/id"
	"github.com/merojugx/mero/internal/shared/slug"
)

// Hierarchy levels. A lower level carries more authority.
const (
	LevelOwner     = 1
	LevelAdmin     = 2
	MinCustomLevel = 3
)

const (
	SlugOwner = "owner"
	SlugAdmin = "admin"
)

type Role struct {
	id                  string
	organizationID      string
	name                string
	slug                string
	description         string
	isSystemRole        bool
	isOrganizationOwner bool
	hierarchyLevel      *int
	createdAt           time.Time
	updatedAt           time.Time
}

// NewCustomRole creates an organization defined role at the lowest custom level.
func NewCustomRole(organizationID, name, s, description string) (*Role, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	if s == "" {
		s = slug.Suggest(name)
	}
	if s == SlugOwner || s == SlugAdmin {
		return nil, fmt.Errorf("%w: %q", ErrReservedSlug, s)
	}

	now := biztime.NowUTC()
	return &Role{
		id:             id.New(),
		organizationID: organizationID,
		name:           name,
		slug:           s,
		description:    description,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// NewOwnerRole creates the built-in owner role of a new organization.
func NewOwnerRole(organizationID string) *Role {
	return newBuiltInRole(organizationID, "Organization Owner", SlugOwner, "Full access to the organization", true)
}

// NewAdminRole creates the built-in admin role of a new organization.
func NewAdminRole(organizationID string) *Role {
	return newBuiltInRole(organizationID, "Admin", SlugAdmin, "Manages members, roles and settings", false)
}

func newBuiltInRole(organizationID, name, s, description string, owner bool) *Role {
	now := biztime.NowUTC()
	return &Role{
		id:                  id.New(),
		organizationID:      organizationID,
		name:                name,
		slug:                s,
		description:         description,
		isSystemRole:        true,
		isOrganizationOwner: owner,
		createdAt:           now,
		updatedAt:           now,
	}
}

// ReconstructRole rebuilds a role from persistence
func ReconstructRole(
	id, organizationID, name, s, description string,
	isSystemRole, isOrganizationOwner bool,
	hierarchyLevel *int,
	createdAt, updatedAt time.Time,
) *Role {
	return &Role{
		id:                  id,
		organizationID:      organizationID,
		name:                name,
		slug:                s,
		description:         description,
		isSystemRole:        isSystemRole,
		isOrganizationOwner: isOrganizationOwner,
		hierarchyLevel:      hierarchyLevel,
		createdAt:           createdAt,
		updatedAt:           updatedAt,
	}
}

func (r *Role) ID() string                { return r.id }
func (r *Role) OrganizationID() string    { return r.organizationID }
func (r *Role) Name() string              { return r.name }
func (r *Role) Slug() string              { return r.slug }
func (r *Role) Description() string       { return r.description }
func (r *Role) IsSystemRole() bool        { return r.isSystemRole }
func (r *Role) IsOrganizationOwner() bool { return r.isOrganizationOwner }
func (r *Role) CreatedAt() time.Time      { return r.createdAt }
func (r *Role) UpdatedAt() time.Time      { return r.updatedAt }

// StoredHierarchyLevel is the raw column value, nil when unset.
func (r *Role) StoredHierarchyLevel() *int { return r.hierarchyLevel }

func (r *Role) IsOwner() bool {
	return r.isOrganizationOwner || (r.isSystemRole && r.slug == SlugOwner)
}

func (r *Role) IsAdmin() bool {
	return !r.IsOwner() && r.isSystemRole && r.slug == SlugAdmin
}

func (r *Role) IsBuiltIn() bool {
	return r.IsOwner() || r.IsAdmin()
}

// HierarchyLevel returns the effective level. Stored values that would
// intrude on the reserved levels are clamped to MinCustomLevel.
func (r *Role) HierarchyLevel() int {
	switch {
	case r.IsOwner():
		return LevelOwner
	case r.IsAdmin():
		return LevelAdmin
	case r.hierarchyLevel == nil || *r.hierarchyLevel < MinCustomLevel:
		return MinCustomLevel
	default:
		return *r.hierarchyLevel
	}
}

// SetHierarchyLevel changes the level of a custom role. nil resets it.
func (r *Role) SetHierarchyLevel(level *int) error {
	if r.IsBuiltIn() {
		return ErrBuiltInRole
	}
	if level != nil && *level < MinCustomLevel {
		return fmt.Errorf("%w: got %d", ErrReservedLevel, *level)
	}
	if level != nil {
		v := *level
		level = &v
	}
	r.hierarchyLevel = level
	r.updatedAt = biztime.NowUTC()
	return nil
}

// Outranks reports whether r carries strictly more authority than other.
func (r *Role) Outranks(other *Role) bool {
	return r.HierarchyLevel() < other.HierarchyLevel()
}

// CanManageHierarchy reports whether holders of r may change role levels.
func (r *Role) CanManageHierarchy() bool {
	return r.HierarchyLevel() <= LevelAdmin
}
