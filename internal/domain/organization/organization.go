package organization

import (
	"fmt"
	"strings"
	"time"

	"github.com/merojugx/mero/internal/shared/biztime"
	"github.com/merojugx/mero/internal/shared/id"
	"github.com/merojugx/mero/internal/shared/slug"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusSuspended Status = "suspended"
)

type Organization struct {
	id        string
	name      string
	slug      string
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

// NewOrganization creates an active organization. An empty slug is derived
// from the name.
func NewOrganization(name, s string) (*Organization, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if s == "" {
		s = slug.Suggest(name)
	}
	if !slug.IsValid(s) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSlug, s)
	}

	now := biztime.NowUTC()
	return &Organization{
		id:        id.New(),
		name:      name,
		slug:      s,
		status:    StatusActive,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructOrganization rebuilds an organization from persistence
func ReconstructOrganization(id, name, s string, status Status, createdAt, updatedAt time.Time) *Organization {
	return &Organization{
		id:        id,
		name:      name,
		slug:      s,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (o *Organization) ID() string           { return o.id }
func (o *Organization) Name() string         { return o.name }
func (o *Organization) Slug() string         { return o.slug }
func (o *Organization) Status() Status       { return o.status }
func (o *Organization) CreatedAt() time.Time { return o.createdAt }
func (o *Organization) UpdatedAt() time.Time { return o.updatedAt }

func (o *Organization) IsActive() bool {
	return o.status == StatusActive
}

// ChangeSlug validates and applies a new slug. It reports whether anything changed.
func (o *Organization) ChangeSlug(s string) (bool, error) {
	if !slug.IsValid(s) {
		return false, fmt.Errorf("%w: %q", ErrInvalidSlug, s)
	}
	if s == o.slug {
		return false, nil
	}
	o.slug = s
	o.updatedAt = biztime.NowUTC()
	return true, nil
}
