package ticket

import (
	"strings"
	"time"

	"github.com/merojugx/mero/internal/shared/biztime"
	"github.com/merojugx/mero/internal/shared/id"
)

type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusResolved   Status = "resolved"
	StatusClosed     Status = "closed"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusResolved, StatusClosed:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

const MaxTitleLength = 255

type Ticket struct {
	id             string
	organizationID string
	createdBy      string
	title          string
	description    string
	status         Status
	priority       Priority
	createdAt      time.Time
	updatedAt      time.Time
}

// NewTicket opens a ticket. An empty priority defaults to medium.
func NewTicket(organizationID, createdBy, title, description string, priority Priority) (*Ticket, error) {
	title = strings.TrimSpace(title)
	if title == "" || len(title) > MaxTitleLength {
		return nil, ErrInvalidTitle
	}
	if priority == "" {
		priority = PriorityMedium
	}
	if !priority.IsValid() {
		return nil, ErrInvalidPriority
	}

	now := biztime.NowUTC()
	return &Ticket{
		id:             id.New(),
		organizationID: organizationID,
		createdBy:      createdBy,
		title:          title,
		description:    description,
		status:         StatusOpen,
		priority:       priority,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// ReconstructTicket rebuilds a ticket from persistence
func ReconstructTicket(
	id, organizationID, createdBy, title, description string,
	status Status,
	priority Priority,
	createdAt, updatedAt time.Time,
) *Ticket {
	return &Ticket{
		id:             id,
		organizationID: organizationID,
		createdBy:      createdBy,
		title:          title,
		description:    description,
		status:         status,
		priority:       priority,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (t *Ticket) ID() string             { return t.id }
func (t *Ticket) OrganizationID() string { return t.organizationID }
func (t *Ticket) CreatedBy() string      { return t.createdBy }
func (t *Ticket) Title() string          { return t.title }
func (t *Ticket) Description() string    { return t.description }
func (t *Ticket) Status() Status         { return t.status }
func (t *Ticket) Priority() Priority     { return t.priority }
func (t *Ticket) CreatedAt() time.Time   { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time   { return t.updatedAt }

func (t *Ticket) IsClosed() bool {
	return t.status == StatusClosed
}

// Touch records activity on the ticket, such as a new comment.
func (t *Ticket) Touch() {
	t.updatedAt = biztime.NowUTC()
}
