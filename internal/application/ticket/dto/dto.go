package dto

import (
	"time"

	"github.com/merojugx/mero/internal/domain/ticket"
)

type TicketDTO struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	CreatedBy      string    `json:"created_by"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Status         string    `json:"status"`
	Priority       string    `json:"priority"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type CommentDTO struct {
	ID             string    `json:"id"`
	TicketID       string    `json:"ticket_id"`
	AuthorID       string    `json:"author_id"`
	Body           string    `json:"body"`
	BodyHTML       string    `json:"body_html,omitempty"`
	AttachmentURLs []string  `json:"attachment_urls"`
	IsInternal     bool      `json:"is_internal"`
	IsEdited       bool      `json:"is_edited"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func ToTicketDTO(t *ticket.Ticket) *TicketDTO {
	if t == nil {
		return nil
	}
	return &TicketDTO{
		ID:             t.ID(),
		OrganizationID: t.OrganizationID(),
		CreatedBy:      t.CreatedBy(),
		Title:          t.Title(),
		Description:    t.Description(),
		Status:         string(t.Status()),
		Priority:       string(t.Priority()),
		CreatedAt:      t.CreatedAt(),
		UpdatedAt:      t.UpdatedAt(),
	}
}

func ToTicketDTOs(list []*ticket.Ticket) []*TicketDTO {
	out := make([]*TicketDTO, 0, len(list))
	for _, t := range list {
		out = append(out, ToTicketDTO(t))
	}
	return out
}

// ToCommentDTO leaves BodyHTML empty; callers fill it after rendering.
func ToCommentDTO(c *ticket.Comment) *CommentDTO {
	if c == nil {
		return nil
	}
	urls := c.AttachmentURLs()
	if urls == nil {
		urls = []string{}
	}
	return &CommentDTO{
		ID:             c.ID(),
		TicketID:       c.TicketID(),
		AuthorID:       c.AuthorID(),
		Body:           c.Body(),
		AttachmentURLs: urls,
		IsInternal:     c.IsInternal(),
		IsEdited:       c.IsEdited(),
		CreatedAt:      c.CreatedAt(),
		UpdatedAt:      c.UpdatedAt(),
	}
}
