package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/merojugx/mero/internal/domain/ticket"
	"github.com/merojugx/mero/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(m *models.TicketModel) *ticket.Ticket

	// CommentToModel encodes attachment urls as a JSON array; none is stored as NULL.
	CommentToModel(c *ticket.Comment) (*models.TicketCommentModel, error)
	CommentToDomain(m *models.TicketCommentModel) (*ticket.Comment, error)
}

// TicketMapperImpl is the concrete implementation of TicketMapper.
type TicketMapperImpl struct{}

// NewTicketMapper creates a new TicketMapper.
func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
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

func (TicketMapperImpl) ToDomain(m *models.TicketModel) *ticket.Ticket {
	if m == nil {
		return nil
	}
	return ticket.ReconstructTicket(
		m.ID,
		m.OrganizationID,
		m.CreatedBy,
		m.Title,
		m.Description,
		ticket.Status(m.Status),
		ticket.Priority(m.Priority),
		m.CreatedAt,
		m.UpdatedAt,
	)
}

func (TicketMapperImpl) CommentToModel(c *ticket.Comment) (*models.TicketCommentModel, error) {
	m := &models.TicketCommentModel{
		ID:         c.ID(),
		TicketID:   c.TicketID(),
		AuthorID:   c.AuthorID(),
		Body:       c.Body(),
		IsInternal: c.IsInternal(),
		CreatedAt:  c.CreatedAt(),
		UpdatedAt:  c.UpdatedAt(),
	}

	if urls := c.AttachmentURLs(); len(urls) > 0 {
		raw, err := json.Marshal(urls)
		if err != nil {
			return nil, fmt.Errorf("failed to encode attachment urls: %w", err)
		}
		m.AttachmentURLs = datatypes.JSON(raw)
	}

	return m, nil
}

func (TicketMapperImpl) CommentToDomain(m *models.TicketCommentModel) (*ticket.Comment, error) {
	if m == nil {
		return nil, nil
	}

	var urls []string
	if len(m.AttachmentURLs) > 0 && string(m.AttachmentURLs) != "null" {
		if err := json.Unmarshal(m.AttachmentURLs, &urls); err != nil {
			return nil, fmt.Errorf("failed to decode attachment urls of comment %s: %w", m.ID, err)
		}
	}

	return ticket.ReconstructComment(
		m.ID,
		m.TicketID,
		m.AuthorID,
		m.Body,
		urls,
		m.IsInternal,
		m.CreatedAt,
		m.UpdatedAt,
	), nil
}
