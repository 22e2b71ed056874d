package models

import (
	"time"

	"gorm.io/datatypes"
)

type TicketModel struct {
	ID             string    `gorm:"primaryKey;type:varchar(36)"`
	OrganizationID string    `gorm:"type:varchar(36);not null"`
	CreatedBy      string    `gorm:"type:varchar(36);not null"`
	Title          string    `gorm:"type:varchar(255);not null"`
	Description    string    `gorm:"type:text"`
	Status         string    `gorm:"type:varchar(20);not null"`
	Priority       string    `gorm:"type:varchar(20);not null"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`

	// Constraints live in the migrations; the model carries no associations.
}

func (TicketModel) TableName() string {
	return "tickets"
}

type TicketCommentModel struct {
	ID             string         `gorm:"primaryKey;type:varchar(36)"`
	TicketID       string         `gorm:"type:varchar(36);not null"`
	AuthorID       string         `gorm:"type:varchar(36);not null"`
	Body           string         `gorm:"type:text;not null"`
	AttachmentURLs datatypes.JSON `gorm:"column:attachment_urls"`
	IsInternal     bool           `gorm:"not null;default:false"`
	CreatedAt      time.Time      `gorm:"not null"`
	UpdatedAt      time.Time      `gorm:"not null"`
}

func (TicketCommentModel) TableName() string {
	return "ticket_comments"
}
