package migrations

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ticketV1 struct {
	ID             string         `gorm:"primaryKey;type:varchar(36)"`
	OrganizationID string         `gorm:"type:varchar(36);not null;index:idx_tickets_organization_id"`
	Organization   organizationV1 `gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	CreatedBy      string         `gorm:"type:varchar(36);not null"`
	Creator        userV1         `gorm:"foreignKey:CreatedBy;constraint:OnDelete:RESTRICT"`
	Title          string         `gorm:"type:varchar(255);not null"`
	Description    string         `gorm:"type:text"`
	Status         string         `gorm:"type:varchar(20);not null;default:open"`
	Priority       string         `gorm:"type:varchar(20);not null;default:medium"`
	CreatedAt      time.Time      `gorm:"not null"`
	UpdatedAt      time.Time      `gorm:"not null"`
}

func (ticketV1) TableName() string { return "tickets" }

type ticketCommentV1 struct {
	ID             string         `gorm:"primaryKey;type:varchar(36)"`
	TicketID       string         `gorm:"type:varchar(36);not null;index:idx_ticket_comments_ticket_id"`
	Ticket         ticketV1       `gorm:"foreignKey:TicketID;constraint:OnDelete:CASCADE"`
	AuthorID       string         `gorm:"type:varchar(36);not null;index:idx_ticket_comments_author_id"`
	Author         userV1         `gorm:"foreignKey:AuthorID;constraint:OnDelete:RESTRICT"`
	Body           string         `gorm:"type:text;not null"`
	AttachmentURLs datatypes.JSON `gorm:"column:attachment_urls"`
	IsInternal     bool           `gorm:"not null;default:false"`
	CreatedAt      time.Time      `gorm:"not null"`
	UpdatedAt      time.Time      `gorm:"not null"`
}

func (ticketCommentV1) TableName() string { return "ticket_comments" }

func upTicketsAndComments(tx *gorm.DB) error {
	return tx.Migrator().CreateTable(&ticketV1{}, &ticketCommentV1{})
}

func downTicketsAndComments(tx *gorm.DB) error {
	return dropTables(tx, "ticket_comments", "tickets")
}
