package ticket

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/merojugx/mero/internal/shared/biztime"
	"github.com/merojugx/mero/internal/shared/id"
)

const (
	MaxCommentLength  = 10000
	MaxAttachmentURLs = 10
)

// Comment is a message on a ticket. Internal comments are only visible to
// system admins.
type Comment struct {
	id             string
	ticketID       string
	authorID       string
	body           string
	attachmentURLs []string
	isInternal     bool
	createdAt      time.Time
	updatedAt      time.Time
}

func NewComment(ticketID, authorID, body string, attachmentURLs []string, isInternal bool) (*Comment, error) {
	if ticketID == "" || authorID == "" {
		return nil, fmt.Errorf("ticket id and author id are required")
	}
	if err := validateBody(body); err != nil {
		return nil, err
	}
	if err := validateAttachments(attachmentURLs); err != nil {
		return nil, err
	}

	now := biztime.NowUTC()
	return &Comment{
		id:             id.New(),
		ticketID:       ticketID,
		authorID:       authorID,
		body:           body,
		attachmentURLs: append([]string(nil), attachmentURLs...),
		isInternal:     isInternal,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// ReconstructComment rebuilds a comment from persistence
func ReconstructComment(
	id, ticketID, authorID, body string,
	attachmentURLs []string,
	isInternal bool,
	createdAt, updatedAt time.Time,
) *Comment {
	return &Comment{
		id:             id,
		ticketID:       ticketID,
		authorID:       authorID,
		body:           body,
		attachmentURLs: attachmentURLs,
		isInternal:     isInternal,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (c *Comment) ID() string           { return c.id }
func (c *Comment) TicketID() string     { return c.ticketID }
func (c *Comment) AuthorID() string     { return c.authorID }
func (c *Comment) Body() string         { return c.body }
func (c *Comment) IsInternal() bool     { return c.isInternal }
func (c *Comment) CreatedAt() time.Time { return c.createdAt }
func (c *Comment) UpdatedAt() time.Time { return c.updatedAt }

// AttachmentURLs returns a copy of the attachment list in insertion order.
func (c *Comment) AttachmentURLs() []string {
	return append([]string(nil), c.attachmentURLs...)
}

func (c *Comment) IsEdited() bool {
	return c.updatedAt.After(c.createdAt)
}

func (c *Comment) Edit(body string) error {
	if err := validateBody(body); err != nil {
		return err
	}
	c.body = body
	c.updatedAt = biztime.NowUTC()
	return nil
}

// CanBeDeletedBy reports whether the user may remove the comment.
func (c *Comment) CanBeDeletedBy(userID string, isSystemAdmin bool) bool {
	return isSystemAdmin || (userID != "" && userID == c.authorID)
}

func validateBody(body string) error {
	if strings.TrimSpace(body) == "" {
		return ErrEmptyComment
	}
	if len([]rune(body)) > MaxCommentLength {
		return ErrCommentTooLong
	}
	return nil
}

func validateAttachments(urls []string) error {
	if len(urls) > MaxAttachmentURLs {
		return ErrTooManyAttachments
	}
	for _, raw := range urls {
		u, err := url.Parse(raw)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("%w: %q", ErrInvalidAttachmentURL, raw)
		}
	}
	return nil
}
