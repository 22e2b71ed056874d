package ticket

import "errors"

var (
	ErrTicketNotFound  = errors.New("ticket not found")
	ErrInvalidTitle    = errors.New("ticket title must be 1-255 characters")
	ErrInvalidPriority = errors.New("invalid ticket priority")

	ErrCommentNotFound      = errors.New("comment not found")
	ErrEmptyComment         = errors.New("comment body is required")
	ErrCommentTooLong       = errors.New("comment body exceeds 10000 characters")
	ErrTooManyAttachments   = errors.New("a comment accepts at most 10 attachments")
	ErrInvalidAttachmentURL = errors.New("attachment must be an http or https url")
	ErrTicketClosed         = errors.New("ticket is closed")
)
