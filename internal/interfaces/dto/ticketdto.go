package dto

type CreateTicketRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description" validate:"max=10000"`
	Priority    string `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
}

type AddCommentRequest struct {
	Body           string   `json:"body" validate:"required,max=10000"`
	AttachmentURLs []string `json:"attachment_urls" validate:"omitempty,max=10,dive,url"`
	IsInternal     bool     `json:"is_internal"`
}
