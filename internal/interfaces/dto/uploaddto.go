package dto

// FileUploadMetadata describes an already stored file. Size arrives as a
// string from multipart clients.
type FileUploadMetadata struct {
	Name         string  `json:"name" validate:"required,max=255"`
	MimeType     string  `json:"mime_type" validate:"required,max=127"`
	Size         string  `json:"size" validate:"required,numeric_string"`
	ThumbnailURL *string `json:"thumbnail_url,omitempty" validate:"omitempty,url"`
}
