package dto

import (
	"time"

	"github.com/merojugx/mero/internal/domain/upload"
)

type FileUploadDTO struct {
	ID             string    `json:"id"`
	OrganizationID *string   `json:"organization_id,omitempty"`
	UploadedBy     string    `json:"uploaded_by"`
	Name           string    `json:"name"`
	MimeType       string    `json:"mime_type"`
	Size           int64     `json:"size"`
	ThumbnailURL   *string   `json:"thumbnail_url,omitempty"`
	IsImage        bool      `json:"is_image"`
	CreatedAt      time.Time `json:"created_at"`
}

func ToFileUploadDTO(f *upload.FileUpload) *FileUploadDTO {
	if f == nil {
		return nil
	}
	return &FileUploadDTO{
		ID:             f.ID(),
		OrganizationID: f.OrganizationID(),
		UploadedBy:     f.UploadedBy(),
		Name:           f.Name(),
		MimeType:       f.MimeType(),
		Size:           f.Size(),
		ThumbnailURL:   f.ThumbnailURL(),
		IsImage:        f.IsImage(),
		CreatedAt:      f.CreatedAt(),
	}
}
