package upload

import (
	"strings"
	"time"

	"github.com/merojugx/mero/internal/shared/biztime"
	"github.com/merojugx/mero/internal/shared/id"
)

// MaxFileSize is the largest upload accepted, 25 MiB.
const MaxFileSize int64 = 25 << 20

type FileUpload struct {
	id             string
	uploadedBy     string
	organizationID *string
	name           string
	mimeType       string
	size           int64
	thumbnailURL   *string
	createdAt      time.Time
}

func NewFileUpload(uploadedBy string, organizationID *string, name, mimeType string, size int64, thumbnailURL *string) (*FileUpload, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if !strings.Contains(mimeType, "/") {
		return nil, ErrInvalidMimeType
	}
	if size <= 0 {
		return nil, ErrEmptyFile
	}
	if size > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	return &FileUpload{
		id:             id.New(),
		uploadedBy:     uploadedBy,
		organizationID: organizationID,
		name:           name,
		mimeType:       strings.ToLower(mimeType),
		size:           size,
		thumbnailURL:   thumbnailURL,
		createdAt:      biztime.NowUTC(),
	}, nil
}

func ReconstructFileUpload(id, uploadedBy string, organizationID *string, name, mimeType string, size int64, thumbnailURL *string, createdAt time.Time) *FileUpload {
	return &FileUpload{
		id:             id,
		uploadedBy:     uploadedBy,
		organizationID: organizationID,
		name:           name,
		mimeType:       mimeType,
		size:           size,
		thumbnailURL:   thumbnailURL,
		createdAt:      createdAt,
	}
}

func (f *FileUpload) ID() string              { return f.id }
func (f *FileUpload) UploadedBy() string      { return f.uploadedBy }
func (f *FileUpload) OrganizationID() *string { return f.organizationID }
func (f *FileUpload) Name() string            { return f.name }
func (f *FileUpload) MimeType() string        { return f.mimeType }
func (f *FileUpload) Size() int64             { return f.size }
func (f *FileUpload) ThumbnailURL() *string   { return f.thumbnailURL }
func (f *FileUpload) CreatedAt() time.Time    { return f.createdAt }

func (f *FileUpload) IsImage() bool {
	return strings.HasPrefix(f.mimeType, "image/")
}
