package upload

import "context"

type Repository interface {
	Create(ctx context.Context, f *FileUpload) error
	GetByID(ctx context.Context, id string) (*FileUpload, error)
}
