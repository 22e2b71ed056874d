package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/merojugx/mero/internal/domain/upload"
	"github.com/merojugx/mero/internal/infrastructure/persistence/mappers"
	"github.com/merojugx/mero/internal/infrastructure/persistence/models"
	"github.com/merojugx/mero/internal/shared/db"
)

type FileUploadRepository struct {
	db *gorm.DB
}

func NewFileUploadRepository(gdb *gorm.DB) *FileUploadRepository {
	return &FileUploadRepository{db: gdb}
}

func (r *FileUploadRepository) Create(ctx context.Context, f *upload.FileUpload) error {
	if err := db.GetTxFromContext(ctx, r.db).Create(mappers.FileUploadToModel(f)).Error; err != nil {
		return fmt.Errorf("failed to create file upload: %w", err)
	}
	return nil
}

func (r *FileUploadRepository) GetByID(ctx context.Context, uploadID string) (*upload.FileUpload, error) {
	var model models.FileUploadModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id = ?", uploadID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, upload.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get file upload: %w", err)
	}
	return mappers.FileUploadToDomain(&model), nil
}
