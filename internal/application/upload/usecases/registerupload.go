package usecases

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/merojugx/mero/internal/application/upload/dto"
	"github.com/merojugx/mero/internal/domain/upload"
	"github.com/merojugx/mero/internal/shared/authorization"
	apperrors "github.com/merojugx/mero/internal/shared/errors"
	"github.com/merojugx/mero/internal/shared/logger"
)

type RegisterUploadCommand struct {
	Actor    authorization.Principal
	Name     string
	MimeType string
	// Size is the byte count as a decimal string.
	Size         string
	ThumbnailURL *string
}

// RegisterUploadUseCase records metadata for a file the client has uploaded.
// The file is attributed to the organization of the caller's session, if any.
type RegisterUploadUseCase struct {
	uploadRepo upload.Repository
	logger     logger.Interface
}

func NewRegisterUploadUseCase(uploadRepo upload.Repository, logger logger.Interface) *RegisterUploadUseCase {
	return &RegisterUploadUseCase{uploadRepo: uploadRepo, logger: logger}
}

func (uc *RegisterUploadUseCase) Execute(ctx context.Context, cmd RegisterUploadCommand) (*dto.FileUploadDTO, error) {
	size, err := strconv.ParseInt(strings.TrimSpace(cmd.Size), 10, 64)
	if err != nil || size < 0 {
		return nil, apperrors.NewValidationError("size must be a non-negative integer", cmd.Size)
	}

	var thumbnail *string
	if cmd.ThumbnailURL != nil && strings.TrimSpace(*cmd.ThumbnailURL) != "" {
		thumbnail = cmd.ThumbnailURL
	}

	f, err := upload.NewFileUpload(cmd.Actor.UserID, cmd.Actor.OrganizationID, cmd.Name, cmd.MimeType, size, thumbnail)
	if err != nil {
		switch {
		case errors.Is(err, upload.ErrFileTooLarge),
			errors.Is(err, upload.ErrEmptyFile),
			errors.Is(err, upload.ErrNameRequired),
			errors.Is(err, upload.ErrInvalidMimeType):
			return nil, apperrors.NewValidationError(err.Error())
		default:
			return nil, apperrors.NewInternalError("failed to register upload")
		}
	}

	if err := uc.uploadRepo.Create(ctx, f); err != nil {
		uc.logger.Errorw("failed to save file upload", "user_id", cmd.Actor.UserID, "error", err)
		return nil, apperrors.NewInternalError("failed to register upload")
	}

	uc.logger.Infow("file upload registered", "upload_id", f.ID(), "size", f.Size(), "mime_type", f.MimeType())
	return dto.ToFileUploadDTO(f), nil
}
