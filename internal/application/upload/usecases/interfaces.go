package usecases

import (
	"context"

	"github.com/merojugx/mero/internal/application/upload/dto"
)

type RegisterUploadExecutor interface {
	Execute(ctx context.Context, cmd RegisterUploadCommand) (*dto.FileUploadDTO, error)
}
