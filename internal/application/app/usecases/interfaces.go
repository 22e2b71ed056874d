package usecases

import (
	"context"

	"github.com/merojugx/mero/internal/application/app/dto"
)

type UpdateAppAccessExecutor interface {
	Execute(ctx context.Context, cmd UpdateAppAccessCommand) (*dto.AppAccessDTO, error)
}

type ListAppsExecutor interface {
	Execute(ctx context.Context) ([]*dto.AppDTO, error)
}
