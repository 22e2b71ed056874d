package usecases

import (
	"context"

	"github.com/merojugx/mero/internal/application/app/dto"
	"github.com/merojugx/mero/internal/domain/app"
	apperrors "github.com/merojugx/mero/internal/shared/errors"
	"github.com/merojugx/mero/internal/shared/logger"
)

// ListAppsUseCase returns the active marketplace catalog.
type ListAppsUseCase struct {
	appRepo app.Repository
	logger  logger.Interface
}

func NewListAppsUseCase(appRepo app.Repository, logger logger.Interface) *ListAppsUseCase {
	return &ListAppsUseCase{appRepo: appRepo, logger: logger}
}

func (uc *ListAppsUseCase) Execute(ctx context.Context) ([]*dto.AppDTO, error) {
	list, err := uc.appRepo.ListActive(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list apps", "error", err)
		return nil, apperrors.NewInternalError("failed to list apps")
	}
	return dto.ToAppDTOs(list), nil
}
