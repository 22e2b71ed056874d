package usecases

import (
	"context"

	"github.com/merojugx/mero/internal/application/setting/dto"
)

type ListOrganizationSettingsExecutor interface {
	Execute(ctx context.Context, query ListOrganizationSettingsQuery) ([]dto.SettingDTO, error)
}

type UpsertOrganizationSettingExecutor interface {
	Execute(ctx context.Context, cmd UpsertOrganizationSettingCommand) (*UpsertOrganizationSettingResult, error)
}

type DeleteOrganizationSettingExecutor interface {
	Execute(ctx context.Context, cmd DeleteOrganizationSettingCommand) error
}

type ListSystemSettingsExecutor interface {
	Execute(ctx context.Context, category string) ([]dto.SystemSettingDTO, error)
}

type GetSystemSettingExecutor interface {
	Execute(ctx context.Context, key string) (*dto.SystemSettingDTO, error)
}

type UpsertSystemSettingExecutor interface {
	Execute(ctx context.Context, cmd UpsertSystemSettingCommand) (*dto.SystemSettingDTO, error)
}

type UpdateSystemSettingExecutor interface {
	Execute(ctx context.Context, cmd UpdateSystemSettingCommand) (*dto.SystemSettingDTO, error)
}

type DeleteSystemSettingExecutor interface {
	Execute(ctx context.Context, key string) error
}

type ListPublicSettingsExecutor interface {
	Execute(ctx context.Context) (map[string]string, error)
}
