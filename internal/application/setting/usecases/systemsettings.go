package usecases

import (
	"context"
	"errors"

	"github.com/merojugx/mero/internal/application/setting/dto"
	"github.com/merojugx/mero/internal/domain/setting"
	apperrors "github.com/merojugx/mero/internal/shared/errors"
	"github.com/merojugx/mero/internal/shared/logger"
)

type ListSystemSettingsUseCase struct {
	repo   setting.SystemRepository
	logger logger.Interface
}

func NewListSystemSettingsUseCase(repo setting.SystemRepository, logger logger.Interface) *ListSystemSettingsUseCase {
	return &ListSystemSettingsUseCase{repo: repo, logger: logger}
}

// Execute lists settings of one category, or all when category is empty.
func (uc *ListSystemSettingsUseCase) Execute(ctx context.Context, category string) ([]dto.SystemSettingDTO, error) {
	list, err := uc.repo.List(ctx, category)
	if err != nil {
		uc.logger.Errorw("failed to list system settings", "category", category, "error", err)
		return nil, apperrors.NewInternalError("failed to list settings")
	}
	return dto.ToSystemSettingDTOs(list), nil
}

type GetSystemSettingUseCase struct {
	repo   setting.SystemRepository
	logger logger.Interface
}

func NewGetSystemSettingUseCase(repo setting.SystemRepository, logger logger.Interface) *GetSystemSettingUseCase {
	return &GetSystemSettingUseCase{repo: repo, logger: logger}
}

func (uc *GetSystemSettingUseCase) Execute(ctx context.Context, key string) (*dto.SystemSettingDTO, error) {
	s, err := uc.repo.GetByKey(ctx, key)
	if err != nil {
		return nil, uc.translate(err, key)
	}
	result := dto.ToSystemSettingDTO(s)
	return &result, nil
}

func (uc *GetSystemSettingUseCase) translate(err error, key string) error {
	if errors.Is(err, setting.ErrSettingNotFound) {
		return apperrors.NewNotFoundError("setting not found", key)
	}
	uc.logger.Errorw("failed to get system setting", "key", key, "error", err)
	return apperrors.NewInternalError("failed to load setting")
}

type UpsertSystemSettingCommand struct {
	Key         string
	Value       string
	Description string
	Category    string
	IsPublic    bool
	UpdatedBy   string
}

// UpsertSystemSettingUseCase creates the key or replaces every field of an
// existing one.
type UpsertSystemSettingUseCase struct {
	repo   setting.SystemRepository
	logger logger.Interface
}

func NewUpsertSystemSettingUseCase(repo setting.SystemRepository, logger logger.Interface) *UpsertSystemSettingUseCase {
	return &UpsertSystemSettingUseCase{repo: repo, logger: logger}
}

func (uc *UpsertSystemSettingUseCase) Execute(ctx context.Context, cmd UpsertSystemSettingCommand) (*dto.SystemSettingDTO, error) {
	uc.logger.Infow("executing upsert system setting use case", "key", cmd.Key, "updated_by", cmd.UpdatedBy)

	s, err := uc.repo.GetByKey(ctx, cmd.Key)
	switch {
	case err == nil:
		s.Apply(setting.Patch{
			Value:       &cmd.Value,
			Description: &cmd.Description,
			Category:    &cmd.Category,
			IsPublic:    &cmd.IsPublic,
		}, cmd.UpdatedBy)
	case errors.Is(err, setting.ErrSettingNotFound):
		s, err = setting.NewSystemSetting(cmd.Key, cmd.Value, cmd.Description, cmd.Category, cmd.IsPublic, cmd.UpdatedBy)
		if err != nil {
			return nil, apperrors.NewValidationError("invalid setting", err.Error())
		}
	default:
		uc.logger.Errorw("failed to load system setting", "key", cmd.Key, "error", err)
		return nil, apperrors.NewInternalError("failed to load setting")
	}

	if err := uc.repo.Upsert(ctx, s); err != nil {
		uc.logger.Errorw("failed to save system setting", "key", cmd.Key, "error", err)
		return nil, apperrors.NewInternalError("failed to save setting")
	}

	result := dto.ToSystemSettingDTO(s)
	return &result, nil
}

type UpdateSystemSettingCommand struct {
	Key       string
	Patch     setting.Patch
	UpdatedBy string
}

// UpdateSystemSettingUseCase changes the given fields of an existing key.
type UpdateSystemSettingUseCase struct {
	repo   setting.SystemRepository
	logger logger.Interface
}

func NewUpdateSystemSettingUseCase(repo setting.SystemRepository, logger logger.Interface) *UpdateSystemSettingUseCase {
	return &UpdateSystemSettingUseCase{repo: repo, logger: logger}
}

func (uc *UpdateSystemSettingUseCase) Execute(ctx context.Context, cmd UpdateSystemSettingCommand) (*dto.SystemSettingDTO, error) {
	s, err := uc.repo.GetByKey(ctx, cmd.Key)
	if err != nil {
		if errors.Is(err, setting.ErrSettingNotFound) {
			return nil, apperrors.NewNotFoundError("setting not found", cmd.Key)
		}
		uc.logger.Errorw("failed to load system setting", "key", cmd.Key, "error", err)
		return nil, apperrors.NewInternalError("failed to load setting")
	}

	s.Apply(cmd.Patch, cmd.UpdatedBy)

	if err := uc.repo.Update(ctx, s); err != nil {
		if errors.Is(err, setting.ErrSettingNotFound) {
			return nil, apperrors.NewNotFoundError("setting not found", cmd.Key)
		}
		uc.logger.Errorw("failed to update system setting", "key", cmd.Key, "error", err)
		return nil, apperrors.NewInternalError("failed to save setting")
	}

	uc.logger.Infow("system setting updated", "key", cmd.Key, "updated_by", cmd.UpdatedBy)
	result := dto.ToSystemSettingDTO(s)
	return &result, nil
}

type DeleteSystemSettingUseCase struct {
	repo   setting.SystemRepository
	logger logger.Interface
}

func NewDeleteSystemSettingUseCase(repo setting.SystemRepository, logger logger.Interface) *DeleteSystemSettingUseCase {
	return &DeleteSystemSettingUseCase{repo: repo, logger: logger}
}

func (uc *DeleteSystemSettingUseCase) Execute(ctx context.Context, key string) error {
	if err := uc.repo.Delete(ctx, key); err != nil {
		if errors.Is(err, setting.ErrSettingNotFound) {
			return apperrors.NewNotFoundError("setting not found", key)
		}
		uc.logger.Errorw("failed to delete system setting", "key", key, "error", err)
		return apperrors.NewInternalError("failed to delete setting")
	}
	uc.logger.Infow("system setting deleted", "key", key)
	return nil
}

type ListPublicSettingsUseCase struct {
	repo   setting.SystemRepository
	logger logger.Interface
}

func NewListPublicSettingsUseCase(repo setting.SystemRepository, logger logger.Interface) *ListPublicSettingsUseCase {
	return &ListPublicSettingsUseCase{repo: repo, logger: logger}
}

func (uc *ListPublicSettingsUseCase) Execute(ctx context.Context) (map[string]string, error) {
	list, err := uc.repo.ListPublic(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list public settings", "error", err)
		return nil, apperrors.NewInternalError("failed to list settings")
	}
	return dto.ToPublicSettings(list), nil
}
