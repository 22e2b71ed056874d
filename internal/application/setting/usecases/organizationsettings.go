package usecases

import (
	"context"
	"errors"

	"github.com/merojugx/mero/internal/application/common"
	"github.com/merojugx/mero/internal/application/setting/dto"
	"github.com/merojugx/mero/internal/domain/setting"
	"github.com/merojugx/mero/internal/shared/authorization"
	apperrors "github.com/merojugx/mero/internal/shared/errors"
	"github.com/merojugx/mero/internal/shared/logger"
)

type ListOrganizationSettingsQuery struct {
	Actor          authorization.Principal
	OrganizationID string
}

type ListOrganizationSettingsUseCase struct {
	repo   setting.OrganizationRepository
	access *common.OrganizationAccess
	logger logger.Interface
}

func NewListOrganizationSettingsUseCase(repo setting.OrganizationRepository, access *common.OrganizationAccess, logger logger.Interface) *ListOrganizationSettingsUseCase {
	return &ListOrganizationSettingsUseCase{repo: repo, access: access, logger: logger}
}

func (uc *ListOrganizationSettingsUseCase) Execute(ctx context.Context, query ListOrganizationSettingsQuery) ([]dto.SettingDTO, error) {
	if err := uc.access.RequireMember(query.Actor, query.OrganizationID); err != nil {
		return nil, err
	}

	list, err := uc.repo.ListByOrganization(ctx, query.OrganizationID)
	if err != nil {
		uc.logger.Errorw("failed to list organization settings", "organization_id", query.OrganizationID, "error", err)
		return nil, apperrors.NewInternalError("failed to list settings")
	}
	return dto.ToSettingDTOs(list), nil
}

type UpsertOrganizationSettingCommand struct {
	Actor          authorization.Principal
	OrganizationID string
	Key            string
	Value          string
}

type UpsertOrganizationSettingResult struct {
	Setting dto.SettingDTO
	Created bool
}

// UpsertOrganizationSettingUseCase writes one key. Only owners and admins may
// change organization settings.
type UpsertOrganizationSettingUseCase struct {
	repo   setting.OrganizationRepository
	access *common.OrganizationAccess
	logger logger.Interface
}

func NewUpsertOrganizationSettingUseCase(repo setting.OrganizationRepository, access *common.OrganizationAccess, logger logger.Interface) *UpsertOrganizationSettingUseCase {
	return &UpsertOrganizationSettingUseCase{repo: repo, access: access, logger: logger}
}

func (uc *UpsertOrganizationSettingUseCase) Execute(ctx context.Context, cmd UpsertOrganizationSettingCommand) (*UpsertOrganizationSettingResult, error) {
	uc.logger.Infow("executing upsert organization setting use case", "organization_id", cmd.OrganizationID, "key", cmd.Key)

	if _, err := uc.access.RequireManager(ctx, cmd.Actor, cmd.OrganizationID); err != nil {
		return nil, err
	}

	existing, err := uc.repo.Get(ctx, cmd.OrganizationID, cmd.Key)
	switch {
	case err == nil:
		existing.UpdateValue(cmd.Value)
		if err := uc.repo.Upsert(ctx, existing); err != nil {
			uc.logger.Errorw("failed to update organization setting", "key", cmd.Key, "error", err)
			return nil, apperrors.NewInternalError("failed to save setting")
		}
		return &UpsertOrganizationSettingResult{Setting: dto.ToSettingDTO(existing)}, nil
	case !errors.Is(err, setting.ErrSettingNotFound):
		uc.logger.Errorw("failed to load organization setting", "key", cmd.Key, "error", err)
		return nil, apperrors.NewInternalError("failed to load setting")
	}

	s, err := setting.NewOrganizationSetting(cmd.OrganizationID, cmd.Key, cmd.Value)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid setting", err.Error())
	}
	if err := uc.repo.Create(ctx, s); err != nil {
		if errors.Is(err, setting.ErrDuplicateKey) {
			return nil, apperrors.NewConflictError("setting key already exists", cmd.Key)
		}
		uc.logger.Errorw("failed to create organization setting", "key", cmd.Key, "error", err)
		return nil, apperrors.NewInternalError("failed to save setting")
	}

	uc.logger.Infow("organization setting created", "organization_id", cmd.OrganizationID, "key", cmd.Key)
	return &UpsertOrganizationSettingResult{Setting: dto.ToSettingDTO(s), Created: true}, nil
}

type DeleteOrganizationSettingCommand struct {
	Actor          authorization.Principal
	OrganizationID string
	Key            string
}

type DeleteOrganizationSettingUseCase struct {
	repo   setting.OrganizationRepository
	access *common.OrganizationAccess
	logger logger.Interface
}

func NewDeleteOrganizationSettingUseCase(repo setting.OrganizationRepository, access *common.OrganizationAccess, logger logger.Interface) *DeleteOrganizationSettingUseCase {
	return &DeleteOrganizationSettingUseCase{repo: repo, access: access, logger: logger}
}

func (uc *DeleteOrganizationSettingUseCase) Execute(ctx context.Context, cmd DeleteOrganizationSettingCommand) error {
	if _, err := uc.access.RequireManager(ctx, cmd.Actor, cmd.OrganizationID); err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, cmd.OrganizationID, cmd.Key); err != nil {
		if errors.Is(err, setting.ErrSettingNotFound) {
			return apperrors.NewNotFoundError("setting not found", cmd.Key)
		}
		uc.logger.Errorw("failed to delete organization setting", "key", cmd.Key, "error", err)
		return apperrors.NewInternalError("failed to delete setting")
	}

	uc.logger.Infow("organization setting deleted", "organization_id", cmd.OrganizationID, "key", cmd.Key)
	return nil
}
