package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/merojugx/mero/internal/application/common"
	"github.com/merojugx/mero/internal/domain/organization"
	"github.com/merojugx/mero/internal/shared/authorization"
	apperrors "github.com/merojugx/mero/internal/shared/errors"
	"github.com/merojugx/mero/internal/shared/logger"
)

type UpdateOrganizationSlugCommand struct {
	Actor          authorization.Principal
	OrganizationID string
	Slug           string
}

type UpdateOrganizationSlugResult struct {
	OrganizationID string
	Slug           string
	Changed        bool
	UpdatedAt      time.Time
}

type UpdateOrganizationSlugUseCase struct {
	orgRepo organization.Repository
	access  *common.OrganizationAccess
	logger  logger.Interface
}

func NewUpdateOrganizationSlugUseCase(
	orgRepo organization.Repository,
	access *common.OrganizationAccess,
	logger logger.Interface,
) *UpdateOrganizationSlugUseCase {
	return &UpdateOrganizationSlugUseCase{
		orgRepo: orgRepo,
		access:  access,
		logger:  logger,
	}
}

func (uc *UpdateOrganizationSlugUseCase) Execute(ctx context.Context, cmd UpdateOrganizationSlugCommand) (*UpdateOrganizationSlugResult, error) {
	uc.logger.Infow("executing update organization slug use case", "organization_id", cmd.OrganizationID, "slug", cmd.Slug)

	if _, err := uc.access.RequireManager(ctx, cmd.Actor, cmd.OrganizationID); err != nil {
		return nil, err
	}

	org, err := uc.orgRepo.GetByID(ctx, cmd.OrganizationID)
	if err != nil {
		if errors.Is(err, organization.ErrOrganizationNotFound) {
			return nil, apperrors.NewNotFoundError("organization not found")
		}
		uc.logger.Errorw("failed to load organization", "organization_id", cmd.OrganizationID, "error", err)
		return nil, apperrors.NewInternalError("failed to load organization")
	}

	changed, err := org.ChangeSlug(cmd.Slug)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid slug", err.Error())
	}

	if changed {
		if err := uc.orgRepo.Update(ctx, org); err != nil {
			if errors.Is(err, organization.ErrSlugTaken) {
				return nil, apperrors.NewConflictError("organization slug already taken", cmd.Slug)
			}
			uc.logger.Errorw("failed to update organization", "organization_id", cmd.OrganizationID, "error", err)
			return nil, apperrors.NewInternalError("failed to update organization")
		}
		uc.logger.Infow("organization slug updated", "organization_id", org.ID(), "slug", org.Slug())
	}

	return &UpdateOrganizationSlugResult{
		OrganizationID: org.ID(),
		Slug:           org.Slug(),
		Changed:        changed,
		UpdatedAt:      org.UpdatedAt(),
	}, nil
}
