package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/merojugx/mero/internal/domain/organization"
	"github.com/merojugx/mero/internal/infrastructure/persistence/mappers"
	"github.com/merojugx/mero/internal/infrastructure/persistence/models"
	"github.com/merojugx/mero/internal/shared/biztime"
	"github.com/merojugx/mero/internal/shared/db"
	apperrors "github.com/merojugx/mero/internal/shared/errors"
	"github.com/merojugx/mero/internal/shared/id"
	"github.com/merojugx/mero/internal/shared/logger"
)

// OrganizationRepository implements organization.Repository and
// organization.MemberRepository.
type OrganizationRepository struct {
	db     *gorm.DB
	logger logger.Interface
	mapper mappers.OrganizationMapper
}

func NewOrganizationRepository(gdb *gorm.DB, log logger.Interface) *OrganizationRepository {
	return &OrganizationRepository{
		db:     gdb,
		logger: log,
		mapper: mappers.NewOrganizationMapper(),
	}
}

func (r *OrganizationRepository) Create(ctx context.Context, org *organization.Organization) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(r.mapper.ToModel(org)).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return organization.ErrSlugTaken
		}
		r.logger.Errorw("failed to create organization", "slug", org.Slug(), "error", err)
		return fmt.Errorf("failed to create organization: %w", err)
	}
	return nil
}

func (r *OrganizationRepository) GetByID(ctx context.Context, orgID string) (*organization.Organization, error) {
	return r.getBy(ctx, "id = ?", orgID)
}

func (r *OrganizationRepository) GetBySlug(ctx context.Context, slug string) (*organization.Organization, error) {
	return r.getBy(ctx, "slug = ?", slug)
}

func (r *OrganizationRepository) getBy(ctx context.Context, query string, arg any) (*organization.Organization, error) {
	var model models.OrganizationModel
	err := db.GetTxFromContext(ctx, r.db).Where(query, arg).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, organization.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *OrganizationRepository) Update(ctx context.Context, org *organization.Organization) error {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.OrganizationModel{}).
		Where("id = ?", org.ID()).
		Updates(map[string]any{
			"name":       org.Name(),
			"slug":       org.Slug(),
			"status":     string(org.Status()),
			"updated_at": org.UpdatedAt(),
		})
	if result.Error != nil {
		if apperrors.IsDuplicateError(result.Error) {
			return organization.ErrSlugTaken
		}
		r.logger.Errorw("failed to update organization", "id", org.ID(), "error", result.Error)
		return fmt.Errorf("failed to update organization: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return organization.ErrOrganizationNotFound
	}
	return nil
}

func (r *OrganizationRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.OrganizationModel{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count organizations: %w", err)
	}
	return n, nil
}

// Add creates an active membership.
func (r *OrganizationRepository) Add(ctx context.Context, organizationID, userID, roleID string) (*organization.Member, error) {
	now := biztime.NowUTC()
	model := &models.OrganizationMemberModel{
		ID:             id.New(),
		OrganizationID: organizationID,
		UserID:         userID,
		RoleID:         roleID,
		Status:         "active",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return nil, fmt.Errorf("failed to add organization member: %w", err)
	}
	return r.mapper.MemberToDomain(model), nil
}

func (r *OrganizationRepository) Get(ctx context.Context, organizationID, userID string) (*organization.Member, error) {
	var model models.OrganizationMemberModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("organization_id = ? AND user_id = ?", organizationID, userID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, organization.ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to get organization member: %w", err)
	}
	return r.mapper.MemberToDomain(&model), nil
}
