package usecases

import (
	"context"
	"errors"
	"strings"

	"github.com/merojugx/mero/internal/application/auth/dto"
	"github.com/merojugx/mero/internal/domain/organization"
	"github.com/merojugx/mero/internal/domain/role"
	"github.com/merojugx/mero/internal/domain/user"
	"github.com/merojugx/mero/internal/shared/db"
	apperrors "github.com/merojugx/mero/internal/shared/errors"
	"github.com/merojugx/mero/internal/shared/logger"
)

type RegisterOrganizationCommand struct {
	Name string
	// Slug is derived from Name when empty.
	Slug           string
	OwnerEmail     string
	OwnerPassword  string
	OwnerFirstName string
	OwnerLastName  string
}

// RegisterOrganizationUseCase creates an organization together with its
// built-in roles and the owner account. The owner must verify the email
// address before the first login.
type RegisterOrganizationUseCase struct {
	orgRepo      organization.Repository
	memberRepo   organization.MemberRepository
	roleRepo     role.Repository
	userRepo     user.Repository
	actionTokens user.ActionTokenRepository
	hasher       PasswordHasher
	linkTokens   LinkTokens
	emailService EmailService
	txMgr        db.Transactor
	logger       logger.Interface
}

func NewRegisterOrganizationUseCase(
	orgRepo organization.Repository,
	memberRepo organization.MemberRepository,
	roleRepo role.Repository,
	userRepo user.Repository,
	actionTokens user.ActionTokenRepository,
	hasher PasswordHasher,
	linkTokens LinkTokens,
	emailService EmailService,
	txMgr db.Transactor,
	logger logger.Interface,
) *RegisterOrganizationUseCase {
	return &RegisterOrganizationUseCase{
		orgRepo:      orgRepo,
		memberRepo:   memberRepo,
		roleRepo:     roleRepo,
		userRepo:     userRepo,
		actionTokens: actionTokens,
		hasher:       hasher,
		linkTokens:   linkTokens,
		emailService: emailService,
		txMgr:        txMgr,
		logger:       logger,
	}
}

func (uc *RegisterOrganizationUseCase) Execute(ctx context.Context, cmd RegisterOrganizationCommand) (*dto.RegisterOrganizationResponse, error) {
	uc.logger.Infow("executing register organization use case", "name", cmd.Name, "slug", cmd.Slug)

	if len(cmd.OwnerPassword) < minPasswordLength {
		return nil, apperrors.NewValidationError("password must be at least 8 characters")
	}

	org, err := organization.NewOrganization(cmd.Name, strings.ToLower(strings.TrimSpace(cmd.Slug)))
	if err != nil {
		return nil, apperrors.NewValidationError("invalid organization", err.Error())
	}

	passwordHash, err := uc.hasher.Hash(cmd.OwnerPassword)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, apperrors.NewInternalError("failed to register organization")
	}
	owner, err := user.NewUser(cmd.OwnerEmail, passwordHash, strings.TrimSpace(cmd.OwnerFirstName), strings.TrimSpace(cmd.OwnerLastName))
	if err != nil {
		return nil, apperrors.NewValidationError("invalid owner", err.Error())
	}

	if _, err := uc.userRepo.GetByEmail(ctx, owner.Email()); err == nil {
		return nil, apperrors.NewConflictError("email already registered", owner.Email())
	} else if !errors.Is(err, user.ErrUserNotFound) {
		uc.logger.Errorw("failed to look up owner email", "error", err)
		return nil, apperrors.NewInternalError("failed to register organization")
	}

	err = uc.txMgr.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := uc.orgRepo.Create(ctx, org); err != nil {
			if errors.Is(err, organization.ErrSlugTaken) {
				return apperrors.NewConflictError("organization slug already taken", org.Slug())
			}
			return err
		}

		ownerRole := role.NewOwnerRole(org.ID())
		for _, r := range []*role.Role{ownerRole, role.NewAdminRole(org.ID())} {
			if err := uc.roleRepo.Create(ctx, r); err != nil {
				return err
			}
		}

		if err := uc.userRepo.Create(ctx, owner); err != nil {
			if errors.Is(err, user.ErrEmailTaken) {
				return apperrors.NewConflictError("email already registered", owner.Email())
			}
			return err
		}

		_, err := uc.memberRepo.Add(ctx, org.ID(), owner.ID(), ownerRole.ID())
		return err
	})
	if err != nil {
		if apperrors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to register organization", "slug", org.Slug(), "error", err)
		return nil, apperrors.NewInternalError("failed to register organization")
	}

	uc.sendVerification(ctx, owner)

	uc.logger.Infow("organization registered", "organization_id", org.ID(), "owner_id", owner.ID())
	return &dto.RegisterOrganizationResponse{
		Organization: dto.ToOrganizationDTO(org),
		Owner:        dto.ToUserDTO(owner),
	}, nil
}

// sendVerification only logs failures. A completed password reset also
// verifies the address.
func (uc *RegisterOrganizationUseCase) sendVerification(ctx context.Context, u *user.User) {
	plain, hash, err := uc.linkTokens.Generate()
	if err != nil {
		uc.logger.Errorw("failed to generate verification token", "user_id", u.ID(), "error", err)
		return
	}
	if err := uc.actionTokens.Create(ctx, user.NewActionToken(u.ID(), user.PurposeEmailVerification, hash, user.EmailVerificationTTL)); err != nil {
		uc.logger.Errorw("failed to store verification token", "user_id", u.ID(), "error", err)
		return
	}
	if err := uc.emailService.SendVerificationEmail(u.Email(), plain); err != nil {
		uc.logger.Warnw("failed to send verification email", "user_id", u.ID(), "error", err)
	}
}
