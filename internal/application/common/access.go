// Package common holds authorization helpers shared by organization scoped
// use cases.
package common

import (
	"context"
	"errors"

	"github.com/merojugx/mero/internal/domain/organization"
	"github.com/merojugx/mero/internal/domain/role"
	"github.com/merojugx/mero/internal/shared/authorization"
	apperrors "github.com/merojugx/mero/internal/shared/errors"
	"github.com/merojugx/mero/internal/shared/logger"
)

// OrganizationAccess answers whether a principal may act inside an organization.
type OrganizationAccess struct {
	members organization.MemberRepository
	roles   role.Repository
	logger  logger.Interface
}

func NewOrganizationAccess(members organization.MemberRepository, roles role.Repository, logger logger.Interface) *OrganizationAccess {
	return &OrganizationAccess{
		members: members,
		roles:   roles,
		logger:  logger,
	}
}

// RequireMember admits principals whose session is bound to the organization
// and system admins.
func (a *OrganizationAccess) RequireMember(p authorization.Principal, organizationID string) error {
	if p.InOrganization(organizationID) || authorization.PolicySystemAdmin.Permits(p) {
		return nil
	}
	return apperrors.NewForbiddenError("not a member of this organization")
}

// RequireManager resolves the caller's role and admits owners and admins only.
func (a *OrganizationAccess) RequireManager(ctx context.Context, p authorization.Principal, organizationID string) (*role.Role, error) {
	if !p.InOrganization(organizationID) {
		return nil, apperrors.NewForbiddenError("not a member of this organization")
	}

	member, err := a.members.Get(ctx, organizationID, p.UserID)
	if err != nil {
		if errors.Is(err, organization.ErrMemberNotFound) {
			return nil, apperrors.NewForbiddenError("not a member of this organization")
		}
		a.logger.Errorw("failed to load organization member", "organization_id", organizationID, "user_id", p.UserID, "error", err)
		return nil, apperrors.NewInternalError("failed to resolve membership")
	}
	if !member.IsActive() {
		return nil, apperrors.NewForbiddenError("membership is not active")
	}

	r, err := a.roles.GetInOrganization(ctx, organizationID, member.RoleID())
	if err != nil {
		if errors.Is(err, role.ErrRoleNotFound) {
			return nil, apperrors.NewForbiddenError("member role not found")
		}
		a.logger.Errorw("failed to load member role", "role_id", member.RoleID(), "error", err)
		return nil, apperrors.NewInternalError("failed to resolve membership")
	}
	if !r.CanManageHierarchy() {
		return nil, apperrors.NewForbiddenError("only organization owners and admins may do this")
	}
	return r, nil
}
