package usecases

import "context"

type UpdateOrganizationSlugExecutor interface {
	Execute(ctx context.Context, cmd UpdateOrganizationSlugCommand) (*UpdateOrganizationSlugResult, error)
}
