package organization

import "errors"

var (
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrMemberNotFound       = errors.New("organization member not found")
	ErrNameRequired         = errors.New("organization name is required")
	ErrInvalidSlug          = errors.New("invalid organization slug")
	ErrSlugTaken            = errors.New("organization slug already taken")
)
