package role

import "errors"

var (
	ErrRoleNotFound  = errors.New("role not found")
	ErrNameRequired  = errors.New("role name is required")
	ErrReservedSlug  = errors.New("role slug is reserved")
	ErrSlugTaken     = errors.New("role slug already exists in organization")
	ErrBuiltInRole   = errors.New("hierarchy of built-in roles cannot be changed")
	ErrReservedLevel = errors.New("hierarchy levels 1 and 2 are reserved for owner and admin")
)
