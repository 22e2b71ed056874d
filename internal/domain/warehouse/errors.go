package warehouse

import "errors"

var (
	ErrWarehouseNotFound = errors.New("warehouse not found")
	ErrNameRequired      = errors.New("warehouse name is required")
	ErrInvalidType       = errors.New("warehouse type must be main, branch, transit or virtual")
)
