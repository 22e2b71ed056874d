package app

import "errors"

var (
	ErrAppNotFound   = errors.New("app not found")
	ErrAppInactive   = errors.New("app is not active")
	ErrNegativePrice = errors.New("app price cannot be negative")
)
