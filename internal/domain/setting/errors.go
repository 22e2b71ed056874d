package setting

import "errors"

var (
	ErrSettingNotFound   = errors.New("setting not found")
	ErrInvalidSettingKey = errors.New("invalid setting key")
	// ErrDuplicateKey is returned when a key already exists in the same scope.
	ErrDuplicateKey = errors.New("setting key already exists")
)
