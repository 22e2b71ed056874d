package upload

import "errors"

var (
	ErrNotFound        = errors.New("file upload not found")
	ErrNameRequired    = errors.New("file name is required")
	ErrInvalidMimeType = errors.New("invalid mime type")
	ErrEmptyFile       = errors.New("file size must be positive")
	ErrFileTooLarge    = errors.New("file exceeds 25 MiB")
)
