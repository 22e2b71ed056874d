package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrInvalidEmail           = errors.New("invalid email address")
	ErrEmailTaken             = errors.New("email already registered")
	ErrUserInactive           = errors.New("user account is not active")
	ErrNotSystemAdmin         = errors.New("user is not a system admin")
	ErrEmailNotVerified       = errors.New("email address is not verified")
	ErrInvalidSystemAdminRole = errors.New("invalid system admin role")

	ErrMFANotEnabled      = errors.New("mfa is not enabled")
	ErrMFAAlreadyEnabled  = errors.New("mfa is already enabled")
	ErrMFASetupNotStarted = errors.New("mfa setup has not been started")

	ErrSessionNotFound = errors.New("session not found")

	ErrActionTokenNotFound = errors.New("action token not found")
	ErrActionTokenInvalid  = errors.New("action token is expired or already used")
)
