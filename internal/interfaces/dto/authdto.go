package dto

type AdminLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// DisableMFARequest carries either a 6 digit TOTP code or an 8 character
// backup code.
type DisableMFARequest struct {
	Code string `json:"code" validate:"required,min=6,max=8"`
}

// SetSystemAdminRequest grants a system admin role; an empty role revokes it.
type SetSystemAdminRequest struct {
	Role string `json:"role" validate:"omitempty,oneof=super_admin admin support viewer"`
}

// VerifyMFARequest carries a 6 digit TOTP code from the authenticator app.
type VerifyMFARequest struct {
	Code string `json:"code" validate:"required,len=6,numeric"`
}

type RegisterOrganizationRequest struct {
	Name      string `json:"name" validate:"required,max=255"`
	Slug      string `json:"slug" validate:"omitempty,slug,min=3,max=50"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8,max=128"`
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
}

// LoginRequest signs a member into one organization. MFACode is required
// once MFA is enabled and may be a backup code.
type LoginRequest struct {
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required"`
	OrganizationID string `json:"organization_id" validate:"omitempty,uuid"`
	MFACode        string `json:"mfa_code" validate:"omitempty,min=6,max=8"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}
