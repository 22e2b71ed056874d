package dto

// UpdateAppAccessRequest grants a member access to an app under one of the
// organization's roles.
type UpdateAppAccessRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
	AppID  string `json:"app_id" validate:"required,uuid"`
	RoleID string `json:"role_id" validate:"required,uuid"`
}

type SetRoleHierarchyRequest struct {
	// Level nil clears a custom level back to the default.
	Level *int `json:"level" validate:"omitempty,gte=3,lte=1000"`
}
