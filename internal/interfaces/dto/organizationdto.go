package dto

type UpdateOrganizationSlugRequest struct {
	Slug string `json:"slug" validate:"required,min=3,max=50,slug"`
}

type UpsertSettingRequest struct {
	Value string `json:"value" validate:"max=65535"`
}

type UpsertSystemSettingRequest struct {
	Value       string `json:"value" validate:"max=65535"`
	Description string `json:"description" validate:"max=500"`
	Category    string `json:"category" validate:"omitempty,max=100"`
	IsPublic    bool   `json:"is_public"`
}

// PatchSystemSettingRequest changes only the fields that are present.
type PatchSystemSettingRequest struct {
	Value       *string `json:"value" validate:"omitempty,max=65535"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Category    *string `json:"category" validate:"omitempty,max=100"`
	IsPublic    *bool   `json:"is_public"`
}
