package dto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merojugx/mero/internal/shared/errors"
	"github.com/merojugx/mero/internal/shared/utils"
)

const (
	uuidA = "0190a6b2-3c4d-7e8f-9a0b-1c2d3e4f5a6b"
	uuidB = "0190a6b2-3c4d-7e8f-9a0b-1c2d3e4f5a6c"
	uuidC = "0190a6b2-3c4d-7e8f-9a0b-1c2d3e4f5a6d"
)

func ptr[T any](v T) *T { return &v }

func urls(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = "https://cdn.merojugx.com/f"
	}
	return out
}

// violations returns field name -> failed tag for a rejected payload.
func violations(t *testing.T, v any) map[string]string {
	t.Helper()
	err := utils.ValidateStruct(v)
	if err == nil {
		return nil
	}
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	require.Equal(t, errors.ErrorTypeValidation, appErr.Type)
	out := make(map[string]string, len(appErr.Fields))
	for _, f := range appErr.Fields {
		out[f.Field] = f.Tag
	}
	return out
}

func TestRequestValidation(t *testing.T) {
	tests := []struct {
		name string
		req  any
		want map[string]string
	}{
		{
			name: "app access valid",
			req:  &UpdateAppAccessRequest{UserID: uuidA, AppID: uuidB, RoleID: uuidC},
		},
		{
			name: "app access missing and malformed ids",
			req:  &UpdateAppAccessRequest{UserID: "42", AppID: uuidB},
			want: map[string]string{"user_id": "uuid", "role_id": "required"},
		},
		{
			name: "admin login valid",
			req:  &AdminLoginRequest{Email: "root@merojugx.com", Password: "s3cretpass"},
		},
		{
			name: "admin login email without at sign",
			req:  &AdminLoginRequest{Email: "root.merojugx.com", Password: "s3cretpass"},
			want: map[string]string{"email": "email"},
		},
		{
			name: "admin login short password",
			req:  &AdminLoginRequest{Email: "root@merojugx.com", Password: "1234567"},
			want: map[string]string{"password": "min"},
		},
		{
			name: "upload metadata valid without thumbnail",
			req:  &FileUploadMetadata{Name: "invoice.pdf", MimeType: "application/pdf", Size: "2048"},
		},
		{
			name: "upload metadata non numeric size and bad thumbnail",
			req:  &FileUploadMetadata{Name: "a.png", MimeType: "image/png", Size: "2kb", ThumbnailURL: ptr("not a url")},
			want: map[string]string{"size": "numeric_string", "thumbnail_url": "url"},
		},
		{
			name: "mfa code of six digits",
			req:  &DisableMFARequest{Code: "123456"},
		},
		{
			name: "mfa backup code of eight characters",
			req:  &DisableMFARequest{Code: "ab12cd34"},
		},
		{
			name: "mfa code too short",
			req:  &DisableMFARequest{Code: "12345"},
			want: map[string]string{"code": "min"},
		},
		{
			name: "mfa code too long",
			req:  &DisableMFARequest{Code: "123456789"},
			want: map[string]string{"code": "max"},
		},
		{
			name: "mfa setup code rejects backup code",
			req:  &VerifyMFARequest{Code: "ab12cd34"},
			want: map[string]string{"code": "len"},
		},
		{
			name: "mfa setup code must be digits",
			req:  &VerifyMFARequest{Code: "12a456"},
			want: map[string]string{"code": "numeric"},
		},
		{
			name: "login without organization",
			req:  &LoginRequest{Email: "sita@merojugx.com", Password: "x"},
		},
		{
			name: "login malformed organization",
			req:  &LoginRequest{Email: "sita@merojugx.com", Password: "x", OrganizationID: "acme"},
			want: map[string]string{"organization_id": "uuid"},
		},
		{
			name: "registration short password",
			req: &RegisterOrganizationRequest{
				Name:      "Acme",
				Email:     "owner@merojugx.com",
				Password:  "short",
				FirstName: "Sita",
				LastName:  "Sharma",
			},
			want: map[string]string{"password": "min"},
		},
		{
			name: "reset password missing token",
			req:  &ResetPasswordRequest{Password: "battery staple"},
			want: map[string]string{"token": "required"},
		},
		{
			name: "slug valid",
			req:  &UpdateOrganizationSlugRequest{Slug: "acme-nepal-01"},
		},
		{
			name: "slug with uppercase",
			req:  &UpdateOrganizationSlugRequest{Slug: "Acme"},
			want: map[string]string{"slug": "slug"},
		},
		{
			name: "slug too short",
			req:  &UpdateOrganizationSlugRequest{Slug: "ab"},
			want: map[string]string{"slug": "min"},
		},
		{
			name: "slug too long",
			req:  &UpdateOrganizationSlugRequest{Slug: strings.Repeat("a", 51)},
			want: map[string]string{"slug": "max"},
		},
		{
			name: "stripe session only",
			req:  &VerifyStripeRequest{SessionID: "cs_test_a1b2"},
		},
		{
			name: "stripe missing session",
			req:  &VerifyStripeRequest{TransactionID: uuidA},
			want: map[string]string{"session_id": "required"},
		},
		{
			name: "hierarchy level reserved",
			req:  &SetRoleHierarchyRequest{Level: ptr(2)},
			want: map[string]string{"level": "gte"},
		},
		{
			name: "hierarchy level cleared",
			req:  &SetRoleHierarchyRequest{},
		},
		{
			name: "system admin unknown role",
			req:  &SetSystemAdminRequest{Role: "owner"},
			want: map[string]string{"role": "oneof"},
		},
		{
			name: "comment with too many attachments",
			req: &AddCommentRequest{
				Body:           "see attached",
				AttachmentURLs: urls(11),
			},
			want: map[string]string{"attachment_urls": "max"},
		},
		{
			name: "ticket bad priority",
			req:  &CreateTicketRequest{Title: "Printer", Priority: "asap"},
			want: map[string]string{"priority": "oneof"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, violations(t, tt.req))
		})
	}
}

func TestValidPayloadIsUnchanged(t *testing.T) {
	req := FileUploadMetadata{
		Name:         "  report.csv",
		MimeType:     "text/csv",
		Size:         "0012",
		ThumbnailURL: ptr("https://cdn.merojugx.com/t.png"),
	}
	before := req
	before.ThumbnailURL = ptr(*req.ThumbnailURL)

	require.NoError(t, utils.ValidateStruct(&req))
	assert.Equal(t, before, req)
}
