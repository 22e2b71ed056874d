package setting

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	settingdto "github.com/merojugx/mero/internal/application/setting/dto"
	"github.com/merojugx/mero/internal/application/setting/usecases"
	"github.com/merojugx/mero/internal/interfaces/http/handlers/testutil"
	"github.com/merojugx/mero/internal/shared/authorization"
	"github.com/merojugx/mero/internal/shared/errors"
)

const (
	testOrgID  = "0190a6b2-0000-7000-8000-000000000101"
	testUserID = "0190a6b2-0000-7000-8000-000000000102"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockListOrgSettingsUC struct {
	result []settingdto.SettingDTO
	err    error
}

func (m *mockListOrgSettingsUC) Execute(_ context.Context, _ usecases.ListOrganizationSettingsQuery) ([]settingdto.SettingDTO, error) {
	return m.result, m.err
}

type mockUpsertOrgSettingUC struct {
	result *usecases.UpsertOrganizationSettingResult
	err    error
	cmd    usecases.UpsertOrganizationSettingCommand
}

func (m *mockUpsertOrgSettingUC) Execute(_ context.Context, cmd usecases.UpsertOrganizationSettingCommand) (*usecases.UpsertOrganizationSettingResult, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockDeleteOrgSettingUC struct {
	err error
}

func (m *mockDeleteOrgSettingUC) Execute(_ context.Context, _ usecases.DeleteOrganizationSettingCommand) error {
	return m.err
}

type mockListSystemSettingsUC struct {
	result   []settingdto.SystemSettingDTO
	category string
}

func (m *mockListSystemSettingsUC) Execute(_ context.Context, category string) ([]settingdto.SystemSettingDTO, error) {
	m.category = category
	return m.result, nil
}

type mockGetSystemSettingUC struct {
	result *settingdto.SystemSettingDTO
	err    error
}

func (m *mockGetSystemSettingUC) Execute(_ context.Context, _ string) (*settingdto.SystemSettingDTO, error) {
	return m.result, m.err
}

type mockUpsertSystemSettingUC struct {
	cmd usecases.UpsertSystemSettingCommand
}

func (m *mockUpsertSystemSettingUC) Execute(_ context.Context, cmd usecases.UpsertSystemSettingCommand) (*settingdto.SystemSettingDTO, error) {
	m.cmd = cmd
	return &settingdto.SystemSettingDTO{Key: cmd.Key, Value: cmd.Value}, nil
}

type mockUpdateSystemSettingUC struct {
	cmd usecases.UpdateSystemSettingCommand
}

func (m *mockUpdateSystemSettingUC) Execute(_ context.Context, cmd usecases.UpdateSystemSettingCommand) (*settingdto.SystemSettingDTO, error) {
	m.cmd = cmd
	return &settingdto.SystemSettingDTO{Key: cmd.Key}, nil
}

type mockDeleteSystemSettingUC struct {
	err error
	key string
}

func (m *mockDeleteSystemSettingUC) Execute(_ context.Context, key string) error {
	m.key = key
	return m.err
}

type mockListPublicUC struct {
	result map[string]string
}

func (m *mockListPublicUC) Execute(context.Context) (map[string]string, error) {
	return m.result, nil
}

func member() authorization.Principal {
	return testutil.MemberPrincipal(testUserID, testOrgID)
}

// =====================================================================
// Organization settings
// =====================================================================

func TestOrganizationSettingHandler_Upsert(t *testing.T) {
	tests := []struct {
		name    string
		created bool
		want    int
	}{
		{"new key", true, http.StatusCreated},
		{"existing key", false, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockUpsertOrgSettingUC{result: &usecases.UpsertOrganizationSettingResult{
				Setting: settingdto.SettingDTO{Key: "currency", Value: "NPR"},
				Created: tt.created,
			}}
			handler := NewOrganizationSettingHandler(nil, mockUC, nil, testutil.NewMockLogger())

			c, w := testutil.NewTestContext(http.MethodPut, "/organizations/"+testOrgID+"/settings/currency", map[string]string{"value": "NPR"})
			testutil.SetPrincipal(c, member())
			testutil.SetURLParam(c, "orgId", testOrgID)
			testutil.SetURLParam(c, "key", "currency")

			handler.Upsert(c)

			assert.Equal(t, tt.want, w.Code)
			assert.Equal(t, "currency", mockUC.cmd.Key)
			assert.Equal(t, "NPR", mockUC.cmd.Value)
		})
	}
}

func TestOrganizationSettingHandler_UpsertForbidden(t *testing.T) {
	mockUC := &mockUpsertOrgSettingUC{err: errors.NewForbiddenError("only owners and admins may change settings")}
	handler := NewOrganizationSettingHandler(nil, mockUC, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPut, "/organizations/"+testOrgID+"/settings/currency", map[string]string{"value": "NPR"})
	testutil.SetPrincipal(c, member())
	testutil.SetURLParam(c, "orgId", testOrgID)
	testutil.SetURLParam(c, "key", "currency")

	handler.Upsert(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestOrganizationSettingHandler_List(t *testing.T) {
	handler := NewOrganizationSettingHandler(&mockListOrgSettingsUC{result: []settingdto.SettingDTO{{Key: "a"}, {Key: "b"}}}, nil, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/organizations/"+testOrgID+"/settings", nil)
	testutil.SetPrincipal(c, member())
	testutil.SetURLParam(c, "orgId", testOrgID)

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOrganizationSettingHandler_DeleteMissing(t *testing.T) {
	handler := NewOrganizationSettingHandler(nil, nil, &mockDeleteOrgSettingUC{err: errors.NewNotFoundError("setting not found")}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodDelete, "/organizations/"+testOrgID+"/settings/nope", nil)
	testutil.SetPrincipal(c, member())
	testutil.SetURLParam(c, "orgId", testOrgID)
	testutil.SetURLParam(c, "key", "nope")

	handler.Delete(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// =====================================================================
// System settings
// =====================================================================

func newSystemHandler(list *mockListSystemSettingsUC, get *mockGetSystemSettingUC, upsert *mockUpsertSystemSettingUC, update *mockUpdateSystemSettingUC, del *mockDeleteSystemSettingUC, public *mockListPublicUC) *SystemSettingHandler {
	return NewSystemSettingHandler(list, get, upsert, update, del, public, testutil.NewMockLogger())
}

func TestSystemSettingHandler_ListByCategory(t *testing.T) {
	list := &mockListSystemSettingsUC{result: []settingdto.SystemSettingDTO{{Key: "smtp.host"}}}
	handler := newSystemHandler(list, nil, nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/system-admin/settings", nil)
	testutil.SetQueryParams(c, map[string]string{"category": "email"})

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "email", list.category)
}

func TestSystemSettingHandler_UpsertRecordsActor(t *testing.T) {
	upsert := &mockUpsertSystemSettingUC{}
	handler := newSystemHandler(nil, nil, upsert, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPut, "/system-admin/settings/maintenance_mode", map[string]any{
		"value":     "true",
		"category":  "general",
		"is_public": true,
	})
	testutil.SetPrincipal(c, testutil.AdminPrincipal(testUserID, authorization.SystemAdminRoleAdmin))
	testutil.SetURLParam(c, "key", "maintenance_mode")

	handler.Upsert(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "maintenance_mode", upsert.cmd.Key)
	assert.Equal(t, testUserID, upsert.cmd.UpdatedBy)
	assert.True(t, upsert.cmd.IsPublic)
}

func TestSystemSettingHandler_PatchOnlySentFields(t *testing.T) {
	update := &mockUpdateSystemSettingUC{}
	handler := newSystemHandler(nil, nil, nil, update, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPatch, "/system-admin/settings/site_name", map[string]string{"value": "Mero Jugx"})
	testutil.SetPrincipal(c, testutil.AdminPrincipal(testUserID, authorization.SystemAdminRoleSuperAdmin))
	testutil.SetURLParam(c, "key", "site_name")

	handler.Update(c)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, update.cmd.Patch.Value)
	assert.Equal(t, "Mero Jugx", *update.cmd.Patch.Value)
	assert.Nil(t, update.cmd.Patch.Description)
	assert.Nil(t, update.cmd.Patch.IsPublic)
}

func TestSystemSettingHandler_Get_NotFound(t *testing.T) {
	handler := newSystemHandler(nil, &mockGetSystemSettingUC{err: errors.NewNotFoundError("setting not found")}, nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/system-admin/settings/missing", nil)
	testutil.SetURLParam(c, "key", "missing")

	handler.Get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSystemSettingHandler_Delete(t *testing.T) {
	del := &mockDeleteSystemSettingUC{}
	handler := newSystemHandler(nil, nil, nil, nil, del, nil)

	c, _ := testutil.NewTestContext(http.MethodDelete, "/system-admin/settings/legacy", nil)
	testutil.SetURLParam(c, "key", "legacy")

	handler.Delete(c)

	assert.Equal(t, http.StatusNoContent, c.Writer.Status())
	assert.Equal(t, "legacy", del.key)
}

func TestSystemSettingHandler_ListPublic(t *testing.T) {
	handler := newSystemHandler(nil, nil, nil, nil, nil, &mockListPublicUC{result: map[string]string{"site_name": "Mero Jugx"}})

	c, w := testutil.NewTestContext(http.MethodGet, "/settings/public", nil)

	handler.ListPublic(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.JSONEq(t, `{"site_name":"Mero Jugx"}`, string(resp.Data))
}
