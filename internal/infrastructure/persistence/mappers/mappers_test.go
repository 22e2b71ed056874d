package mappers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merojugx/mero/internal/domain/ticket"
	"github.com/merojugx/mero/internal/domain/user"
	"github.com/merojugx/mero/internal/shared/authorization"
)

func TestCommentAttachmentEncoding(t *testing.T) {
	m := NewTicketMapper()

	c, err := ticket.NewComment("t1", "u1", "body", nil, false)
	require.NoError(t, err)
	model, err := m.CommentToModel(c)
	require.NoError(t, err)
	assert.Nil(t, model.AttachmentURLs)

	c, err = ticket.NewComment("t1", "u1", "body", []string{"https://a.example/1", "https://a.example/2"}, true)
	require.NoError(t, err)
	model, err = m.CommentToModel(c)
	require.NoError(t, err)
	assert.JSONEq(t, `["https://a.example/1","https://a.example/2"]`, string(model.AttachmentURLs))

	back, err := m.CommentToDomain(model)
	require.NoError(t, err)
	assert.Equal(t, c.AttachmentURLs(), back.AttachmentURLs())
	assert.True(t, back.IsInternal())

	model.AttachmentURLs = []byte("{broken")
	_, err = m.CommentToDomain(model)
	assert.Error(t, err)
}

func TestUserMapperCarriesAdminAndMFA(t *testing.T) {
	m := NewUserMapper()

	u, err := user.NewUser("a@example.com", "hash", "A", "B")
	require.NoError(t, err)
	require.NoError(t, u.GrantSystemAdmin(authorization.SystemAdminRoleViewer))
	u.EnableMFA("SECRET", []string{"h1", "h2"})

	model, err := m.ToModel(u)
	require.NoError(t, err)
	require.NotNil(t, model.SystemAdminRole)
	assert.Equal(t, "viewer", *model.SystemAdminRole)
	require.NotNil(t, model.MFABackupCodes)

	back, err := m.ToDomain(model)
	require.NoError(t, err)
	assert.Equal(t, []string{"h1", "h2"}, back.MFABackupCodes())
	assert.Equal(t, authorization.SystemAdminRoleViewer, *back.SystemAdminRole())

	require.NoError(t, u.DisableMFA())
	model, err = m.ToModel(u)
	require.NoError(t, err)
	assert.Nil(t, model.MFABackupCodes)
	assert.Nil(t, model.MFASecret)
}
