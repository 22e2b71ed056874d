package adapters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merojugx/mero/internal/infrastructure/auth"
	"github.com/merojugx/mero/internal/shared/authorization"
)

func TestTokenIssuerAdapter_SystemAdminClaims(t *testing.T) {
	jwt := auth.NewJWTService("secret", 15, 7)
	pair, err := NewTokenIssuerAdapter(jwt).IssueSystemAdmin("user-1", "sess-1", authorization.SystemAdminRoleSupport)
	require.NoError(t, err)

	claims, err := jwt.VerifyAccess(pair.AccessToken)
	require.NoError(t, err)
	assert.True(t, claims.IsSystemAdmin)
	assert.Equal(t, "support", claims.SystemAdminRole)
	assert.Nil(t, claims.OrganizationID)
	assert.EqualValues(t, 900, pair.ExpiresIn)
}

func TestSessionTokenAdapter_OrganizationPair(t *testing.T) {
	jwt := auth.NewJWTService("secret", 15, 7)
	adapter := NewSessionTokenAdapter(jwt)

	pair, err := adapter.IssueForOrganization("user-1", "sess-1", "org-1")
	require.NoError(t, err)

	access, err := jwt.VerifyAccess(pair.AccessToken)
	require.NoError(t, err)
	require.NotNil(t, access.OrganizationID)
	assert.Equal(t, "org-1", *access.OrganizationID)
	assert.False(t, access.IsSystemAdmin)

	claims, err := adapter.ParseRefresh(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "sess-1", claims.SessionID)
	assert.Equal(t, "org-1", *claims.OrganizationID)

	_, err = adapter.ParseRefresh(pair.AccessToken)
	assert.Error(t, err, "access tokens cannot be used to refresh")
}
