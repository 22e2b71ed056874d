package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merojugx/mero/internal/shared/biztime"
)

func TestJWTRoundTripCarriesSystemAdminClaims(t *testing.T) {
	svc := NewJWTService("test-secret", 15, 7)

	pair, err := svc.Generate(Subject{
		UserID:          "user-1",
		SessionID:       "sess-1",
		IsSystemAdmin:   true,
		SystemAdminRole: "super_admin",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(900), pair.ExpiresIn)

	claims, err := svc.VerifyAccess(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "sess-1", claims.SessionID)
	assert.Nil(t, claims.OrganizationID)
	assert.True(t, claims.IsSystemAdmin)
	assert.Equal(t, "super_admin", claims.SystemAdminRole)

	_, err = svc.VerifyAccess(pair.RefreshToken)
	assert.ErrorIs(t, err, ErrWrongTokenType)
}

func TestJWTVerifyRejects(t *testing.T) {
	svc := NewJWTService("test-secret", 15, 7)
	org := "org-1"
	pair, err := svc.Generate(Subject{UserID: "u", SessionID: "s", OrganizationID: &org})
	require.NoError(t, err)

	t.Run("other secret", func(t *testing.T) {
		_, err := NewJWTService("other", 15, 7).Verify(pair.AccessToken)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		restore := biztime.Now
		biztime.Now = func() time.Time { return time.Now().UTC().Add(time.Hour) }
		defer func() { biztime.Now = restore }()

		_, err := svc.Verify(pair.AccessToken)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.Verify("not.a.token")
		assert.Error(t, err)
	})
}

func TestJWTVerifyRefresh(t *testing.T) {
	svc := NewJWTService("test-secret", 15, 7)
	org := "org-1"
	pair, err := svc.Generate(Subject{UserID: "u", SessionID: "s", OrganizationID: &org})
	require.NoError(t, err)

	claims, err := svc.VerifyRefresh(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "s", claims.SessionID)
	assert.Equal(t, TokenTypeRefresh, claims.TokenType)

	_, err = svc.VerifyRefresh(pair.AccessToken)
	assert.ErrorIs(t, err, ErrWrongTokenType)
	_, err = svc.VerifyAccess(pair.RefreshToken)
	assert.ErrorIs(t, err, ErrWrongTokenType)
}

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptPasswordHasher(4)

	hash, err := h.Hash("correct horse")
	require.NoError(t, err)
	assert.NoError(t, h.Verify("correct horse", hash))
	assert.Error(t, h.Verify("wrong horse", hash))

	long := strings.Repeat("r", 200)
	longHash, err := h.Hash(long)
	require.NoError(t, err)
	assert.NoError(t, h.Verify(long, longHash))
	assert.Error(t, h.Verify(long[:199]+"x", longHash))
}

func TestTOTPVerifier(t *testing.T) {
	v := NewTOTPVerifier("Mero Jugx")
	secret, url, err := v.NewSecret("admin@example.com")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "otpauth://totp/"), url)
	assert.Contains(t, url, "issuer=Mero")
	assert.Contains(t, url, "secret="+secret)

	code, err := v.CodeAt(secret, biztime.Now())
	require.NoError(t, err)

	assert.True(t, v.Validate(code, secret))
	assert.False(t, v.Validate("000000x", secret))

	stale, err := v.CodeAt(secret, biztime.Now().Add(-10*time.Minute))
	require.NoError(t, err)
	if stale != code {
		assert.False(t, v.Validate(stale, secret))
	}
}
