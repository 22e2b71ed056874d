package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merojugx/mero/internal/infrastructure/config"
	"github.com/merojugx/mero/internal/infrastructure/database"
	"github.com/merojugx/mero/internal/infrastructure/migration"
	sharedConfig "github.com/merojugx/mero/internal/shared/config"
	"github.com/merojugx/mero/internal/shared/logger"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: sharedConfig.ServerConfig{
			Mode:         "test",
			AllowedHosts: []string{"api.merojugx.com", ".dev.merojugx.com"},
		},
		Database: sharedConfig.DatabaseConfig{Driver: sharedConfig.DriverSQLite, Database: ":memory:"},
		Auth: sharedConfig.AuthConfig{
			Password: sharedConfig.PasswordConfig{BcryptCost: 4},
			JWT:      sharedConfig.JWTConfig{Secret: "container-test-secret", AccessExpMinutes: 15, RefreshExpDays: 7},
			MFA:      sharedConfig.MFAConfig{Issuer: "Mero Jugx"},
		},
		Scheduler: sharedConfig.SchedulerConfig{SessionCleanupMinutes: 60},
		Metrics:   sharedConfig.MetricsConfig{Enabled: true, Path: "/metrics"},
	}
}

func newTestContainer(t *testing.T) *Container {
	t.Helper()

	cfg := testConfig()
	gdb, err := database.Open(&cfg.Database)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	strategy, err := migration.NewGooseStrategy(sharedConfig.DriverSQLite, migration.WithLogger(logger.Nop()))
	require.NoError(t, err)
	require.NoError(t, strategy.Migrate(context.Background(), gdb))

	c, err := NewContainer(gdb, cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(c.Shutdown)
	return c
}

func serve(c *Container, method, target, host string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	req.Host = host
	w := httptest.NewRecorder()
	c.Engine().ServeHTTP(w, req)
	return w
}

func TestContainer_Routes(t *testing.T) {
	c := newTestContainer(t)

	tests := []struct {
		name   string
		method string
		target string
		host   string
		want   int
	}{
		{"health", http.MethodGet, "/health", "api.merojugx.com", http.StatusOK},
		{"health on dev subdomain", http.MethodGet, "/health", "tenant.dev.merojugx.com:3000", http.StatusOK},
		{"unknown host", http.MethodGet, "/health", "evil.example.com", http.StatusForbidden},
		{"metrics", http.MethodGet, "/metrics", "api.merojugx.com", http.StatusOK},
		{"public settings", http.MethodGet, "/api/v1/settings/public", "api.merojugx.com", http.StatusOK},
		{"app catalog", http.MethodGet, "/api/v1/apps", "api.merojugx.com", http.StatusOK},
		{"tickets need auth", http.MethodGet, "/api/v1/tickets", "api.merojugx.com", http.StatusUnauthorized},
		{"org routes need auth", http.MethodGet, "/api/v1/organizations/x/roles", "api.merojugx.com", http.StatusUnauthorized},
		{"admin stats need auth", http.MethodGet, "/api/v1/system-admin/stats", "api.merojugx.com", http.StatusUnauthorized},
		{"mfa needs auth", http.MethodPost, "/api/v1/mfa/disable", "api.merojugx.com", http.StatusUnauthorized},
		{"mfa setup needs auth", http.MethodPost, "/api/v1/mfa/setup/initialize", "api.merojugx.com", http.StatusUnauthorized},
		{"logout needs auth", http.MethodPost, "/api/v1/auth/logout", "api.merojugx.com", http.StatusUnauthorized},
		{"verify email without token", http.MethodGet, "/api/v1/auth/verify-email", "api.merojugx.com", http.StatusBadRequest},
		{"swagger ui", http.MethodGet, "/swagger/index.html", "api.merojugx.com", http.StatusOK},
		{"swagger document", http.MethodGet, "/swagger/doc.json", "api.merojugx.com", http.StatusOK},
		{"unknown route", http.MethodGet, "/api/v1/nope", "api.merojugx.com", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(c, tt.method, tt.target, tt.host)
			assert.Equal(t, tt.want, w.Code, w.Body.String())
		})
	}
}

func TestContainer_AdminLoginRejectsBadCredentials(t *testing.T) {
	c := newTestContainer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/system-admin/auth/login",
		strings.NewReader(`{"email":"nobody@merojugx.com","password":"wrong-password"}`))
	req.Host = "api.merojugx.com"
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	c.Engine().ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Result().Cookies())
}

func TestContainer_StartRegistersCleanupJob(t *testing.T) {
	c := newTestContainer(t)

	require.NoError(t, c.Start())
	assert.True(t, c.schedulerManager.IsStarted())
	assert.Len(t, c.schedulerManager.Jobs(), 1)
	assert.Nil(t, c.Redis())
}

// sendJSON issues a request against the container. An empty token sends no
// Authorization header.
func sendJSON(t *testing.T, c *Container, method, target, token string, body any) (*httptest.ResponseRecorder, json.RawMessage) {
	t.Helper()
	var payload *strings.Reader
	if body == nil {
		payload = strings.NewReader("")
	} else {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		payload = strings.NewReader(string(raw))
	}
	req := httptest.NewRequest(method, target, payload)
	req.Host = "api.merojugx.com"
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	c.Engine().ServeHTTP(w, req)

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &envelope)
	return w, envelope.Data
}

type tenantSession struct {
	OrganizationID string
	AccessToken    string
	RefreshToken   string
}

// registerAndLogin registers an organization, marks the owner verified and
// logs in to it.
func registerAndLogin(t *testing.T, c *Container) tenantSession {
	t.Helper()

	w, data := sendJSON(t, c, http.MethodPost, "/api/v1/auth/organization/register", "", map[string]string{
		"name":       "Himalayan Traders",
		"email":      "owner@merojugx.com",
		"password":   "correct-horse",
		"first_name": "Sita",
		"last_name":  "Sharma",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var registered struct {
		Organization struct {
			ID   string `json:"id"`
			Slug string `json:"slug"`
		} `json:"organization"`
	}
	require.NoError(t, json.Unmarshal(data, &registered))
	assert.Equal(t, "himalayan-traders", registered.Organization.Slug)

	body := map[string]string{
		"email":           "owner@merojugx.com",
		"password":        "correct-horse",
		"organization_id": registered.Organization.ID,
	}
	w, _ = sendJSON(t, c, http.MethodPost, "/api/v1/auth/login", "", body)
	require.Equal(t, http.StatusForbidden, w.Code, "unverified owners cannot log in")

	require.NoError(t, c.db.Exec("UPDATE users SET email_verified = ?", true).Error)

	w, data = sendJSON(t, c, http.MethodPost, "/api/v1/auth/login", "", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var tokens struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	require.NoError(t, json.Unmarshal(data, &tokens))
	require.NotEmpty(t, tokens.AccessToken)

	return tenantSession{
		OrganizationID: registered.Organization.ID,
		AccessToken:    tokens.AccessToken,
		RefreshToken:   tokens.RefreshToken,
	}
}

func TestContainer_TenantLoginManagesOrganization(t *testing.T) {
	c := newTestContainer(t)
	s := registerAndLogin(t, c)

	w, data := sendJSON(t, c, http.MethodPut, "/api/v1/organizations/"+s.OrganizationID+"/slug", s.AccessToken, map[string]string{"slug": "himalaya-co"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, string(data), "himalaya-co")

	w, _ = sendJSON(t, c, http.MethodGet, "/api/v1/organizations/"+s.OrganizationID+"/roles", s.AccessToken, nil)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w, _ = sendJSON(t, c, http.MethodGet, "/api/v1/mfa/check", s.AccessToken, nil)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestContainer_RefreshRotatesTokens(t *testing.T) {
	c := newTestContainer(t)
	s := registerAndLogin(t, c)

	w, data := sendJSON(t, c, http.MethodPost, "/api/v1/auth/refresh", "", map[string]string{"refresh_token": s.RefreshToken})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var rotated struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	require.NoError(t, json.Unmarshal(data, &rotated))
	assert.NotEqual(t, s.RefreshToken, rotated.RefreshToken)

	w, _ = sendJSON(t, c, http.MethodPut, "/api/v1/organizations/"+s.OrganizationID+"/slug", rotated.AccessToken, map[string]string{"slug": "rotated-slug"})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w, _ = sendJSON(t, c, http.MethodPost, "/api/v1/auth/refresh", "", map[string]string{"refresh_token": s.RefreshToken})
	assert.Equal(t, http.StatusUnauthorized, w.Code, "a rotated refresh token works once")

	w, _ = sendJSON(t, c, http.MethodPost, "/api/v1/auth/refresh", "", map[string]string{"refresh_token": rotated.RefreshToken})
	assert.Equal(t, http.StatusUnauthorized, w.Code, "replay ended the session")
}

func TestContainer_LogoutRevokesAccessToken(t *testing.T) {
	c := newTestContainer(t)
	s := registerAndLogin(t, c)

	w, _ := sendJSON(t, c, http.MethodPost, "/api/v1/auth/logout", s.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w, _ = sendJSON(t, c, http.MethodGet, "/api/v1/organizations/"+s.OrganizationID+"/roles", s.AccessToken, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = sendJSON(t, c, http.MethodPost, "/api/v1/auth/refresh", "", map[string]string{"refresh_token": s.RefreshToken})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
