package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merojugx/mero/internal/domain/role"
	"github.com/merojugx/mero/internal/domain/user"
	apperrors "github.com/merojugx/mero/internal/shared/errors"
	"github.com/merojugx/mero/internal/shared/logger"
)

type registerFixture struct {
	orgs    *memoryOrganizations
	roles   *memoryRoles
	users   *memoryUsers
	tokens  *memoryActionTokens
	mailer  *recordingMailer
	useCase *RegisterOrganizationUseCase
}

func newRegisterFixture(users ...*user.User) *registerFixture {
	f := &registerFixture{
		orgs:   newMemoryOrganizations(),
		roles:  &memoryRoles{},
		users:  newMemoryUsers(users...),
		tokens: &memoryActionTokens{},
		mailer: &recordingMailer{},
	}
	f.useCase = NewRegisterOrganizationUseCase(f.orgs, f.orgs, f.roles, f.users, f.tokens, plainHasher{}, &sequentialLinks{}, f.mailer, inlineTx{}, logger.Nop())
	return f
}

func validRegistration() RegisterOrganizationCommand {
	return RegisterOrganizationCommand{
		Name:           "Himalayan Traders",
		OwnerEmail:     " Owner@Example.com ",
		OwnerPassword:  "correct horse",
		OwnerFirstName: "Sita",
		OwnerLastName:  "Sharma",
	}
}

func TestRegisterOrganization_Success(t *testing.T) {
	f := newRegisterFixture()

	result, err := f.useCase.Execute(context.Background(), validRegistration())
	require.NoError(t, err)

	assert.Equal(t, "himalayan-traders", result.Organization.Slug)
	assert.Equal(t, "owner@example.com", result.Owner.Email)
	assert.False(t, result.Owner.EmailVerified)

	owner := f.users.items[result.Owner.ID]
	require.NotNil(t, owner)
	assert.Equal(t, "hashed:correct horse", owner.PasswordHash())

	require.Len(t, f.roles.created, 2)
	ownerRole := f.roles.created[0]
	assert.True(t, ownerRole.IsOwner())
	assert.Equal(t, role.SlugAdmin, f.roles.created[1].Slug())
	for _, r := range f.roles.created {
		assert.Equal(t, result.Organization.ID, r.OrganizationID())
	}

	m, err := f.orgs.Get(context.Background(), result.Organization.ID, owner.ID())
	require.NoError(t, err)
	assert.Equal(t, ownerRole.ID(), m.RoleID())
	assert.True(t, m.IsActive())

	require.Len(t, f.tokens.items, 1)
	assert.Equal(t, user.PurposeEmailVerification, f.tokens.items[0].Purpose())
	assert.Equal(t, "digest:link-1", f.tokens.items[0].TokenHash())
	assert.Equal(t, []sentEmail{{kind: "verify", to: "owner@example.com", token: "link-1"}}, f.mailer.sent)
}

func TestRegisterOrganization_MailFailureDoesNotFail(t *testing.T) {
	f := newRegisterFixture()
	f.mailer.err = errors.New("smtp down")

	_, err := f.useCase.Execute(context.Background(), validRegistration())
	require.NoError(t, err)
	assert.Len(t, f.orgs.orgs, 1)
}

func TestRegisterOrganization_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RegisterOrganizationCommand)
		seed    func(*registerFixture)
		wantErr func(error) bool
	}{
		{name: "short password", mutate: func(c *RegisterOrganizationCommand) { c.OwnerPassword = "short" }, wantErr: apperrors.IsValidationError},
		{name: "missing name", mutate: func(c *RegisterOrganizationCommand) { c.Name = "  " }, wantErr: apperrors.IsValidationError},
		{name: "invalid slug", mutate: func(c *RegisterOrganizationCommand) { c.Slug = "not a slug!" }, wantErr: apperrors.IsValidationError},
		{name: "invalid email", mutate: func(c *RegisterOrganizationCommand) { c.OwnerEmail = "nobody" }, wantErr: apperrors.IsValidationError},
		{
			name: "email registered",
			seed: func(f *registerFixture) {
				u := member("owner@example.com", true)
				f.users.items[u.ID()] = u
			},
			wantErr: apperrors.IsConflictError,
		},
		{
			name: "slug taken",
			seed: func(f *registerFixture) {
				o := newOrg("Himalayan Traders")
				f.orgs.orgs[o.ID()] = o
			},
			wantErr: apperrors.IsConflictError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRegisterFixture()
			if tt.seed != nil {
				tt.seed(f)
			}
			cmd := validRegistration()
			if tt.mutate != nil {
				tt.mutate(&cmd)
			}
			_, err := f.useCase.Execute(context.Background(), cmd)
			assert.True(t, tt.wantErr(err), "unexpected error: %v", err)
			assert.Empty(t, f.mailer.sent)
		})
	}
}

func TestRegisterOrganization_TransactionFailure(t *testing.T) {
	f := newRegisterFixture()
	f.useCase.txMgr = failingTx{err: errors.New("deadlock")}

	_, err := f.useCase.Execute(context.Background(), validRegistration())
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeInternal, apperrors.GetAppError(err).Type)
	assert.Empty(t, f.tokens.items)
}

type loginFixture struct {
	user     *user.User
	orgs     *memoryOrganizations
	orgID    string
	sessions *memorySessions
	useCase  *LoginUseCase
}

func newLoginFixture(u *user.User) *loginFixture {
	org := newOrg("Himalayan Traders")
	f := &loginFixture{
		user:     u,
		orgs:     newMemoryOrganizations(org),
		orgID:    org.ID(),
		sessions: newMemorySessions(),
	}
	f.orgs.addWithStatus(org.ID(), u.ID(), "role-owner", "active")
	f.useCase = NewLoginUseCase(newMemoryUsers(u), f.sessions, f.orgs, f.orgs, plainHasher{}, &fakeTokens{}, fixedTOTP{code: "123456"}, plainBackupCodes{}, 7*24*time.Hour, logger.Nop())
	return f
}

func (f *loginFixture) login(password, mfaCode string) error {
	_, err := f.useCase.Execute(context.Background(), LoginCommand{
		Email:          "sita@example.com",
		Password:       password,
		OrganizationID: f.orgID,
		MFACode:        mfaCode,
		IPAddress:      "10.0.0.7",
	})
	return err
}

func TestLogin_BindsSessionToOrganization(t *testing.T) {
	f := newLoginFixture(member("sita@example.com", true))

	result, err := f.useCase.Execute(context.Background(), LoginCommand{
		Email:          "Sita@Example.com",
		Password:       "correct horse",
		OrganizationID: f.orgID,
		IPAddress:      "10.0.0.7",
		UserAgent:      "curl/8",
	})
	require.NoError(t, err)

	session := f.sessions.only()
	require.NotNil(t, session)
	require.NotNil(t, session.OrganizationID())
	assert.Equal(t, f.orgID, *session.OrganizationID())
	assert.False(t, session.IsSystemAdminSession())
	assert.Equal(t, hashRefreshToken(result.RefreshToken), session.RefreshTokenHash())
	assert.Equal(t, "10.0.0.7", session.IPAddress())

	assert.Equal(t, session.ID(), result.SessionID)
	assert.Equal(t, f.orgID, result.Organization.ID)
	assert.Equal(t, "access|"+f.user.ID()+"|"+session.ID()+"|"+f.orgID, result.AccessToken)
	assert.NotNil(t, f.user.LastLoginAt())
}

func TestLogin_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		user    *user.User
		setup   func(f *loginFixture, cmd *LoginCommand)
		wantErr func(error) bool
	}{
		{name: "missing organization", user: member("sita@example.com", true), setup: func(f *loginFixture, cmd *LoginCommand) { cmd.OrganizationID = "" }, wantErr: apperrors.IsBadRequestError},
		{name: "unknown email", user: member("sita@example.com", true), setup: func(f *loginFixture, cmd *LoginCommand) { cmd.Email = "ram@example.com" }, wantErr: apperrors.IsUnauthorizedError},
		{name: "wrong password", user: member("sita@example.com", true), setup: func(f *loginFixture, cmd *LoginCommand) { cmd.Password = "guess" }, wantErr: apperrors.IsUnauthorizedError},
		{name: "unverified email", user: member("sita@example.com", false), wantErr: apperrors.IsForbiddenError},
		{name: "unknown organization", user: member("sita@example.com", true), setup: func(f *loginFixture, cmd *LoginCommand) { cmd.OrganizationID = "org-404" }, wantErr: apperrors.IsNotFoundError},
		{
			name:  "not a member",
			user:  member("sita@example.com", true),
			setup: func(f *loginFixture, cmd *LoginCommand) {
				other := newOrg("Other Org")
				f.orgs.orgs[other.ID()] = other
				cmd.OrganizationID = other.ID()
			},
			wantErr: apperrors.IsForbiddenError,
		},
		{
			name:  "suspended membership",
			user:  member("sita@example.com", true),
			setup: func(f *loginFixture, cmd *LoginCommand) {
				f.orgs.addWithStatus(f.orgID, f.user.ID(), "role-owner", "suspended")
			},
			wantErr: apperrors.IsForbiddenError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newLoginFixture(tt.user)
			cmd := LoginCommand{Email: "sita@example.com", Password: "correct horse", OrganizationID: f.orgID}
			if tt.setup != nil {
				tt.setup(f, &cmd)
			}
			_, err := f.useCase.Execute(context.Background(), cmd)
			assert.True(t, tt.wantErr(err), "unexpected error: %v", err)
			assert.Empty(t, f.sessions.items)
		})
	}
}

func TestLogin_MFA(t *testing.T) {
	newMFAFixture := func() *loginFixture {
		u := member("sita@example.com", true)
		u.EnableMFA("JBSWY3DPEHPK3PXP", []string{"backup:AAAA2222", "backup:BBBB3333"})
		return newLoginFixture(u)
	}

	t.Run("code required", func(t *testing.T) {
		f := newMFAFixture()
		err := f.login("correct horse", "")
		assert.True(t, apperrors.IsUnauthorizedError(err))
		assert.Empty(t, f.sessions.items)
	})

	t.Run("totp accepted", func(t *testing.T) {
		f := newMFAFixture()
		err := f.login("correct horse", "123456")
		require.NoError(t, err)
		assert.Len(t, f.sessions.items, 1)
		assert.Len(t, f.user.MFABackupCodes(), 2)
	})

	t.Run("wrong totp", func(t *testing.T) {
		f := newMFAFixture()
		err := f.login("correct horse", "654321")
		assert.True(t, apperrors.IsUnauthorizedError(err))
	})

	t.Run("backup code is single use", func(t *testing.T) {
		f := newMFAFixture()
		err := f.login("correct horse", "BBBB3333")
		require.NoError(t, err)
		assert.Equal(t, []string{"backup:AAAA2222"}, f.user.MFABackupCodes())

		err = f.login("correct horse", "BBBB3333")
		assert.True(t, apperrors.IsUnauthorizedError(err))
	})
}
