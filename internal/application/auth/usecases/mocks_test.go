package usecases

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/merojugx/mero/internal/domain/organization"
	"github.com/merojugx/mero/internal/domain/role"
	"github.com/merojugx/mero/internal/domain/user"
	"github.com/merojugx/mero/internal/shared/authorization"
	"github.com/merojugx/mero/internal/shared/id"
)

type memoryUsers struct {
	items map[string]*user.User
}

func newMemoryUsers(list ...*user.User) *memoryUsers {
	m := &memoryUsers{items: map[string]*user.User{}}
	for _, u := range list {
		m.items[u.ID()] = u
	}
	return m
}

func (m *memoryUsers) Create(ctx context.Context, u *user.User) error {
	for _, existing := range m.items {
		if existing.Email() == u.Email() {
			return user.ErrEmailTaken
		}
	}
	m.items[u.ID()] = u
	return nil
}

func (m *memoryUsers) GetByID(ctx context.Context, id string) (*user.User, error) {
	u, ok := m.items[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

func (m *memoryUsers) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	for _, u := range m.items {
		if u.Email() == email {
			return u, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (m *memoryUsers) Update(ctx context.Context, u *user.User) error {
	m.items[u.ID()] = u
	return nil
}

func (m *memoryUsers) Count(ctx context.Context) (int64, error)             { return int64(len(m.items)), nil }
func (m *memoryUsers) CountSystemAdmins(ctx context.Context) (int64, error) { return 0, nil }

type memorySessions struct {
	items map[string]*user.Session
}

func newMemorySessions(list ...*user.Session) *memorySessions {
	m := &memorySessions{items: map[string]*user.Session{}}
	for _, s := range list {
		m.items[s.ID()] = s
	}
	return m
}

func (m *memorySessions) Create(ctx context.Context, s *user.Session) error {
	m.items[s.ID()] = s
	return nil
}

func (m *memorySessions) GetByID(ctx context.Context, id string) (*user.Session, error) {
	s, ok := m.items[id]
	if !ok {
		return nil, user.ErrSessionNotFound
	}
	return s, nil
}

func (m *memorySessions) Update(ctx context.Context, s *user.Session) error {
	m.items[s.ID()] = s
	return nil
}

func (m *memorySessions) CountActive(ctx context.Context, now time.Time) (int64, error) {
	return int64(len(m.active())), nil
}

func (m *memorySessions) RevokeAllForUser(ctx context.Context, userID string, now time.Time) (int64, error) {
	var n int64
	for _, s := range m.active() {
		if s.UserID() == userID {
			s.Revoke()
			n++
		}
	}
	return n, nil
}

func (m *memorySessions) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	return 0, nil
}

func (m *memorySessions) active() []*user.Session {
	var out []*user.Session
	for _, s := range m.items {
		if s.IsActive() {
			out = append(out, s)
		}
	}
	return out
}

// only returns the single stored session.
func (m *memorySessions) only() *user.Session {
	for _, s := range m.items {
		return s
	}
	return nil
}

type memoryOrganizations struct {
	orgs    map[string]*organization.Organization
	members map[string]*organization.Member
}

func newMemoryOrganizations(list ...*organization.Organization) *memoryOrganizations {
	m := &memoryOrganizations{
		orgs:    map[string]*organization.Organization{},
		members: map[string]*organization.Member{},
	}
	for _, o := range list {
		m.orgs[o.ID()] = o
	}
	return m
}

func (m *memoryOrganizations) Create(ctx context.Context, org *organization.Organization) error {
	for _, o := range m.orgs {
		if o.Slug() == org.Slug() {
			return organization.ErrSlugTaken
		}
	}
	m.orgs[org.ID()] = org
	return nil
}

func (m *memoryOrganizations) GetByID(ctx context.Context, id string) (*organization.Organization, error) {
	o, ok := m.orgs[id]
	if !ok {
		return nil, organization.ErrOrganizationNotFound
	}
	return o, nil
}

func (m *memoryOrganizations) GetBySlug(ctx context.Context, slug string) (*organization.Organization, error) {
	for _, o := range m.orgs {
		if o.Slug() == slug {
			return o, nil
		}
	}
	return nil, organization.ErrOrganizationNotFound
}

func (m *memoryOrganizations) Update(ctx context.Context, org *organization.Organization) error {
	m.orgs[org.ID()] = org
	return nil
}

func (m *memoryOrganizations) Count(ctx context.Context) (int64, error) {
	return int64(len(m.orgs)), nil
}

func (m *memoryOrganizations) Add(ctx context.Context, organizationID, userID, roleID string) (*organization.Member, error) {
	return m.addWithStatus(organizationID, userID, roleID, "active"), nil
}

func (m *memoryOrganizations) addWithStatus(organizationID, userID, roleID, status string) *organization.Member {
	member := organization.ReconstructMember(id.New(), organizationID, userID, roleID, status, time.Now())
	m.members[organizationID+"|"+userID] = member
	return member
}

func (m *memoryOrganizations) Get(ctx context.Context, organizationID, userID string) (*organization.Member, error) {
	member, ok := m.members[organizationID+"|"+userID]
	if !ok {
		return nil, organization.ErrMemberNotFound
	}
	return member, nil
}

type memoryRoles struct {
	role.Repository
	created []*role.Role
}

func (m *memoryRoles) Create(ctx context.Context, r *role.Role) error {
	m.created = append(m.created, r)
	return nil
}

type memoryActionTokens struct {
	items []*user.ActionToken
	err   error
}

func (m *memoryActionTokens) Create(ctx context.Context, t *user.ActionToken) error {
	if m.err != nil {
		return m.err
	}
	m.items = append(m.items, t)
	return nil
}

func (m *memoryActionTokens) GetByHash(ctx context.Context, purpose user.TokenPurpose, tokenHash string) (*user.ActionToken, error) {
	for _, t := range m.items {
		if t.Purpose() == purpose && t.TokenHash() == tokenHash {
			return t, nil
		}
	}
	return nil, user.ErrActionTokenNotFound
}

func (m *memoryActionTokens) Update(ctx context.Context, t *user.ActionToken) error { return nil }

func (m *memoryActionTokens) InvalidateForUser(ctx context.Context, userID string, purpose user.TokenPurpose, now time.Time) error {
	for _, t := range m.items {
		if t.UserID() == userID && t.Purpose() == purpose && t.UsedAt() == nil {
			_ = t.Use()
		}
	}
	return nil
}

// inlineTx runs fn directly; rollback is not modelled.
type inlineTx struct{}

func (inlineTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type failingTx struct{ err error }

func (f failingTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return f.err
}

// plainHasher treats the stored hash as "hashed:<password>".
type plainHasher struct{}

func (plainHasher) Hash(secret string) (string, error) { return "hashed:" + secret, nil }

func (plainHasher) Verify(secret, hash string) error {
	if hash != "hashed:"+secret {
		return errors.New("mismatch")
	}
	return nil
}

// fakeTokens encodes the subject into the token text so ParseRefresh can
// read it back.
type fakeTokens struct {
	issued int
}

func (f *fakeTokens) IssueForOrganization(userID, sessionID, organizationID string) (*TokenPair, error) {
	f.issued++
	return &TokenPair{
		AccessToken:  fmt.Sprintf("access|%s|%s|%s", userID, sessionID, organizationID),
		RefreshToken: fmt.Sprintf("refresh|%s|%s|%d", userID, sessionID, f.issued),
		ExpiresIn:    900,
	}, nil
}

func (f *fakeTokens) IssueSystemAdmin(userID, sessionID string, role authorization.SystemAdminRole) (*TokenPair, error) {
	f.issued++
	return &TokenPair{
		AccessToken:  fmt.Sprintf("access|%s|%s|%s", userID, sessionID, role),
		RefreshToken: fmt.Sprintf("refresh|%s|%s|%d", userID, sessionID, f.issued),
		ExpiresIn:    900,
	}, nil
}

func (f *fakeTokens) ParseRefresh(token string) (*RefreshClaims, error) {
	parts := strings.Split(token, "|")
	if len(parts) != 4 || parts[0] != "refresh" {
		return nil, errors.New("not a refresh token")
	}
	return &RefreshClaims{UserID: parts[1], SessionID: parts[2]}, nil
}

// sequentialLinks hands out link-1, link-2, ... hashed as "digest:<plain>".
type sequentialLinks struct {
	n int
}

func (s *sequentialLinks) Generate() (string, string, error) {
	s.n++
	plain := fmt.Sprintf("link-%d", s.n)
	return plain, s.Hash(plain), nil
}

func (s *sequentialLinks) Hash(plain string) string { return "digest:" + plain }

type sentEmail struct {
	kind  string
	to    string
	token string
}

type recordingMailer struct {
	sent []sentEmail
	err  error
}

func (r *recordingMailer) SendVerificationEmail(to, token string) error {
	r.sent = append(r.sent, sentEmail{kind: "verify", to: to, token: token})
	return r.err
}

func (r *recordingMailer) SendPasswordResetEmail(to, token string) error {
	r.sent = append(r.sent, sentEmail{kind: "reset", to: to, token: token})
	return r.err
}

func (r *recordingMailer) SendPasswordChangedEmail(to string) error {
	r.sent = append(r.sent, sentEmail{kind: "changed", to: to})
	return r.err
}

// fixedTOTP accepts exactly one code.
type fixedTOTP struct{ code string }

func (f fixedTOTP) Validate(code, secret string) bool { return code == f.code }

// plainBackupCodes stores backup codes as "backup:<code>".
type plainBackupCodes struct{}

func (plainBackupCodes) Match(code string, hashes []string) int {
	for i, h := range hashes {
		if h == "backup:"+code {
			return i
		}
	}
	return -1
}

func member(email string, verified bool) *user.User {
	now := time.Now()
	return user.ReconstructUser(user.Snapshot{
		ID:            id.New(),
		Email:         email,
		PasswordHash:  "hashed:correct horse",
		FirstName:     "Sita",
		LastName:      "Sharma",
		Status:        user.StatusActive,
		EmailVerified: verified,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
}

func newOrg(name string) *organization.Organization {
	o, err := organization.NewOrganization(name, "")
	if err != nil {
		panic(err)
	}
	return o
}
