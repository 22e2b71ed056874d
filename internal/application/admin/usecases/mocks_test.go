package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/merojugx/mero/internal/domain/user"
	"github.com/merojugx/mero/internal/shared/authorization"
)

type memoryUsers struct {
	items      map[string]*user.User
	UpdateFunc func(ctx context.Context, u *user.User) error
	updates    int
}

func newMemoryUsers(list ...*user.User) *memoryUsers {
	m := &memoryUsers{items: map[string]*user.User{}}
	for _, u := range list {
		m.items[u.ID()] = u
	}
	return m
}

func (m *memoryUsers) Create(ctx context.Context, u *user.User) error {
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
	m.updates++
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	m.items[u.ID()] = u
	return nil
}

func (m *memoryUsers) Count(ctx context.Context) (int64, error) {
	return int64(len(m.items)), nil
}

func (m *memoryUsers) CountSystemAdmins(ctx context.Context) (int64, error) {
	var n int64
	for _, u := range m.items {
		if u.IsSystemAdmin() {
			n++
		}
	}
	return n, nil
}

type memorySessions struct {
	created   []*user.Session
	active    int64
	activeErr error
	revoked   []string
}

func (m *memorySessions) Create(ctx context.Context, s *user.Session) error {
	m.created = append(m.created, s)
	return nil
}

func (m *memorySessions) GetByID(ctx context.Context, id string) (*user.Session, error) {
	for _, s := range m.created {
		if s.ID() == id {
			return s, nil
		}
	}
	return nil, user.ErrSessionNotFound
}

func (m *memorySessions) Update(ctx context.Context, s *user.Session) error { return nil }

func (m *memorySessions) CountActive(ctx context.Context, now time.Time) (int64, error) {
	return m.active, m.activeErr
}

func (m *memorySessions) RevokeAllForUser(ctx context.Context, userID string, now time.Time) (int64, error) {
	m.revoked = append(m.revoked, userID)
	var n int64
	for _, s := range m.created {
		if s.UserID() == userID && s.IsActive() {
			s.Revoke()
			n++
		}
	}
	return n, nil
}

func (m *memorySessions) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	return 0, nil
}

// plainHasher treats the stored hash as "hashed:<password>".
type plainHasher struct{}

func (plainHasher) Verify(secret, hash string) error {
	if hash != "hashed:"+secret {
		return errors.New("mismatch")
	}
	return nil
}

type fakeIssuer struct {
	subjects []string
	err      error
}

func (f *fakeIssuer) IssueSystemAdmin(userID, sessionID string, role authorization.SystemAdminRole) (*TokenPair, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.subjects = append(f.subjects, userID+"|"+sessionID+"|"+role.String())
	return &TokenPair{AccessToken: "access-" + sessionID, RefreshToken: "refresh-" + sessionID, ExpiresIn: 900}, nil
}

type recordingSyncer struct {
	grants map[string]string
	err    error
}

func (r *recordingSyncer) SetUserRole(userID, role string) error {
	if r.err != nil {
		return r.err
	}
	if r.grants == nil {
		r.grants = map[string]string{}
	}
	r.grants[userID] = role
	return nil
}

func adminUser(id, email string, role *authorization.SystemAdminRole, verified bool) *user.User {
	now := time.Now()
	return user.ReconstructUser(user.Snapshot{
		ID:              id,
		Email:           email,
		PasswordHash:    "hashed:correct horse",
		FirstName:       "Ada",
		LastName:        "Admin",
		Status:          user.StatusActive,
		EmailVerified:   verified,
		IsSystemAdmin:   role != nil,
		SystemAdminRole: role,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
}

func rolePtr(r authorization.SystemAdminRole) *authorization.SystemAdminRole { return &r }
