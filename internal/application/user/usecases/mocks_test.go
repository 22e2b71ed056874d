package usecases

import (
	"context"
	"time"

	"github.com/merojugx/mero/internal/domain/user"
)

type memoryUsers struct {
	items   map[string]*user.User
	updates int
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
	return nil, user.ErrUserNotFound
}

func (m *memoryUsers) Update(ctx context.Context, u *user.User) error {
	m.updates++
	m.items[u.ID()] = u
	return nil
}

func (m *memoryUsers) Count(ctx context.Context) (int64, error)             { return int64(len(m.items)), nil }
func (m *memoryUsers) CountSystemAdmins(ctx context.Context) (int64, error) { return 0, nil }

type mockSessionRepository struct {
	user.SessionRepository
	DeleteExpiredFunc func(ctx context.Context, now time.Time) (int64, error)
}

func (m *mockSessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	return m.DeleteExpiredFunc(ctx, now)
}

func mfaUser(id, secret string, backupHashes []string) *user.User {
	now := time.Now()
	u := user.ReconstructUser(user.Snapshot{
		ID:            id,
		Email:         id + "@example.com",
		Status:        user.StatusActive,
		EmailVerified: true,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if secret != "" {
		u.EnableMFA(secret, backupHashes)
	}
	return u
}
