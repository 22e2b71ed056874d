package user

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, u *User) error
	Count(ctx context.Context) (int64, error)
	CountSystemAdmins(ctx context.Context) (int64, error)
}

type SessionRepository interface {
	Create(ctx context.Context, s *Session) error
	GetByID(ctx context.Context, id string) (*Session, error)
	Update(ctx context.Context, s *Session) error
	CountActive(ctx context.Context, now time.Time) (int64, error)
	// RevokeAllForUser revokes every live session of the user and reports how many.
	RevokeAllForUser(ctx context.Context, userID string, now time.Time) (int64, error)
	// DeleteExpired removes sessions that expired before now and reports how many.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type ActionTokenRepository interface {
	Create(ctx context.Context, t *ActionToken) error
	// GetByHash returns ErrActionTokenNotFound for unknown hashes and other purposes.
	GetByHash(ctx context.Context, purpose TokenPurpose, tokenHash string) (*ActionToken, error)
	Update(ctx context.Context, t *ActionToken) error
	// InvalidateForUser marks every unused token of the purpose as used.
	InvalidateForUser(ctx context.Context, userID string, purpose TokenPurpose, now time.Time) error
}
