// Package id generates and checks entity identifiers. All primary keys are
// UUID strings.
package id

import (
	"github.com/google/uuid"
)

// New returns a time-ordered UUIDv7, falling back to v4 if the clock source fails.
func New() string {
	if u, err := uuid.NewV7(); err == nil {
		return u.String()
	}
	return uuid.NewString()
}

func IsValid(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
