package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

type BcryptPasswordHasher struct {
	cost int
}

func NewBcryptPasswordHasher(cost int) *BcryptPasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptPasswordHasher{cost: cost}
}

// Hash bcrypt-hashes secret. Inputs longer than bcrypt's 72 byte limit
// (refresh tokens) are pre-hashed with SHA-256 first; Verify does the same.
func (h *BcryptPasswordHasher) Hash(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(prepare(secret), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to generate hash: %w", err)
	}
	return string(hash), nil
}

// Verify reports a single generic error for every failure cause.
func (h *BcryptPasswordHasher) Verify(secret, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), prepare(secret)); err != nil {
		return fmt.Errorf("password verification failed")
	}
	return nil
}

func prepare(secret string) []byte {
	if len(secret) <= 72 {
		return []byte(secret)
	}
	sum := sha256.Sum256([]byte(secret))
	return []byte(hex.EncodeToString(sum[:]))
}
