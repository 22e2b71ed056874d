// Package token generates and checks MFA backup codes. Only SHA-256 digests
// of the codes are stored.
package token

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"
)

const (
	// BackupCodeLength is the length of a backup code; TOTP codes are 6 digits.
	BackupCodeLength = 8

	backupAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

type BackupCodes interface {
	Generate(n int) (plain []string, hashes []string, err error)
	Hash(code string) string
	// Match returns the index of the hash matching code, or -1.
	Match(code string, hashes []string) int
}

type backupCodes struct{}

func NewBackupCodes() BackupCodes {
	return &backupCodes{}
}

func (b *backupCodes) Generate(n int) ([]string, []string, error) {
	plain := make([]string, 0, n)
	hashes := make([]string, 0, n)
	buf := make([]byte, BackupCodeLength)
	for range n {
		if _, err := rand.Read(buf); err != nil {
			return nil, nil, fmt.Errorf("failed to generate random bytes: %w", err)
		}
		code := make([]byte, BackupCodeLength)
		for i, v := range buf {
			code[i] = backupAlphabet[int(v)%len(backupAlphabet)]
		}
		plain = append(plain, string(code))
		hashes = append(hashes, b.Hash(string(code)))
	}
	return plain, hashes, nil
}

// Hash normalizes case and surrounding whitespace before digesting.
func (b *backupCodes) Hash(code string) string {
	sum := sha256.Sum256([]byte(strings.ToUpper(strings.TrimSpace(code))))
	return hex.EncodeToString(sum[:])
}

func (b *backupCodes) Match(code string, hashes []string) int {
	want := []byte(b.Hash(code))
	found := -1
	for i, h := range hashes {
		if subtle.ConstantTimeCompare(want, []byte(h)) == 1 && found < 0 {
			found = i
		}
	}
	return found
}
