package token

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

const opaqueTokenBytes = 32

// OpaqueTokens mints the secrets embedded in emailed links.
type OpaqueTokens struct{}

func NewOpaqueTokens() *OpaqueTokens {
	return &OpaqueTokens{}
}

// Generate returns a hex encoded random token and its storage digest.
func (o *OpaqueTokens) Generate() (plain string, hash string, err error) {
	buf := make([]byte, opaqueTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	plain = hex.EncodeToString(buf)
	return plain, o.Hash(plain), nil
}

func (o *OpaqueTokens) Hash(plain string) string {
	sum := sha256.Sum256([]byte(plain))
	return hex.EncodeToString(sum[:])
}
