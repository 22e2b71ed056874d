package auth

import (
	"fmt"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"

	"github.com/merojugx/mero/internal/shared/biztime"
)

// TOTPVerifier checks 6 digit RFC 6238 codes with one period of clock skew.
type TOTPVerifier struct {
	issuer string
}

func NewTOTPVerifier(issuer string) *TOTPVerifier {
	return &TOTPVerifier{issuer: issuer}
}

func (v *TOTPVerifier) Validate(code, secret string) bool {
	ok, err := totp.ValidateCustom(code, secret, biztime.Now(), totp.ValidateOpts{
		Period:    30,
		Skew:      1,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	})
	return err == nil && ok
}

// NewSecret creates an enrollment secret for accountName together with the
// otpauth:// URL authenticator apps scan.
func (v *TOTPVerifier) NewSecret(accountName string) (secret, otpauthURL string, err error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      v.issuer,
		AccountName: accountName,
		Period:      30,
		Digits:      otp.DigitsSix,
		Algorithm:   otp.AlgorithmSHA1,
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to generate totp secret: %w", err)
	}
	return key.Secret(), key.URL(), nil
}

// CodeAt returns the expected code for secret at t.
func (v *TOTPVerifier) CodeAt(secret string, t time.Time) (string, error) {
	return totp.GenerateCode(secret, t)
}
