package usecases

import "context"

// CodeValidator checks a TOTP code against a secret.
type CodeValidator interface {
	Validate(code, secret string) bool
}

// BackupCodeMatcher finds the stored hash matching a backup code, or -1.
type BackupCodeMatcher interface {
	Match(code string, hashes []string) int
}

type DisableMFAExecutor interface {
	Execute(ctx context.Context, cmd DisableMFACommand) error
}

// SecretGenerator creates a TOTP secret and the otpauth:// URL that
// authenticator apps import.
type SecretGenerator interface {
	NewSecret(accountName string) (secret, otpauthURL string, err error)
}

// BackupCodeGenerator returns n plain backup codes with their storage hashes.
type BackupCodeGenerator interface {
	Generate(n int) (plain []string, hashes []string, err error)
}

type GetMFAStatusExecutor interface {
	Execute(ctx context.Context, cmd GetMFAStatusCommand) (*MFAStatusResult, error)
}

type SetupMFAExecutor interface {
	Execute(ctx context.Context, cmd SetupMFACommand) (*SetupMFAResult, error)
}

type VerifyMFASetupExecutor interface {
	Execute(ctx context.Context, cmd VerifyMFASetupCommand) (*BackupCodesResult, error)
}

type RegenerateBackupCodesExecutor interface {
	Execute(ctx context.Context, cmd RegenerateBackupCodesCommand) (*BackupCodesResult, error)
}
