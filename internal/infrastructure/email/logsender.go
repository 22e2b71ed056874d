package email

import "github.com/merojugx/mero/internal/shared/logger"

// LogEmailService stands in when no SMTP host is configured. It records
// who would have been mailed; tokens are never logged.
type LogEmailService struct {
	logger logger.Interface
}

func NewLogEmailService(logger logger.Interface) *LogEmailService {
	return &LogEmailService{logger: logger}
}

func (s *LogEmailService) SendVerificationEmail(to, _ string) error {
	s.logger.Infow("email delivery disabled, verification email not sent", "to", to)
	return nil
}

func (s *LogEmailService) SendPasswordResetEmail(to, _ string) error {
	s.logger.Infow("email delivery disabled, password reset email not sent", "to", to)
	return nil
}

func (s *LogEmailService) SendPasswordChangedEmail(to string) error {
	s.logger.Infow("email delivery disabled, password changed email not sent", "to", to)
	return nil
}
