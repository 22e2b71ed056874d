// Package email delivers account emails over SMTP.
package email

import (
	"fmt"
	"net/url"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	LinkBaseURL string // Base URL of the web app the links open, e.g. "https://app.merojugx.com"
}

type SMTPEmailService struct {
	config SMTPConfig
	send   func(m ...*gomail.Message) error
}

// NewSMTPEmailService dials the server for every message.
func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)
	return &SMTPEmailService{
		config: config,
		send:   dialer.DialAndSend,
	}
}

// NewEmailService hands messages to sender instead of dialing SMTP.
func NewEmailService(config SMTPConfig, sender gomail.Sender) *SMTPEmailService {
	return &SMTPEmailService{
		config: config,
		send: func(m ...*gomail.Message) error {
			return gomail.Send(sender, m...)
		},
	}
}

func (s *SMTPEmailService) SendVerificationEmail(to, token string) error {
	verificationURL := s.link("/verify-email", token)

	subject := "Verify Your Email Address"
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Welcome to Mero Jugx!</h2>
			<p>Please verify your email address by clicking the link below:</p>
			<p><a href="%s">Verify Email Address</a></p>
			<p>Or copy and paste this URL into your browser:</p>
			<p>%s</p>
			<p>This link will expire in 24 hours.</p>
		</body>
		</html>
	`, verificationURL, verificationURL)

	plainBody := fmt.Sprintf(`
Welcome to Mero Jugx!

Please verify your email address by visiting:
%s

This link will expire in 24 hours.
	`, verificationURL)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) SendPasswordResetEmail(to, token string) error {
	resetURL := s.link("/reset-password", token)

	subject := "Reset Your Password"
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Password Reset Request</h2>
			<p>We received a request to reset your password. Click the link below to reset it:</p>
			<p><a href="%s">Reset Password</a></p>
			<p>Or copy and paste this URL into your browser:</p>
			<p>%s</p>
			<p>This link will expire in 30 minutes.</p>
			<p>If you didn't request a password reset, please ignore this email.</p>
		</body>
		</html>
	`, resetURL, resetURL)

	plainBody := fmt.Sprintf(`
Password Reset Request

Visit the following URL to reset your password:
%s

This link will expire in 30 minutes.

If you didn't request a password reset, please ignore this email.
	`, resetURL)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) SendPasswordChangedEmail(to string) error {
	subject := "Password Changed Successfully"
	htmlBody := `
		<html>
		<body>
			<h2>Password Changed</h2>
			<p>Your password has been changed and every signed in device was logged out.</p>
			<p>If you didn't make this change, please contact support immediately.</p>
		</body>
		</html>
	`

	plainBody := `
Password Changed

Your password has been changed and every signed in device was logged out.

If you didn't make this change, please contact support immediately.
	`

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) link(path, token string) string {
	return fmt.Sprintf("%s%s?token=%s", s.config.LinkBaseURL, path, url.QueryEscape(token))
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.send(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
