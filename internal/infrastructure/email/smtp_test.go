package email

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"github.com/merojugx/mero/internal/shared/logger"
)

type sentMessage struct {
	from    string
	to      []string
	subject string
	body    string
}

func capture(t *testing.T, sent *[]sentMessage) gomail.SendFunc {
	return func(from string, to []string, msg io.WriterTo) error {
		m, ok := msg.(*gomail.Message)
		require.True(t, ok)

		var buf bytes.Buffer
		_, err := msg.WriteTo(&buf)
		require.NoError(t, err)
		// Undo quoted-printable soft breaks and escaped '='.
		body := strings.ReplaceAll(buf.String(), "=\r\n", "")
		body = strings.ReplaceAll(body, "=3D", "=")

		*sent = append(*sent, sentMessage{from: from, to: to, subject: m.GetHeader("Subject")[0], body: body})
		return nil
	}
}

func testConfig() SMTPConfig {
	return SMTPConfig{
		FromAddress: "noreply@merojugx.com",
		FromName:    "Mero Jugx",
		LinkBaseURL: "https://app.merojugx.com",
	}
}

func TestSMTPEmailService_Links(t *testing.T) {
	var sent []sentMessage
	svc := NewEmailService(testConfig(), capture(t, &sent))

	require.NoError(t, svc.SendVerificationEmail("ada@example.com", "abc123"))
	require.NoError(t, svc.SendPasswordResetEmail("ada@example.com", "def456"))
	require.NoError(t, svc.SendPasswordChangedEmail("ada@example.com"))
	require.Len(t, sent, 3)

	assert.Equal(t, "noreply@merojugx.com", sent[0].from)
	assert.Equal(t, []string{"ada@example.com"}, sent[0].to)
	assert.Equal(t, "Verify Your Email Address", sent[0].subject)
	assert.Contains(t, sent[0].body, "https://app.merojugx.com/verify-email?token=abc123")

	assert.Equal(t, "Reset Your Password", sent[1].subject)
	assert.Contains(t, sent[1].body, "https://app.merojugx.com/reset-password?token=def456")

	assert.Equal(t, "Password Changed Successfully", sent[2].subject)
	assert.NotContains(t, sent[2].body, "token=")
}

func TestSMTPEmailService_WrapsSendFailure(t *testing.T) {
	svc := NewEmailService(testConfig(), gomail.SendFunc(func(string, []string, io.WriterTo) error {
		return errors.New("connection refused")
	}))

	err := svc.SendPasswordResetEmail("ada@example.com", "tok")
	assert.ErrorContains(t, err, "connection refused")
}

func TestLogEmailService(t *testing.T) {
	svc := NewLogEmailService(logger.Nop())
	assert.NoError(t, svc.SendVerificationEmail("ada@example.com", "tok"))
	assert.NoError(t, svc.SendPasswordResetEmail("ada@example.com", "tok"))
	assert.NoError(t, svc.SendPasswordChangedEmail("ada@example.com"))
}
