package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendEmailRequiresConfig(t *testing.T) {
	t.Setenv("EMAIL_PASSWORD", "")
	t.Setenv("SMTP_HOST", "")
	t.Setenv("SMTP_PORT", "")

	err := SendParcelBookedEmail("receiver@example.com", "sender@example.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email configuration not set")
}

func TestSendEmailReadsConfigAtSendTime(t *testing.T) {
	// Config set after process start (the godotenv case) must be honored.
	// Port 1 on localhost refuses the connection, so a dial failure here
	// proves the send got past the configuration check.
	t.Setenv("EMAIL_PASSWORD", "secret")
	t.Setenv("SMTP_HOST", "127.0.0.1")
	t.Setenv("SMTP_PORT", "1")

	err := SendParcelBookedEmail("receiver@example.com", "sender@example.com")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "email configuration not set")
}
