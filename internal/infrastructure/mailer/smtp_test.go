package mailer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"bakery/internal/config"
	"bakery/internal/domain"
)

func TestNewSMTPTransport_RequiresHost(t *testing.T) {
	_, err := NewSMTPTransport(config.SMTPConfig{Port: 587}, zap.NewNop())
	assert.Error(t, err)
}

func TestNewSMTPTransport(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.SMTPConfig
		optCount int
	}{
		{
			name:     "starttls with auth",
			cfg:      config.SMTPConfig{Host: "smtp.example.com", Port: 587, User: "u", Password: "p", Timeout: 10 * time.Second},
			optCount: 6,
		},
		{
			name:     "implicit tls on 465",
			cfg:      config.SMTPConfig{Host: "smtp.example.com", Port: 465, User: "u", Password: "p", Timeout: 10 * time.Second},
			optCount: 6,
		},
		{
			name:     "relay without auth",
			cfg:      config.SMTPConfig{Host: "localhost", Port: 25, Timeout: 10 * time.Second},
			optCount: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transport, err := NewSMTPTransport(tt.cfg, zap.NewNop())
			require.NoError(t, err)
			assert.Equal(t, tt.cfg.Host, transport.host)
			assert.Len(t, transport.opts, tt.optCount)
		})
	}
}

func TestBuildMessage(t *testing.T) {
	m, err := buildMessage(domain.Message{
		From:    "shop@nillascreations.com",
		To:      "jane@example.com",
		ReplyTo: "orders@nillascreations.com",
		Subject: "Order 251014-0042 - Nilla's Creations",
		Text:    "Thank you!",
		HTML:    "<p>Thank you!</p>",
	})
	require.NoError(t, err)

	recipients, err := m.GetRecipients()
	require.NoError(t, err)
	assert.Equal(t, []string{"jane@example.com"}, recipients)
}

func TestBuildMessage_InvalidAddresses(t *testing.T) {
	tests := []struct {
		name string
		msg  domain.Message
	}{
		{"bad from", domain.Message{From: "not an address", To: "jane@example.com"}},
		{"bad to", domain.Message{From: "shop@example.com", To: "9704816347@"}},
		{"bad reply-to", domain.Message{From: "shop@example.com", To: "jane@example.com", ReplyTo: "@@"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildMessage(tt.msg)
			assert.Error(t, err)
		})
	}
}
