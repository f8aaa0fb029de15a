package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 587, cfg.SMTP.Port)
	assert.Equal(t, 10*time.Second, cfg.SMTP.Timeout)
	assert.Equal(t, 15*time.Second, cfg.Notification.SendTimeout)
	assert.True(t, cfg.Order.TaxRate.IsZero())
	assert.Equal(t, "UTC", cfg.Order.Location.String())
	assert.Equal(t, "Nilla's Creations", cfg.Business.Name)
	assert.Equal(t, "https://connect.squareup.com", cfg.Checkout.BaseURL)
	assert.Empty(t, cfg.Delivery.Zips)
	assert.Empty(t, cfg.Database.Host)
	assert.Empty(t, cfg.Redis.Addr)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_PORT", "465")
	t.Setenv("SMTP_USER", "mailer@example.com")
	t.Setenv("ORDER_EMAIL_TO", "owner@example.com")
	t.Setenv("ORDER_SMS_CARRIER", "verizon")
	t.Setenv("ORDER_SMS_PHONE", "+1 970 481 6347")
	t.Setenv("ORDER_SMS_USE_MMS", "true")
	t.Setenv("NOTIFY_SEND_TIMEOUT", "3s")
	t.Setenv("TAX_RATE", "0.0825")
	t.Setenv("RECEIPT_TIMEZONE", "America/Denver")
	t.Setenv("DELIVERY_ZIPS", " 79902, 79903 ,,79912")
	t.Setenv("SQUARE_BASE_URL", "https://connect.squareupsandbox.com/")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "smtp.example.com", cfg.SMTP.Host)
	assert.Equal(t, 465, cfg.SMTP.Port)
	assert.Equal(t, "mailer@example.com", cfg.SMTP.From, "SMTP_FROM falls back to SMTP_USER")
	assert.Equal(t, "owner@example.com", cfg.Notification.BusinessEmail)
	assert.Equal(t, "verizon", cfg.Notification.SMSCarrier)
	assert.Equal(t, "+1 970 481 6347", cfg.Notification.SMSPhone)
	assert.True(t, cfg.Notification.SMSUseMMS)
	assert.Equal(t, 3*time.Second, cfg.Notification.SendTimeout)
	assert.Equal(t, "0.0825", cfg.Order.TaxRate.String())
	assert.Equal(t, "America/Denver", cfg.Order.Location.String())
	assert.Equal(t, []string{"79902", "79903", "79912"}, cfg.Delivery.Zips)
	assert.Equal(t, "https://connect.squareupsandbox.com", cfg.Checkout.BaseURL)
}

func TestLoad_ExplicitFromWins(t *testing.T) {
	t.Setenv("SMTP_USER", "mailer@example.com")
	t.Setenv("SMTP_FROM", "Nilla's Creations <shop@example.com>")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Nilla's Creations <shop@example.com>", cfg.SMTP.From)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"tax rate not a number", "TAX_RATE", "eight percent"},
		{"tax rate above one", "TAX_RATE", "8.25"},
		{"negative tax rate", "TAX_RATE", "-0.1"},
		{"bad duration", "NOTIFY_SEND_TIMEOUT", "soon"},
		{"unknown timezone", "RECEIPT_TIMEZONE", "Mars/Olympus"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
