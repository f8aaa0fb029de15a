package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

type Config struct {
	Server       ServerConfig
	Log          LogConfig
	SMTP         SMTPConfig
	Notification NotificationConfig
	Order        OrderConfig
	Business     BusinessConfig
	Checkout     CheckoutConfig
	Delivery     DeliveryConfig
	Database     DatabaseConfig
	Redis        RedisConfig
}

type ServerConfig struct {
	Port           int
	RequestTimeout time.Duration
}

type LogConfig struct {
	Level string
}

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	Timeout  time.Duration
}

type NotificationConfig struct {
	BusinessEmail      string
	SMSCarrier         string
	SMSPhone           string
	SMSUseMMS          bool
	SendTimeout        time.Duration
	CarrierGatewayFile string
}

type OrderConfig struct {
	TaxRate  decimal.Decimal
	Location *time.Location
}

type BusinessConfig struct {
	Name    string
	Email   string
	Phone   string
	Website string
}

type CheckoutConfig struct {
	AccessToken string
	LocationID  string
	BaseURL     string
	RedirectURL string
	Source      string
	CacheTTL    time.Duration
}

type DeliveryConfig struct {
	Zips []string
}

// DatabaseConfig backs the product catalog. An empty Host disables it.
type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// RedisConfig backs checkout idempotency and the catalog cache. An empty
// Addr disables both.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("SERVER_REQUEST_TIMEOUT", "60s")
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("SMTP_HOST", "")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_USER", "")
	v.SetDefault("SMTP_PASS", "")
	v.SetDefault("SMTP_FROM", "")
	v.SetDefault("SMTP_TIMEOUT", "10s")

	v.SetDefault("ORDER_EMAIL_TO", "")
	v.SetDefault("ORDER_SMS_CARRIER", "")
	v.SetDefault("ORDER_SMS_PHONE", "")
	v.SetDefault("ORDER_SMS_USE_MMS", false)
	v.SetDefault("NOTIFY_SEND_TIMEOUT", "15s")
	v.SetDefault("CARRIER_GATEWAYS_FILE", "")

	v.SetDefault("TAX_RATE", "0")
	v.SetDefault("RECEIPT_TIMEZONE", "UTC")

	v.SetDefault("BUSINESS_NAME", "Nilla's Creations")
	v.SetDefault("BUSINESS_EMAIL", "orders@nillascreations.com")
	v.SetDefault("BUSINESS_PHONE", "")
	v.SetDefault("BUSINESS_WEBSITE", "https://nillascreations.com")

	v.SetDefault("SQUARE_ACCESS_TOKEN", "")
	v.SetDefault("SQUARE_LOCATION_ID", "")
	v.SetDefault("SQUARE_BASE_URL", "https://connect.squareup.com")
	v.SetDefault("CHECKOUT_REDIRECT_URL", "https://www.nillascreations.com/order-confirmed")
	v.SetDefault("CHECKOUT_SOURCE", "nillas-web")
	v.SetDefault("CHECKOUT_CACHE_TTL", "30m")

	v.SetDefault("DELIVERY_ZIPS", "")

	v.SetDefault("DB_HOST", "")
	v.SetDefault("DB_PORT", 3306)
	v.SetDefault("DB_USER", "bakery")
	v.SetDefault("DB_PASSWORD", "secret")
	v.SetDefault("DB_NAME", "bakery")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", "5m")

	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_PREFIX", "bakery")

	durations := map[string]time.Duration{}
	for _, key := range []string{
		"SERVER_REQUEST_TIMEOUT", "SMTP_TIMEOUT", "NOTIFY_SEND_TIMEOUT",
		"CHECKOUT_CACHE_TTL", "DB_CONN_MAX_LIFETIME",
	} {
		d, err := time.ParseDuration(v.GetString(key))
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", key, err)
		}
		durations[key] = d
	}

	taxRate, err := decimal.NewFromString(v.GetString("TAX_RATE"))
	if err != nil {
		return nil, fmt.Errorf("parsing TAX_RATE: %w", err)
	}
	if taxRate.IsNegative() || taxRate.GreaterThan(decimal.NewFromInt(1)) {
		return nil, fmt.Errorf("TAX_RATE must be a fraction between 0 and 1, got %s", taxRate)
	}

	location, err := time.LoadLocation(v.GetString("RECEIPT_TIMEZONE"))
	if err != nil {
		return nil, fmt.Errorf("loading RECEIPT_TIMEZONE: %w", err)
	}

	smtpFrom := v.GetString("SMTP_FROM")
	if smtpFrom == "" {
		smtpFrom = v.GetString("SMTP_USER")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:           v.GetInt("SERVER_PORT"),
			RequestTimeout: durations["SERVER_REQUEST_TIMEOUT"],
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		SMTP: SMTPConfig{
			Host:     v.GetString("SMTP_HOST"),
			Port:     v.GetInt("SMTP_PORT"),
			User:     v.GetString("SMTP_USER"),
			Password: v.GetString("SMTP_PASS"),
			From:     smtpFrom,
			Timeout:  durations["SMTP_TIMEOUT"],
		},
		Notification: NotificationConfig{
			BusinessEmail:      v.GetString("ORDER_EMAIL_TO"),
			SMSCarrier:         v.GetString("ORDER_SMS_CARRIER"),
			SMSPhone:           v.GetString("ORDER_SMS_PHONE"),
			SMSUseMMS:          v.GetBool("ORDER_SMS_USE_MMS"),
			SendTimeout:        durations["NOTIFY_SEND_TIMEOUT"],
			CarrierGatewayFile: v.GetString("CARRIER_GATEWAYS_FILE"),
		},
		Order: OrderConfig{
			TaxRate:  taxRate,
			Location: location,
		},
		Business: BusinessConfig{
			Name:    v.GetString("BUSINESS_NAME"),
			Email:   v.GetString("BUSINESS_EMAIL"),
			Phone:   v.GetString("BUSINESS_PHONE"),
			Website: v.GetString("BUSINESS_WEBSITE"),
		},
		Checkout: CheckoutConfig{
			AccessToken: v.GetString("SQUARE_ACCESS_TOKEN"),
			LocationID:  v.GetString("SQUARE_LOCATION_ID"),
			BaseURL:     strings.TrimRight(v.GetString("SQUARE_BASE_URL"), "/"),
			RedirectURL: v.GetString("CHECKOUT_REDIRECT_URL"),
			Source:      v.GetString("CHECKOUT_SOURCE"),
			CacheTTL:    durations["CHECKOUT_CACHE_TTL"],
		},
		Delivery: DeliveryConfig{
			Zips: splitList(v.GetString("DELIVERY_ZIPS")),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			Name:            v.GetString("DB_NAME"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: durations["DB_CONN_MAX_LIFETIME"],
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
			Prefix:   v.GetString("REDIS_PREFIX"),
		},
	}

	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
