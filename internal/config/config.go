package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	"github.com/axoxia/shipping-quote/internal/currency"
)

const (
	CurrencySourceBuiltin  = "builtin"
	CurrencySourceDatabase = "database"

	NotifyProviderLog   = "log"
	NotifyProviderBrevo = "brevo"
)

type Config struct {
	Port              string
	GinMode           string
	LogLevel          string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSSLMode         string
	CurrencySource    string
	AutoMigrate       bool
	PaymentCurrencies []currency.Code
	NotifyProvider    string
	BrevoAPIKey       string
	BrevoAPIURL       string
	MailFromName      string
	MailFromAddress   string
	MetricsEnabled    bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	get := func(key, fallback string) string {
		if v := strings.TrimSpace(k.String(key)); v != "" {
			return v
		}
		return fallback
	}

	cfg := &Config{
		Port:              get("PORT", "8080"),
		GinMode:           get("GIN_MODE", "debug"),
		LogLevel:          get("LOG_LEVEL", "info"),
		DBHost:            get("DB_HOST", "localhost"),
		DBPort:            get("DB_PORT", "5432"),
		DBUser:            get("DB_USER", "axoxia"),
		DBPassword:        get("DB_PASSWORD", "axoxia_secret"),
		DBName:            get("DB_NAME", "axoxia"),
		DBSSLMode:         get("DB_SSLMODE", "disable"),
		CurrencySource:    strings.ToLower(get("CURRENCY_SOURCE", CurrencySourceBuiltin)),
		AutoMigrate:       get("AUTO_MIGRATE", "false") == "true",
		PaymentCurrencies: parseCodes(get("PAYMENT_CURRENCIES", "EUR,CNY")),
		NotifyProvider:    strings.ToLower(get("NOTIFY_PROVIDER", NotifyProviderLog)),
		BrevoAPIKey:       get("BREVO_API_KEY", ""),
		BrevoAPIURL:       get("BREVO_API_URL", ""),
		MailFromName:      get("MAIL_FROM_NAME", "Axoxia Shipping"),
		MailFromAddress:   get("MAIL_FROM_ADDRESS", "noreply@axoxia.example"),
		MetricsEnabled:    get("METRICS_ENABLED", "true") == "true",
	}

	switch cfg.CurrencySource {
	case CurrencySourceBuiltin, CurrencySourceDatabase:
	default:
		return nil, fmt.Errorf("CURRENCY_SOURCE must be %q or %q, got %q", CurrencySourceBuiltin, CurrencySourceDatabase, cfg.CurrencySource)
	}

	switch cfg.NotifyProvider {
	case NotifyProviderLog:
	case NotifyProviderBrevo:
		if cfg.BrevoAPIKey == "" {
			return nil, fmt.Errorf("BREVO_API_KEY is required when NOTIFY_PROVIDER=%s", NotifyProviderBrevo)
		}
	default:
		return nil, fmt.Errorf("NOTIFY_PROVIDER must be %q or %q, got %q", NotifyProviderLog, NotifyProviderBrevo, cfg.NotifyProvider)
	}

	if len(cfg.PaymentCurrencies) == 0 {
		return nil, fmt.Errorf("PAYMENT_CURRENCIES must name at least one currency")
	}

	return cfg, nil
}

func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

func (c *Config) UsesDatabase() bool {
	return c.CurrencySource == CurrencySourceDatabase
}

func parseCodes(csv string) []currency.Code {
	var out []currency.Code
	for _, part := range strings.Split(csv, ",") {
		if code := currency.ParseCode(part); code != "" {
			out = append(out, code)
		}
	}
	return out
}
