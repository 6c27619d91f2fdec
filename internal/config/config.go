// Package config collects all process configuration in one explicit
// struct. Nothing outside this package reads the environment for
// settings.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/spendguard/backend/internal/alert"
	"github.com/spendguard/backend/internal/notify"
)

// Config holds the complete configuration of the backend.
type Config struct {
	// HTTP server
	Port             string
	CORSAllowOrigins []string
	EnablePprof      bool

	// Database
	DBPath string

	// The remaining fraction of a budget at which a low-balance alert
	// fires when a budget has no explicit threshold
	DefaultAlertThreshold decimal.Decimal

	// Outbound email, optional
	SMTP notify.SMTPConfig
}

// Load reads the configuration from the environment. A .env file is
// honored when present.
func Load() (*Config, error) {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading .env file failed: %w", err)
	}

	threshold := alert.DefaultThreshold
	if v, ok := os.LookupEnv("ALERT_THRESHOLD"); ok {
		parsed, err := decimal.NewFromString(v)
		if err != nil {
			return nil, fmt.Errorf("invalid ALERT_THRESHOLD %q: %w", v, err)
		}

		threshold, err = alert.NormalizeThreshold(parsed)
		if err != nil {
			return nil, fmt.Errorf("invalid ALERT_THRESHOLD %q: %w", v, err)
		}
	}

	cfg := &Config{
		Port:                  getEnv("PORT", "8080"),
		CORSAllowOrigins:      strings.Fields(getEnv("CORS_ALLOW_ORIGINS", "")),
		EnablePprof:           getEnv("ENABLE_PPROF", "") == "true",
		DBPath:                getEnv("DB_PATH", "data/spendguard.db"),
		DefaultAlertThreshold: threshold,
		SMTP: notify.SMTPConfig{
			Host: getEnv("SMTP_HOST", ""),
			Port: getEnvInt("SMTP_PORT", 0),
			User: getEnv("SMTP_USER", ""),
			Pass: getEnv("SMTP_PASS", ""),
			From: getEnv("EMAIL_FROM", ""),
		},
	}

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration for values that cannot work.
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return fmt.Errorf("invalid port %q: must be a number", c.Port)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("invalid port %d: must be between 1 and 65535", port)
	}

	if c.DBPath == "" {
		return fmt.Errorf("the database path must not be empty")
	}

	if c.DefaultAlertThreshold.IsNegative() || c.DefaultAlertThreshold.GreaterThan(decimal.New(1, 0)) {
		return fmt.Errorf("the default alert threshold must be a fraction between 0 and 1")
	}

	return nil
}

// Notifier returns the notifier matching the configuration: SMTP when a
// server is configured, logging otherwise.
func (c *Config) Notifier() notify.Notifier {
	if c.SMTP.Configured() {
		return notify.NewSMTPNotifier(c.SMTP)
	}

	return notify.LogNotifier{Logger: log.Logger}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Warn().Str("key", key).Str("value", value).Msg("not a number, using fallback")
		return fallback
	}

	return parsed
}
