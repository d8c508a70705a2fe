package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	EnvProduction  = "production"
	EnvDevelopment = "development"
)

// Config holds settings read from the environment.
type Config struct {
	Port string
	Env  string

	DBDriver   string // postgres | sqlite
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	DBSSLMode  string
	SQLitePath string

	Location *time.Location

	OtpDevCode    string
	OtpSMSWebhook string
	OtpSMSToken   string

	FirebaseCredentialsPath string

	LogLevel        string
	CleanupSchedule string
}

// IsProduction gates Secure cookies and the development OTP bypass.
func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// Load reads configuration from environment variables with defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Port:                    getEnv("PORT", "8000"),
		Env:                     strings.ToLower(getEnv("APP_ENV", EnvDevelopment)),
		DBDriver:                strings.ToLower(getEnv("DB_DRIVER", "postgres")),
		DBHost:                  getEnv("DB_HOST", "127.0.0.1"),
		DBUser:                  getEnv("DB_USER", "postgres"),
		DBPassword:              os.Getenv("DB_PASSWORD"),
		DBName:                  getEnv("DB_NAME", "starboard"),
		DBPort:                  getEnv("DB_PORT", "5432"),
		DBSSLMode:               getEnv("DB_SSLMODE", "disable"),
		SQLitePath:              getEnv("SQLITE_PATH", "starboard.db"),
		OtpDevCode:              strings.TrimSpace(os.Getenv("OTP_DEV_CODE")),
		OtpSMSWebhook:           strings.TrimSpace(os.Getenv("OTP_SMS_WEBHOOK")),
		OtpSMSToken:             strings.TrimSpace(os.Getenv("OTP_SMS_TOKEN")),
		FirebaseCredentialsPath: strings.TrimSpace(os.Getenv("FIREBASE_CREDENTIALS_PATH")),
		LogLevel:                getEnv("LOG_LEVEL", "info"),
		CleanupSchedule:         getEnv("CLEANUP_SCHEDULE", "@every 1h"),
	}

	tz := getEnv("APP_TIMEZONE", "UTC")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid APP_TIMEZONE %q: %w", tz, err)
	}
	cfg.Location = loc

	switch cfg.DBDriver {
	case "postgres", "sqlite":
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}
