package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"
)

const (
	defaultMailProviderURL = "https://api.resend.com/emails"
	defaultMailFrom        = "Mentorloop <hello@mentorloop.dev>"
	defaultContactTo       = "team@mentorloop.dev"
	defaultSessionTTL      = "30m"
	defaultAdminJWTTTL     = "2h"
	defaultAdminJWTSecret  = "change-me-admin-jwt-secret"
	defaultTheme           = "system"
)

// RuntimeConfig is everything cmd/api reads from the environment.
// MailAPIKey may legitimately be empty: the dispatcher reports a config
// error per send instead of refusing to boot.
type RuntimeConfig struct {
	AppEnv string

	MailProviderURL string
	MailAPIKey      string
	MailFrom        string
	ContactTo       string

	SessionTTL time.Duration

	AdminEmail        string
	AdminPasswordHash string
	AdminJWTSecret    string
	AdminJWTTTL       time.Duration

	DefaultTheme  string
	PreloadAssets []string
}

func LoadRuntimeConfig() (*RuntimeConfig, error) {
	cfg := &RuntimeConfig{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.MailProviderURL = strings.TrimSpace(getEnv("MAIL_PROVIDER_URL", defaultMailProviderURL))
	cfg.MailAPIKey = strings.TrimSpace(os.Getenv("MAIL_API_KEY"))
	cfg.MailFrom = strings.TrimSpace(getEnv("MAIL_FROM", defaultMailFrom))
	cfg.ContactTo = strings.TrimSpace(getEnv("CONTACT_TO", defaultContactTo))

	var err error
	cfg.SessionTTL, err = parseDurationEnv("SIGNUP_SESSION_TTL", defaultSessionTTL)
	if err != nil {
		return nil, err
	}

	cfg.AdminEmail = strings.ToLower(strings.TrimSpace(os.Getenv("ADMIN_EMAIL")))
	cfg.AdminPasswordHash = strings.TrimSpace(os.Getenv("ADMIN_PASSWORD_HASH"))
	cfg.AdminJWTSecret = strings.TrimSpace(getEnv("ADMIN_JWT_SECRET", defaultAdminJWTSecret))
	cfg.AdminJWTTTL, err = parseDurationEnv("ADMIN_JWT_TTL", defaultAdminJWTTTL)
	if err != nil {
		return nil, err
	}

	cfg.DefaultTheme = strings.TrimSpace(getEnv("DEFAULT_THEME", defaultTheme))

	if assets := strings.TrimSpace(os.Getenv("PRELOAD_ASSETS")); assets != "" {
		for _, u := range strings.Split(assets, ",") {
			if u = strings.TrimSpace(u); u != "" {
				cfg.PreloadAssets = append(cfg.PreloadAssets, u)
			}
		}
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	if cfg.MailAPIKey == "" {
		log.Printf("mail config: MAIL_API_KEY is not set, sends will fail with CONFIG_ERROR")
	}

	return cfg, nil
}

func validateConfig(cfg *RuntimeConfig) error {
	if cfg.SessionTTL <= 0 {
		return fmt.Errorf("SIGNUP_SESSION_TTL must be > 0")
	}
	if cfg.AdminJWTTTL <= 0 {
		return fmt.Errorf("ADMIN_JWT_TTL must be > 0")
	}
	if cfg.MailProviderURL == "" {
		return fmt.Errorf("MAIL_PROVIDER_URL must not be empty")
	}

	if isProdLike(cfg.AppEnv) {
		if isEmptyOrDefault(cfg.AdminJWTSecret, defaultAdminJWTSecret) {
			return fmt.Errorf("in prod/release ADMIN_JWT_SECRET must be set and not default")
		}
		if cfg.AdminEmail == "" || cfg.AdminPasswordHash == "" {
			return fmt.Errorf("in prod/release ADMIN_EMAIL and ADMIN_PASSWORD_HASH must be set")
		}
	}

	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
