package config

import (
	"errors"
	"os"
	"strings"
)

// Config holds the runtime configuration read at startup. A missing
// DATABASE_URL is a startup error; everything else has a usable default.
type Config struct {
	DatabaseURL string
	Port        string
	FrontendURL string // CORS origin for the dashboard/site
	LogLevel    string

	// SendGrid settings for the contact-notification email. An empty API
	// key disables the mailer entirely.
	SendGridAPIKey string
	NotifyTo       string
	NotifyFrom     string
}

// Load reads configuration from environment variables.
func Load() (Config, error) {
	dbURL := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if dbURL == "" {
		return Config{}, errors.New("DATABASE_URL must be set")
	}

	cfg := Config{
		DatabaseURL:    dbURL,
		Port:           os.Getenv("PORT"),
		FrontendURL:    os.Getenv("FRONTEND_URL"),
		LogLevel:       os.Getenv("LOG_LEVEL"),
		SendGridAPIKey: os.Getenv("SENDGRID_API_KEY"),
		NotifyTo:       os.Getenv("CONTACT_NOTIFY_TO"),
		NotifyFrom:     os.Getenv("CONTACT_NOTIFY_FROM"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.FrontendURL == "" {
		cfg.FrontendURL = "*"
	}
	return cfg, nil
}
