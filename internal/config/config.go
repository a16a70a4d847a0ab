// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host string
	Port string
	Env  string // "prod" serves content from blob storage, anything else from disk

	// Content sources
	ContentDir     string // local content root (non-prod)
	DataBlobPrefix string // blob key prefix for site.json / profile.json
	BlogBlobPrefix string // blob key prefix for blog posts

	// S3-compatible blob storage (prod content backend)
	S3Endpoint  string
	S3Region    string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string

	// Outbound mail
	SMTPHost    string
	SMTPPort    int
	SMTPUser    string
	SMTPPass    string
	ContactFrom string
	ContactTo   string
	CalendlyURL string

	// reCAPTCHA v3 verification
	RecaptchaSecretKey string
	RecaptchaSiteKey   string
	RecaptchaMinScore  float64

	// Public identifiers
	GithubUsername string
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate. Returns an error if the blob backend
// is selected without storage credentials.
func Load() (*Config, error) {
	cfg := &Config{
		Host: envOrDefault("APP_HOST", "0.0.0.0"),
		Port: envOrDefault("APP_PORT", "8080"),
		Env:  envOrDefault("APP_ENV", "development"),

		ContentDir:     envOrDefault("CONTENT_DIR", "content"),
		DataBlobPrefix: envOrDefault("DATA_BLOB_PREFIX", "data/"),
		BlogBlobPrefix: envOrDefault("BLOG_BLOB_PREFIX", "blog/"),

		S3Endpoint:  os.Getenv("S3_ENDPOINT"),
		S3Region:    envOrDefault("S3_REGION", "us-east-1"),
		S3AccessKey: os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey: os.Getenv("S3_SECRET_KEY"),
		S3Bucket:    os.Getenv("S3_BUCKET"),

		SMTPHost:    os.Getenv("SMTP_HOST"),
		SMTPUser:    os.Getenv("SMTP_USER"),
		SMTPPass:    os.Getenv("SMTP_PASS"),
		ContactFrom: os.Getenv("CONTACT_FROM"),
		ContactTo:   os.Getenv("CONTACT_TO"),
		CalendlyURL: os.Getenv("CALENDLY_URL"),

		RecaptchaSecretKey: os.Getenv("RECAPTCHA_SECRET_KEY"),
		RecaptchaSiteKey:   os.Getenv("RECAPTCHA_SITE_KEY"),

		GithubUsername: os.Getenv("GITHUB_USERNAME"),
	}

	port, err := strconv.Atoi(envOrDefault("SMTP_PORT", "587"))
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}
	cfg.SMTPPort = port

	score, err := strconv.ParseFloat(envOrDefault("RECAPTCHA_MIN_SCORE", "0.5"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid RECAPTCHA_MIN_SCORE: %w", err)
	}
	cfg.RecaptchaMinScore = score

	if cfg.IsProd() {
		if cfg.S3Endpoint == "" || cfg.S3AccessKey == "" || cfg.S3SecretKey == "" || cfg.S3Bucket == "" {
			return nil, fmt.Errorf("S3_ENDPOINT, S3_ACCESS_KEY, S3_SECRET_KEY and S3_BUCKET must be set in prod")
		}
	}

	return cfg, nil
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsProd returns true when content is served from blob storage.
func (c *Config) IsProd() bool {
	return c.Env == "prod"
}

// MailConfigured reports whether an outbound mail transport is configured.
func (c *Config) MailConfigured() bool {
	return c.SMTPHost != "" && c.ContactTo != ""
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
