// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package config

import (
	"strings"
	"testing"
)

// clearEnv blanks every variable Load reads so tests see pure defaults.
// envOrDefault treats empty the same as unset, so t.Setenv("") is enough
// and gets restored automatically after the test.
func clearEnv(t *testing.T) {
	t.Helper()
	envVars := []string{
		"APP_HOST", "APP_PORT", "APP_ENV",
		"CONTENT_DIR", "DATA_BLOB_PREFIX", "BLOG_BLOB_PREFIX",
		"S3_ENDPOINT", "S3_REGION", "S3_ACCESS_KEY", "S3_SECRET_KEY", "S3_BUCKET",
		"SMTP_HOST", "SMTP_PORT", "SMTP_USER", "SMTP_PASS",
		"CONTACT_FROM", "CONTACT_TO", "CALENDLY_URL",
		"RECAPTCHA_SECRET_KEY", "RECAPTCHA_SITE_KEY", "RECAPTCHA_MIN_SCORE",
		"GITHUB_USERNAME",
	}
	for _, key := range envVars {
		t.Setenv(key, "")
	}
}

// TestLoad_Defaults verifies that Load returns sensible development defaults
// when no environment variables are set.
func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	check := func(field, got, want string) {
		t.Helper()
		if got != want {
			t.Errorf("%s = %q, want %q", field, got, want)
		}
	}

	check("Host", cfg.Host, "0.0.0.0")
	check("Port", cfg.Port, "8080")
	check("Env", cfg.Env, "development")
	check("ContentDir", cfg.ContentDir, "content")
	check("DataBlobPrefix", cfg.DataBlobPrefix, "data/")
	check("BlogBlobPrefix", cfg.BlogBlobPrefix, "blog/")
	check("S3Region", cfg.S3Region, "us-east-1")

	if cfg.SMTPPort != 587 {
		t.Errorf("SMTPPort = %d, want 587", cfg.SMTPPort)
	}
	if cfg.RecaptchaMinScore != 0.5 {
		t.Errorf("RecaptchaMinScore = %v, want 0.5", cfg.RecaptchaMinScore)
	}
	if cfg.IsProd() {
		t.Error("IsProd() = true for development env")
	}
	if cfg.MailConfigured() {
		t.Error("MailConfigured() = true with no SMTP settings")
	}
}

// TestLoad_ProdRequiresStorage verifies that selecting the blob backend
// without S3 credentials is a configuration error.
func TestLoad_ProdRequiresStorage(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "prod")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() with APP_ENV=prod and no S3 settings: expected error, got nil")
	}
	if !strings.Contains(err.Error(), "S3_ENDPOINT") {
		t.Errorf("error %q does not mention missing S3 settings", err)
	}
}

func TestLoad_ProdWithStorage(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "prod")
	t.Setenv("S3_ENDPOINT", "https://objects.example.com")
	t.Setenv("S3_ACCESS_KEY", "key")
	t.Setenv("S3_SECRET_KEY", "secret")
	t.Setenv("S3_BUCKET", "folio-content")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if !cfg.IsProd() {
		t.Error("IsProd() = false, want true")
	}
}

func TestLoad_InvalidNumbers(t *testing.T) {
	clearEnv(t)
	t.Setenv("SMTP_PORT", "not-a-port")
	if _, err := Load(); err == nil {
		t.Error("Load() with bad SMTP_PORT: expected error, got nil")
	}

	clearEnv(t)
	t.Setenv("RECAPTCHA_MIN_SCORE", "high")
	if _, err := Load(); err == nil {
		t.Error("Load() with bad RECAPTCHA_MIN_SCORE: expected error, got nil")
	}
}

func TestAddr(t *testing.T) {
	cfg := &Config{Host: "127.0.0.1", Port: "9000"}
	if got := cfg.Addr(); got != "127.0.0.1:9000" {
		t.Errorf("Addr() = %q, want %q", got, "127.0.0.1:9000")
	}
}
