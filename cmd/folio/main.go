// Package main is the entry point for the portfolio server.
// It loads configuration, wires the content backend, and starts the HTTP
// server with graceful shutdown support.
package main

import (
	"context"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"folio/internal/blog"
	"folio/internal/config"
	"folio/internal/content"
	"folio/internal/github"
	"folio/internal/handlers"
	"folio/internal/mailer"
	"folio/internal/recaptcha"
	"folio/internal/render"
	"folio/internal/router"
	"folio/web"
)

func main() {
	// Structured logger — outputs JSON in production, text in development.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Pick the content backend: blob storage in prod, local disk otherwise.
	// Two stores share one backend — site data and blog posts live under
	// separate prefixes (directories locally, key prefixes in the bucket).
	var dataStore, postStore content.Store
	if cfg.IsProd() {
		dataStore = content.NewBlob(content.BlobOptions{
			Endpoint:  cfg.S3Endpoint,
			Region:    cfg.S3Region,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			Bucket:    cfg.S3Bucket,
			Prefix:    cfg.DataBlobPrefix,
		})
		postStore = content.NewBlob(content.BlobOptions{
			Endpoint:  cfg.S3Endpoint,
			Region:    cfg.S3Region,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			Bucket:    cfg.S3Bucket,
			Prefix:    cfg.BlogBlobPrefix,
		})
		slog.Info("content backend: blob storage",
			"endpoint", cfg.S3Endpoint,
			"bucket", cfg.S3Bucket,
		)
	} else {
		dataStore = content.NewLocal(cfg.ContentDir)
		postStore = content.NewLocal(filepath.Join(cfg.ContentDir, "blog"))
		slog.Info("content backend: local disk", "dir", cfg.ContentDir)
	}

	// Initialize the HTML template renderer.
	renderer, err := render.New()
	if err != nil {
		slog.Error("failed to initialize template renderer", "error", err)
		os.Exit(1)
	}

	catalog := blog.NewCatalog(postStore)

	// Bot-score verification. Without a secret key the verifier passes
	// every submission through with an explanatory reason.
	verifier := recaptcha.New(cfg.RecaptchaSecretKey, cfg.RecaptchaMinScore)

	// Outbound mail is optional — without SMTP settings, accepted
	// submissions are logged instead of dispatched.
	var dispatcher handlers.Dispatcher
	if cfg.MailConfigured() {
		m, err := mailer.New(mailer.Options{
			Host:        cfg.SMTPHost,
			Port:        cfg.SMTPPort,
			User:        cfg.SMTPUser,
			Pass:        cfg.SMTPPass,
			From:        cfg.ContactFrom,
			To:          cfg.ContactTo,
			CalendlyURL: cfg.CalendlyURL,
		})
		if err != nil {
			slog.Error("failed to initialize mail transport", "error", err)
			os.Exit(1)
		}
		dispatcher = m
	} else {
		slog.Warn("smtp not configured — contact notifications disabled")
	}

	// GitHub repository listing for the projects page (optional).
	var repos handlers.RepoLister
	if cfg.GithubUsername != "" {
		repos = github.New(cfg.GithubUsername)
	} else {
		slog.Warn("github username not configured — projects page will be empty")
	}

	// Create handler groups with their dependencies.
	publicHandlers := handlers.NewPublic(renderer, dataStore, catalog, repos, cfg.RecaptchaSiteKey)
	contactHandlers := handlers.NewContact(verifier, dispatcher)

	staticFS, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		slog.Error("failed to mount static assets", "error", err)
		os.Exit(1)
	}

	// Set up the Chi router with all middleware and routes.
	r := router.New(publicHandlers, contactHandlers, staticFS)

	// Create the HTTP server with sensible timeouts. WriteTimeout covers
	// the synchronous reCAPTCHA verification on contact submissions.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
