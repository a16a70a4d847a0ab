// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// portfolio server.
package router

import (
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"folio/internal/handlers"
	"folio/internal/middleware"
)

// Contact submissions are rate limited per client IP; page traffic is not.
const (
	contactLimit  = 5
	contactWindow = time.Minute
)

// New creates and returns the configured Chi router with all middleware
// and routes wired up. staticFS serves the embedded /static/ assets.
func New(public *handlers.Public, contactAPI *handlers.Contact, staticFS fs.FS) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	// Health check.
	r.Get("/health", healthHandler)

	// Static assets.
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	// Contact API, rate limited per client IP.
	limiter := middleware.NewRateLimiter(contactLimit, contactWindow)
	r.With(limiter.Middleware).Post("/api/contact", contactAPI.Submit)

	// Pages.
	r.Get("/", public.Home)
	r.Get("/blog", public.Blog)
	r.Get("/blog/{slug}", public.BlogPost)
	r.Get("/projects", public.Projects)
	r.Get("/contact", public.ContactPage)
	r.NotFound(public.NotFound)

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
