// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers implements the HTTP handlers for the public site:
// rendered pages and the contact form API.
package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"folio/internal/blog"
	"folio/internal/content"
	"folio/internal/github"
	"folio/internal/models"
	"folio/internal/render"
)

// RepoLister fetches the repository listing for the projects page.
type RepoLister interface {
	Repos(ctx context.Context) ([]github.Repo, error)
}

// Public groups the page handlers. Content is fetched fresh from the
// store on every request; any caching is left to the deployment.
type Public struct {
	renderer  *render.Renderer
	dataStore content.Store
	catalog   *blog.Catalog
	repos     RepoLister // nil when no GitHub username is configured
	siteKey   string     // public reCAPTCHA site key for the contact form
}

// NewPublic creates the page handler group. repos may be nil.
func NewPublic(renderer *render.Renderer, dataStore content.Store, catalog *blog.Catalog, repos RepoLister, siteKey string) *Public {
	return &Public{
		renderer:  renderer,
		dataStore: dataStore,
		catalog:   catalog,
		repos:     repos,
		siteKey:   siteKey,
	}
}

// Home renders the profile page from profile.json.
func (p *Public) Home(w http.ResponseWriter, r *http.Request) {
	profile, err := models.LoadProfile(r.Context(), p.dataStore)
	if err != nil {
		p.renderError(w, r, err, "load profile")
		return
	}
	p.renderPage(w, r, "home", "", map[string]any{"Profile": profile})
}

// Blog renders the post listing, newest first.
func (p *Public) Blog(w http.ResponseWriter, r *http.Request) {
	posts, err := p.catalog.List(r.Context())
	if err != nil {
		p.renderError(w, r, err, "list posts")
		return
	}
	p.renderPage(w, r, "blog_list", "Blog", map[string]any{"Posts": posts})
}

// BlogPost renders a single post by slug.
func (p *Public) BlogPost(w http.ResponseWriter, r *http.Request) {
	slugParam := chi.URLParam(r, "slug")

	post, err := p.catalog.Get(r.Context(), slugParam)
	if err != nil {
		p.renderError(w, r, err, "get post")
		return
	}
	p.renderPage(w, r, "blog_post", post.Frontmatter.Title, map[string]any{"Post": post})
}

// Projects renders the GitHub repository listing. An unreachable GitHub
// API degrades to an empty listing rather than an error page.
func (p *Public) Projects(w http.ResponseWriter, r *http.Request) {
	var repos []github.Repo
	if p.repos != nil {
		var err error
		repos, err = p.repos.Repos(r.Context())
		if err != nil {
			slog.Error("fetch repos failed", "error", err)
			repos = nil
		}
	}
	p.renderPage(w, r, "projects", "Projects", map[string]any{"Repos": repos})
}

// ContactPage renders the contact form.
func (p *Public) ContactPage(w http.ResponseWriter, r *http.Request) {
	p.renderPage(w, r, "contact", "Contact", map[string]any{"SiteKey": p.siteKey})
}

// NotFound renders the 404 page.
func (p *Public) NotFound(w http.ResponseWriter, r *http.Request) {
	p.renderStatus(w, r, "notfound", http.StatusNotFound)
}

// renderPage loads site.json and renders the named page template.
func (p *Public) renderPage(w http.ResponseWriter, r *http.Request, name, title string, data map[string]any) {
	site, err := models.LoadSite(r.Context(), p.dataStore)
	if err != nil {
		// A missing site.json should not blank the whole site; pages
		// render with an empty chrome instead.
		slog.Error("load site failed", "error", err)
		site = nil
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := p.renderer.Render(w, name, render.PageData{Title: title, Site: site, Data: data}); err != nil {
		slog.Error("render page failed", "error", err, "template", name)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// renderError maps a content-resolution failure to the 404 page and
// everything else to the 500 page.
func (p *Public) renderError(w http.ResponseWriter, r *http.Request, err error, op string) {
	if errors.Is(err, content.ErrNotFound) {
		p.NotFound(w, r)
		return
	}
	slog.Error(op+" failed", "error", err, "path", r.URL.Path)
	p.renderStatus(w, r, "error", http.StatusInternalServerError)
}

// renderStatus renders an error page with the given status code.
func (p *Public) renderStatus(w http.ResponseWriter, r *http.Request, name string, status int) {
	site, err := models.LoadSite(r.Context(), p.dataStore)
	if err != nil {
		site = nil
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := p.renderer.Render(w, name, render.PageData{Site: site}); err != nil {
		slog.Error("render error page failed", "error", err, "template", name)
	}
}
