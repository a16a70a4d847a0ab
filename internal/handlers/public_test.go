// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"folio/internal/blog"
	"folio/internal/content"
	"folio/internal/github"
	"folio/internal/render"
)

// mapStore is an in-memory content.Store for handler tests.
type mapStore map[string]string

func (m mapStore) Fetch(ctx context.Context, name string) ([]byte, error) {
	data, ok := m[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", content.ErrNotFound, name)
	}
	return []byte(data), nil
}

func (m mapStore) List(ctx context.Context) ([]string, error) {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	return names, nil
}

type fakeRepos struct {
	repos []github.Repo
	err   error
}

func (f *fakeRepos) Repos(ctx context.Context) ([]github.Repo, error) {
	return f.repos, f.err
}

func testPublic(t *testing.T, data mapStore, posts mapStore, repos RepoLister) *Public {
	t.Helper()
	renderer, err := render.New()
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}
	return NewPublic(renderer, data, blog.NewCatalog(posts), repos, "sitekey-123")
}

func testData() mapStore {
	return mapStore{
		"site.json":    `{"name":"Jane Doe","tagline":"engineer","nav":[{"label":"Blog","href":"/blog"}],"email":"jane@example.com"}`,
		"profile.json": `{"hero":{"title":"Hi, I'm Jane","position":"Engineer"}}`,
	}
}

func testPosts() mapStore {
	return mapStore{
		"first.md":  "---\ntitle: First Post\ndate: \"2024-01-01\"\n---\n\nold body\n",
		"second.md": "---\ntitle: Second Post\ndate: \"2025-01-01\"\n---\n\n# Intro\n\nnew *body*\n",
	}
}

func get(t *testing.T, p *Public, path string) *httptest.ResponseRecorder {
	t.Helper()
	r := chi.NewRouter()
	r.Get("/", p.Home)
	r.Get("/blog", p.Blog)
	r.Get("/blog/{slug}", p.BlogPost)
	r.Get("/projects", p.Projects)
	r.Get("/contact", p.ContactPage)
	r.NotFound(p.NotFound)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
	return rr
}

func TestHome(t *testing.T) {
	p := testPublic(t, testData(), testPosts(), nil)
	rr := get(t, p, "/")

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	body := rr.Body.String()
	for _, want := range []string{"Hi, I&#39;m Jane", "Jane Doe", "/blog"} {
		if !strings.Contains(body, want) {
			t.Errorf("home page missing %q", want)
		}
	}
}

func TestBlog_ListsNewestFirst(t *testing.T) {
	p := testPublic(t, testData(), testPosts(), nil)
	rr := get(t, p, "/blog")

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	body := rr.Body.String()
	second := strings.Index(body, "Second Post")
	first := strings.Index(body, "First Post")
	if second == -1 || first == -1 {
		t.Fatalf("listing missing posts:\n%s", body)
	}
	if second > first {
		t.Error("posts not ordered newest first")
	}
}

func TestBlogPost(t *testing.T) {
	p := testPublic(t, testData(), testPosts(), nil)
	rr := get(t, p, "/blog/second")

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "<em>body</em>") {
		t.Errorf("post body not rendered:\n%s", body)
	}
	if !strings.Contains(body, `id="intro"`) {
		t.Errorf("heading anchor missing:\n%s", body)
	}
}

func TestBlogPost_NotFound(t *testing.T) {
	p := testPublic(t, testData(), testPosts(), nil)
	rr := get(t, p, "/blog/ghost")

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Page not found") {
		t.Errorf("404 page content missing:\n%s", rr.Body.String())
	}
}

func TestProjects(t *testing.T) {
	repos := &fakeRepos{repos: []github.Repo{
		{Name: "folio", HTMLURL: "https://github.com/jane/folio", Stars: 12, Language: "Go"},
	}}
	p := testPublic(t, testData(), testPosts(), repos)
	rr := get(t, p, "/projects")

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "https://github.com/jane/folio") {
		t.Errorf("projects page missing repo link:\n%s", rr.Body.String())
	}
}

// An unreachable GitHub API degrades to an empty listing, not an error page.
func TestProjects_UpstreamFailureDegrades(t *testing.T) {
	p := testPublic(t, testData(), testPosts(), &fakeRepos{err: errors.New("rate limited")})
	rr := get(t, p, "/projects")

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Nothing to show") {
		t.Errorf("empty listing fallback missing:\n%s", rr.Body.String())
	}
}

func TestContactPage(t *testing.T) {
	p := testPublic(t, testData(), testPosts(), nil)
	rr := get(t, p, "/contact")

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `name="website"`) {
		t.Error("honeypot field missing from contact form")
	}
	if !strings.Contains(body, "sitekey-123") {
		t.Error("site key missing from contact form")
	}
}

// Pages still render, with empty chrome, when site.json is missing.
func TestHome_MissingSiteJSON(t *testing.T) {
	data := mapStore{"profile.json": `{"hero":{"title":"Hello"}}`}
	p := testPublic(t, data, testPosts(), nil)
	rr := get(t, p, "/")

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Hello") {
		t.Errorf("hero missing:\n%s", rr.Body.String())
	}
}

// A missing profile.json is a content-resolution failure: 404.
func TestHome_MissingProfile(t *testing.T) {
	data := mapStore{"site.json": `{"name":"Jane"}`}
	p := testPublic(t, data, testPosts(), nil)
	rr := get(t, p, "/")

	if rr.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rr.Code)
	}
}
