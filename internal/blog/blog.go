// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package blog enumerates Markdown posts from a content store, parses their
// frontmatter, and renders post bodies to HTML.
package blog

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/adrg/frontmatter"

	"folio/internal/content"
	"folio/internal/markdown"
	"folio/internal/slug"
)

// markdownExt is the only resource extension the catalog recognizes;
// anything else in the store is ignored silently.
const markdownExt = ".md"

// dateLayouts are tried in order when parsing the frontmatter date string.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"January 2, 2006",
}

// Frontmatter carries the metadata header of a post. A malformed header
// degrades to the zero value; it never fails a listing or a page.
type Frontmatter struct {
	Title   string   `yaml:"title"`
	Date    string   `yaml:"date"`
	Tags    []string `yaml:"tags"`
	Excerpt string   `yaml:"excerpt"`
}

// ParsedDate returns the frontmatter date parsed against the known layouts.
// Missing or unparseable dates collapse to the Unix epoch so those posts
// sort after everything with a real date.
func (f Frontmatter) ParsedDate() time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, f.Date); err == nil {
			return t
		}
	}
	return time.Unix(0, 0).UTC()
}

// Entry is one row of the post listing.
type Entry struct {
	Slug        string
	Frontmatter Frontmatter
}

// Post is a fully resolved post with its rendered body.
type Post struct {
	Slug        string
	Frontmatter Frontmatter
	HTML        string
}

// Catalog resolves posts through a content store.
type Catalog struct {
	store content.Store
}

// NewCatalog creates a catalog backed by the given store.
func NewCatalog(store content.Store) *Catalog {
	return &Catalog{store: store}
}

// List returns all posts ordered by frontmatter date descending. Undated
// posts keep their relative order at the end of the listing.
func (c *Catalog) List(ctx context.Context) ([]Entry, error) {
	names, err := c.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	var entries []Entry
	for _, name := range names {
		if !strings.HasSuffix(name, markdownExt) {
			continue
		}
		raw, err := c.store.Fetch(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("fetch post %s: %w", name, err)
		}
		meta, _ := parseFrontmatter(name, raw)
		entries = append(entries, Entry{
			Slug:        slug.FromFilename(name),
			Frontmatter: meta,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Frontmatter.ParsedDate().After(entries[j].Frontmatter.ParsedDate())
	})
	return entries, nil
}

// Get resolves one post by slug and renders its body. Returns
// content.ErrNotFound (wrapped) when no <slug>.md exists in the store.
func (c *Catalog) Get(ctx context.Context, postSlug string) (*Post, error) {
	raw, err := c.store.Fetch(ctx, postSlug+markdownExt)
	if err != nil {
		return nil, fmt.Errorf("fetch post %s: %w", postSlug, err)
	}

	meta, body := parseFrontmatter(postSlug+markdownExt, raw)
	html, err := markdown.ToHTML(body)
	if err != nil {
		return nil, fmt.Errorf("render post %s: %w", postSlug, err)
	}

	return &Post{
		Slug:        postSlug,
		Frontmatter: meta,
		HTML:        html,
	}, nil
}

// parseFrontmatter splits a post into metadata and body. On a malformed
// header it logs and degrades to empty metadata with the raw source as
// body, so one broken post cannot take down the whole listing.
func parseFrontmatter(name string, raw []byte) (Frontmatter, []byte) {
	var meta Frontmatter
	body, err := frontmatter.Parse(bytes.NewReader(raw), &meta)
	if err != nil {
		slog.Warn("malformed frontmatter, using defaults", "post", name, "error", err)
		return Frontmatter{}, raw
	}
	return meta, body
}
