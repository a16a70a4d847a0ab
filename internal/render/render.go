// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render provides HTML template rendering for the public site.
// Every page template is paired with the base layout, which draws the
// navigation and footer from the site.json document.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"folio/internal/models"
)

//go:embed templates/site/*.html
var siteFS embed.FS

// PageData holds all data passed to page templates.
type PageData struct {
	Title string           // Page title for the <title> tag
	Site  *models.SiteData // Navigation, identity and social links
	Data  map[string]any   // Page-specific data
}

// Renderer handles template parsing and execution for public pages.
type Renderer struct {
	templates map[string]*template.Template
}

// funcMap holds helpers shared by all page templates.
var funcMap = template.FuncMap{
	// safe marks pre-rendered HTML (the Markdown pipeline output) as
	// trusted. Never apply it to user input.
	"safe": func(s string) template.HTML {
		return template.HTML(s)
	},
	"join": strings.Join,
}

// New creates a Renderer by parsing all page templates from the embedded
// filesystem. Each page template is paired with the base layout.
func New() (*Renderer, error) {
	pages, err := fs.Glob(siteFS, "templates/site/*.html")
	if err != nil {
		return nil, fmt.Errorf("glob templates: %w", err)
	}

	r := &Renderer{templates: make(map[string]*template.Template)}
	for _, page := range pages {
		name := strings.TrimSuffix(filepath.Base(page), ".html")
		if name == "base" {
			continue
		}
		tpl, err := template.New("base.html").Funcs(funcMap).ParseFS(siteFS, "templates/site/base.html", page)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		r.templates[name] = tpl
	}
	return r, nil
}

// Render executes the named page template into w.
func (r *Renderer) Render(w io.Writer, name string, data PageData) error {
	tpl, ok := r.templates[name]
	if !ok {
		return fmt.Errorf("unknown template: %s", name)
	}
	if err := tpl.ExecuteTemplate(w, "base.html", data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	return nil
}
