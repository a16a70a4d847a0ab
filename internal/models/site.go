// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the site content documents. They mirror the JSON
// files in the content store and are treated as opaque pass-through data:
// optional fields simply stay zero-valued, there is no schema validation.
package models

import (
	"context"
	"encoding/json"
	"fmt"

	"folio/internal/content"
)

// NavItem is one navigation or footer link.
type NavItem struct {
	Label         string `json:"label"`
	Href          string `json:"href"`
	IsHighlighted bool   `json:"isHighlighted,omitempty"`
}

// Socials holds optional social profile URLs.
type Socials struct {
	X        string `json:"x,omitempty"`
	Github   string `json:"github,omitempty"`
	Linkedin string `json:"linkedin,omitempty"`
}

// SiteData is the site.json document: identity, navigation and social links.
type SiteData struct {
	Name        string    `json:"name"`
	Tagline     string    `json:"tagline"`
	Nav         []NavItem `json:"nav"`
	Socials     Socials   `json:"socials"`
	FooterLinks []NavItem `json:"footerLinks"`
	Resume      string    `json:"resume"`
	Email       string    `json:"email"`
	Address     string    `json:"address"`
}

// LoadSite fetches and decodes site.json from the store.
func LoadSite(ctx context.Context, store content.Store) (*SiteData, error) {
	var site SiteData
	if err := loadJSON(ctx, store, "site.json", &site); err != nil {
		return nil, err
	}
	return &site, nil
}

// loadJSON fetches a named JSON document and decodes it into v.
func loadJSON(ctx context.Context, store content.Store, name string, v any) error {
	raw, err := store.Fetch(ctx, name)
	if err != nil {
		return fmt.Errorf("load %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}
