// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug derives URL-safe identifiers from resource names and
// heading text.
package slug

import (
	"regexp"
	"strings"
)

// whitespaceRuns matches one or more consecutive whitespace characters.
var whitespaceRuns = regexp.MustCompile(`\s+`)

// Anchor creates a heading anchor from heading text: lowercase, with
// whitespace runs collapsed to a single hyphen. Punctuation is kept so
// anchors stay stable against the links already published for old posts.
// Example: "Getting Started" → "getting-started"
func Anchor(s string) string {
	result := strings.ToLower(s)
	result = whitespaceRuns.ReplaceAllString(result, "-")
	return result
}

// FromFilename derives a post slug from a resource filename by stripping
// the extension. Example: "hello-world.md" → "hello-world"
func FromFilename(name string) string {
	if idx := strings.LastIndexByte(name, '.'); idx > 0 {
		return name[:idx]
	}
	return name
}
