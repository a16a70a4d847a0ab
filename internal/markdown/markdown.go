// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package markdown converts Markdown source text into HTML using goldmark.
// It enables unsafe HTML pass-through so raw-HTML fragments embedded in
// posts render correctly, and highlights fenced code blocks with chroma.
package markdown

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"folio/internal/slug"
)

// md is the configured goldmark instance, reused across calls.
var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,         // GitHub-Flavored Markdown: tables, strikethrough, autolinks
		extension.Typographer, // Smart quotes and dashes
		highlighting.NewHighlighting( // Syntax highlighting for fenced code blocks
			highlighting.WithStyle("monokai"),
			// Unknown or missing fence languages fall back to chroma's
			// analyser; when that finds nothing either, the block renders
			// as plain preformatted text. Highlighting never fails a post.
			highlighting.WithGuessLanguage(true),
		),
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(), // Heading anchors, IDs supplied per-parse
	),
	goldmark.WithRendererOptions(
		html.WithUnsafe(), // Allow raw HTML blocks embedded in post bodies
	),
)

// ToHTML converts Markdown source into HTML. Heading IDs follow the
// published anchor convention (lowercase, whitespace runs collapsed to a
// single hyphen), so existing deep links keep resolving.
func ToHTML(source []byte) (string, error) {
	var buf bytes.Buffer
	ctx := parser.NewContext(parser.WithIDs(newAnchorIDs()))
	if err := md.Convert(source, &buf, parser.WithContext(ctx)); err != nil {
		return "", fmt.Errorf("markdown convert: %w", err)
	}
	return buf.String(), nil
}

// anchorIDs implements parser.IDs using the site's anchor convention,
// suffixing duplicates so IDs stay unique within a document.
type anchorIDs struct {
	used map[string]int
}

func newAnchorIDs() *anchorIDs {
	return &anchorIDs{used: map[string]int{}}
}

func (a *anchorIDs) Generate(value []byte, kind ast.NodeKind) []byte {
	anchor := slug.Anchor(string(value))
	if anchor == "" {
		anchor = "heading"
	}

	n := a.used[anchor]
	a.used[anchor] = n + 1
	if n == 0 {
		return []byte(anchor)
	}
	return []byte(anchor + "-" + strconv.Itoa(n))
}

func (a *anchorIDs) Put(value []byte) {
	a.used[string(value)]++
}
