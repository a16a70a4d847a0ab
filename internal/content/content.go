// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package content resolves named site resources (JSON documents, Markdown
// posts) to raw bytes. Two backends implement the same Store capability:
// a local filesystem root for development and an S3-compatible blob bucket
// for production. The backend is selected once at process start.
package content

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no matching resource exists in the active backend.
var ErrNotFound = errors.New("content: resource not found")

// Store resolves named resources to raw bytes. Implementations are read-only.
type Store interface {
	// Fetch returns the raw bytes of the named resource, or ErrNotFound.
	Fetch(ctx context.Context, name string) ([]byte, error)

	// List returns the names of all resources, relative to the store root.
	List(ctx context.Context) ([]string, error)
}
