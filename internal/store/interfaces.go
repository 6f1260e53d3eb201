// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store reads variant declarations from disk and writes resolved
// configurations back out for the packaging step.
//
// Declarations may be authored as JSON, JSONC (JSON with comments and
// trailing commas) or YAML. Resolved configurations can be written as JSON,
// YAML or env-style key=value files.
package store

import (
	"context"
	"io"

	"github.com/MKhiriev/go-flavor-resolver/models"
)

// DeclarationStorage loads variant declarations.
type DeclarationStorage interface {
	// LoadDeclaration reads and parses the declaration at path. The format is
	// chosen by file extension.
	LoadDeclaration(ctx context.Context, path string) (models.Declaration, error)
}

// ResolvedStorage writes resolved configurations.
type ResolvedStorage interface {
	// SaveResolved writes one file per config under dir, at
	// <dir>/<dimension>/<name>.<ext>, and returns the written paths in input order.
	SaveResolved(ctx context.Context, dir string, format Format, configs ...models.ResolvedConfig) ([]string, error)

	// EncodeResolved writes all configs to w as a single document.
	EncodeResolved(ctx context.Context, w io.Writer, format Format, configs ...models.ResolvedConfig) error
}
