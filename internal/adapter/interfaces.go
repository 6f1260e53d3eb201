// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter lets the command line tool delegate resolution to a
// running resolver server instead of resolving locally.
//
// [ResolverAdapter] hides the transport from the caller. Failed responses
// are mapped to the sentinel errors in errors.go so callers can use
// [errors.Is] regardless of transport (e.g. [ErrInvalidDeclaration] for 400,
// [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-flavor-resolver/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/resolver_adapter_mock.go -package=mock

// ResolverAdapter talks to a remote resolver server.
type ResolverAdapter interface {
	// Resolve posts decl to the server and returns the resolved variants in
	// declaration order. A declaration rejected by the server yields
	// [ErrInvalidDeclaration].
	Resolve(ctx context.Context, decl models.Declaration) ([]models.ResolvedConfig, error)

	// Variants returns the variants the server resolved from its own
	// declaration file.
	Variants(ctx context.Context) ([]models.ResolvedConfig, error)

	// Variant returns a single server-side variant. dimension may be empty.
	Variant(ctx context.Context, dimension, name string) (models.ResolvedConfig, error)

	// Version returns the server version.
	Version(ctx context.Context) (string, error)
}
