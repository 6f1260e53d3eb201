// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-flavor-resolver/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// DeclarationService loads variant declarations.
type DeclarationService interface {
	LoadDeclaration(ctx context.Context, path string) (models.Declaration, error)
}

// VariantService resolves variant declarations and keeps the latest
// resolution of the configured declaration file.
type VariantService interface {
	// Resolve resolves decl. Resolution is all-or-nothing.
	Resolve(ctx context.Context, decl models.Declaration) ([]models.ResolvedConfig, error)

	// ResolveFile loads and resolves the declaration at path.
	ResolveFile(ctx context.Context, path string) ([]models.ResolvedConfig, error)

	// Reload re-resolves the configured declaration file and, on success,
	// replaces the current snapshot. On failure the previous snapshot is kept.
	Reload(ctx context.Context) ([]models.ResolvedConfig, error)

	// Snapshot returns the last successful Reload result.
	Snapshot(ctx context.Context) ([]models.ResolvedConfig, error)

	// Variant returns one variant of the snapshot. An empty dimension
	// matches any dimension as long as the name is unambiguous.
	Variant(ctx context.Context, dimension, name string) (models.ResolvedConfig, error)
}

// AppInfoService exposes build information of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// DeclarationServiceWrapper decorates a DeclarationService (e.g. validation).
type DeclarationServiceWrapper interface {
	Wrap(DeclarationService) DeclarationService
}

// VariantServiceWrapper decorates a VariantService (e.g. validation).
type VariantServiceWrapper interface {
	Wrap(VariantService) VariantService
}
