// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"maps"
	"sync"

	"github.com/MKhiriev/go-flavor-resolver/internal/logger"
	"github.com/MKhiriev/go-flavor-resolver/internal/resolver"
	"github.com/MKhiriev/go-flavor-resolver/models"
)

type variantService struct {
	declarations    DeclarationService
	resolver        *resolver.Resolver
	declarationPath string

	mu       sync.RWMutex
	snapshot []models.ResolvedConfig
	loaded   bool

	logger *logger.Logger
}

// NewVariantService builds a VariantService. requiredKeys apply to
// declarations that do not list their own; declarationPath is the file
// used by Reload and may be empty when only ad-hoc resolution is needed.
func NewVariantService(declarations DeclarationService, requiredKeys []string, declarationPath string, logger *logger.Logger) VariantService {
	return &variantService{
		declarations:    declarations,
		resolver:        resolver.New(requiredKeys, nil),
		declarationPath: declarationPath,
		logger:          logger,
	}
}

func (s *variantService) Resolve(ctx context.Context, decl models.Declaration) ([]models.ResolvedConfig, error) {
	log := logger.FromContextOr(ctx, s.logger)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	resolved, err := s.resolver.ResolveDeclaration(decl)
	if err != nil {
		return nil, fmt.Errorf("error resolving variants: %w", err)
	}

	for _, variant := range decl.Variants {
		if redundant := resolver.RedundantOverrides(decl.Defaults, variant); len(redundant) > 0 {
			log.Warn().
				Str("variant", variant.Name).
				Str("dimension", variant.Dimension).
				Strs("keys", redundant).
				Msg("overrides equal to defaults have no effect")
		}
	}

	requiredKeys := decl.RequiredKeys
	if len(requiredKeys) == 0 {
		requiredKeys = s.resolver.RequiredKeys()
	}
	log.Info().Int("variants", len(resolved)).Strs("required_keys", requiredKeys).Msg("variants resolved")

	return resolved, nil
}

func (s *variantService) ResolveFile(ctx context.Context, path string) ([]models.ResolvedConfig, error) {
	decl, err := s.declarations.LoadDeclaration(ctx, path)
	if err != nil {
		return nil, err
	}

	return s.Resolve(ctx, decl)
}

func (s *variantService) Reload(ctx context.Context) ([]models.ResolvedConfig, error) {
	if s.declarationPath == "" {
		return nil, ErrNoDeclarationPath
	}

	resolved, err := s.ResolveFile(ctx, s.declarationPath)
	if err != nil {
		s.logger.Err(err).Str("path", s.declarationPath).Msg("reload failed, keeping previous snapshot")
		return nil, err
	}

	s.mu.Lock()
	s.snapshot = cloneConfigs(resolved)
	s.loaded = true
	s.mu.Unlock()

	return resolved, nil
}

func (s *variantService) Snapshot(ctx context.Context) ([]models.ResolvedConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return nil, ErrNoSnapshot
	}

	return cloneConfigs(s.snapshot), nil
}

func (s *variantService) Variant(ctx context.Context, dimension, name string) (models.ResolvedConfig, error) {
	snapshot, err := s.Snapshot(ctx)
	if err != nil {
		return models.ResolvedConfig{}, err
	}

	var matches []models.ResolvedConfig
	for _, cfg := range snapshot {
		if cfg.Name == name && (dimension == "" || cfg.Dimension == dimension) {
			matches = append(matches, cfg)
		}
	}

	switch len(matches) {
	case 0:
		return models.ResolvedConfig{}, fmt.Errorf("%w: %q", ErrVariantNotFound, name)
	case 1:
		return matches[0], nil
	default:
		return models.ResolvedConfig{}, fmt.Errorf("%w: %q", ErrAmbiguousVariant, name)
	}
}

func cloneConfigs(configs []models.ResolvedConfig) []models.ResolvedConfig {
	out := make([]models.ResolvedConfig, len(configs))
	for i, cfg := range configs {
		out[i] = models.ResolvedConfig{
			Name:      cfg.Name,
			Dimension: cfg.Dimension,
			Values:    maps.Clone(cfg.Values),
		}
	}
	return out
}
