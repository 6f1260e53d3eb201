// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package resolver turns a set of named build-variant declarations into
// validated, fully merged configurations.
//
// Resolution is a pure single pass: every variant starts from a copy of the
// shared defaults, its own values are overlaid on top (variant wins), and
// the result is checked against the required keys. Output order equals input
// order. Resolution is all-or-nothing: if any variant is invalid no
// configuration is returned at all, and every problem found in the pass is
// reported through a joined error whose parts are [*VariantError] values.
//
// A [Resolver] holds only immutable settings and may be shared between
// goroutines.
package resolver

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-flavor-resolver/models"
)

// DefaultRequiredKeys is the configuration contract expected by the
// packaging step when nothing else is configured.
var DefaultRequiredKeys = []string{models.KeyApplicationID, models.KeyAppName, models.KeyFlavor}

type Resolver struct {
	requiredKeys []string
	dimensions   map[string]struct{}
}

// New builds a Resolver that demands requiredKeys in every resolved
// variant. When dimensions is non-empty, variants must belong to one of
// them; otherwise any non-blank dimension is accepted.
func New(requiredKeys []string, dimensions []string) *Resolver {
	r := &Resolver{
		requiredKeys: append([]string(nil), requiredKeys...),
	}

	if len(dimensions) > 0 {
		r.dimensions = make(map[string]struct{}, len(dimensions))
		for _, d := range dimensions {
			r.dimensions[d] = struct{}{}
		}
	}

	return r
}

// RequiredKeys returns a copy of the keys this resolver demands.
func (r *Resolver) RequiredKeys() []string {
	return append([]string(nil), r.requiredKeys...)
}

// Resolve merges each variant over defaults.
//
// On success it returns exactly one [models.ResolvedConfig] per variant in
// input order. On failure it returns nil and an error matching one or more
// of [ErrDuplicateVariantName], [ErrMissingRequiredKey],
// [ErrInvalidDimension] and [ErrEmptyVariantName].
func (r *Resolver) Resolve(defaults map[string]string, variants []models.VariantDefinition) ([]models.ResolvedConfig, error) {
	var errs []error

	type variantID struct {
		dimension string
		name      string
	}
	seen := make(map[variantID]int, len(variants))
	resolved := make([]models.ResolvedConfig, 0, len(variants))

	for i, variant := range variants {
		fail := func(key string, err error) {
			errs = append(errs, &VariantError{
				Index:     i,
				Variant:   variant.Name,
				Dimension: variant.Dimension,
				Key:       key,
				Err:       err,
			})
		}

		if strings.TrimSpace(variant.Name) == "" {
			fail("", ErrEmptyVariantName)
		}
		if !r.validDimension(variant.Dimension) {
			fail("", ErrInvalidDimension)
		}

		id := variantID{dimension: variant.Dimension, name: variant.Name}
		if _, dup := seen[id]; dup && variant.Name != "" {
			fail("", ErrDuplicateVariantName)
		}
		seen[id] = i

		values := merge(defaults, variant.Values())
		for _, key := range r.requiredKeys {
			if _, ok := values[key]; !ok {
				fail(key, ErrMissingRequiredKey)
			}
		}

		resolved = append(resolved, models.ResolvedConfig{
			Name:      variant.Name,
			Dimension: variant.Dimension,
			Values:    values,
		})
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return resolved, nil
}

// ResolveDeclaration resolves decl.Variants over decl.Defaults using the
// declaration's own dimensions and, when declared, its required keys.
// Otherwise the receiver's required keys apply.
func (r *Resolver) ResolveDeclaration(decl models.Declaration) ([]models.ResolvedConfig, error) {
	requiredKeys := r.requiredKeys
	if len(decl.RequiredKeys) > 0 {
		requiredKeys = decl.RequiredKeys
	}

	return New(requiredKeys, decl.Dimensions).Resolve(decl.Defaults, decl.Variants)
}

// RedundantOverrides returns, in lexical order, the keys the variant sets to
// exactly the value it would inherit from defaults. Such overrides have no
// effect and can be removed from the declaration.
func RedundantOverrides(defaults map[string]string, variant models.VariantDefinition) []string {
	own := models.ResolvedConfig{Values: variant.Values()}

	var redundant []string
	for _, key := range own.Keys() {
		if def, ok := defaults[key]; ok && def == own.Values[key] {
			redundant = append(redundant, key)
		}
	}

	return redundant
}

func (r *Resolver) validDimension(dimension string) bool {
	if strings.TrimSpace(dimension) == "" {
		return false
	}
	if r.dimensions == nil {
		return true
	}

	_, ok := r.dimensions[dimension]
	return ok
}

func merge(defaults, overrides map[string]string) map[string]string {
	merged := make(map[string]string, len(defaults)+len(overrides))
	for key, value := range defaults {
		merged[key] = value
	}
	for key, value := range overrides {
		merged[key] = value
	}

	return merged
}
