package resolver

import (
	"errors"
	"sync"
	"testing"

	"github.com/MKhiriev/go-flavor-resolver/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func flavorDefaults() map[string]string {
	return map[string]string{
		models.KeyApplicationID: "pro.modernwizard.environmentPlusExample",
		models.KeyAppName:       "env+",
	}
}

func flavorVariants() []models.VariantDefinition {
	return []models.VariantDefinition{
		{Name: "development", Dimension: "flavor-type", Overrides: map[string]string{models.KeyFlavor: "development"}},
		{Name: "production", Dimension: "flavor-type", Overrides: map[string]string{models.KeyFlavor: "production"}},
	}
}

func collectVariantErrors(t *testing.T, err error) []*VariantError {
	t.Helper()
	joined, ok := err.(interface{ Unwrap() []error })
	require.True(t, ok, "expected a joined error, got %T", err)

	var out []*VariantError
	for _, e := range joined.Unwrap() {
		var ve *VariantError
		require.True(t, errors.As(e, &ve))
		out = append(out, ve)
	}
	return out
}

// ─────────────────────────────────────────────
// Resolve
// ─────────────────────────────────────────────

func TestResolve_FlavorScenario(t *testing.T) {
	r := New(DefaultRequiredKeys, []string{"flavor-type"})

	got, err := r.Resolve(flavorDefaults(), flavorVariants())

	require.NoError(t, err)
	assert.Equal(t, []models.ResolvedConfig{
		{
			Name:      "development",
			Dimension: "flavor-type",
			Values: map[string]string{
				"applicationId":  "pro.modernwizard.environmentPlusExample",
				"app_name":       "env+",
				"flutter_flavor": "development",
			},
		},
		{
			Name:      "production",
			Dimension: "flavor-type",
			Values: map[string]string{
				"applicationId":  "pro.modernwizard.environmentPlusExample",
				"app_name":       "env+",
				"flutter_flavor": "production",
			},
		},
	}, got)
}

func TestResolve_PreservesDeclarationOrder(t *testing.T) {
	names := []string{"zeta", "alpha", "mid", "beta"}
	variants := make([]models.VariantDefinition, 0, len(names))
	for _, n := range names {
		variants = append(variants, models.VariantDefinition{Name: n, Dimension: "d"})
	}

	got, err := New(nil, nil).Resolve(nil, variants)

	require.NoError(t, err)
	require.Len(t, got, len(names))
	for i, n := range names {
		assert.Equal(t, n, got[i].Name)
	}
}

func TestResolve_OverrideWins(t *testing.T) {
	defaults := map[string]string{"app_name": "env+", "untouched": "x"}
	variants := []models.VariantDefinition{
		{Name: "dev", Dimension: "d", Overrides: map[string]string{"app_name": "env+ dev"}},
	}

	got, err := New(nil, nil).Resolve(defaults, variants)

	require.NoError(t, err)
	assert.Equal(t, "env+ dev", got[0].Values["app_name"])
	assert.Equal(t, "x", got[0].Values["untouched"])
}

func TestResolve_ApplicationIDAndResValues(t *testing.T) {
	variants := []models.VariantDefinition{
		{
			Name:          "development",
			Dimension:     "flavor-type",
			ApplicationID: "pro.modernwizard.environmentPlusExample",
			ResValues: []models.ResValue{
				{Type: models.ResValueString, Name: "app_name", Value: "env+"},
				{Type: models.ResValueString, Name: "flutter_flavor", Value: "development"},
			},
		},
	}

	got, err := New(DefaultRequiredKeys, nil).Resolve(nil, variants)

	require.NoError(t, err)
	assert.Equal(t, "pro.modernwizard.environmentPlusExample", got[0].Values[models.KeyApplicationID])
	assert.Equal(t, "env+", got[0].Values[models.KeyAppName])
	assert.Equal(t, "development", got[0].Values[models.KeyFlavor])
}

func TestResolve_DefaultsNotMutated(t *testing.T) {
	defaults := flavorDefaults()

	_, err := New(nil, nil).Resolve(defaults, []models.VariantDefinition{
		{Name: "dev", Dimension: "d", Overrides: map[string]string{models.KeyAppName: "changed"}},
	})

	require.NoError(t, err)
	assert.Equal(t, flavorDefaults(), defaults)
}

func TestResolve_EmptyInput(t *testing.T) {
	got, err := New(DefaultRequiredKeys, nil).Resolve(flavorDefaults(), nil)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestResolve_DuplicateVariantName(t *testing.T) {
	variants := append(flavorVariants(), models.VariantDefinition{
		Name:      "development",
		Dimension: "flavor-type",
		Overrides: map[string]string{models.KeyFlavor: "development"},
	})

	got, err := New(DefaultRequiredKeys, nil).Resolve(flavorDefaults(), variants)

	assert.Nil(t, got)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateVariantName)

	ves := collectVariantErrors(t, err)
	require.Len(t, ves, 1)
	assert.Equal(t, 2, ves[0].Index)
	assert.Equal(t, "development", ves[0].Variant)
}

func TestResolve_SameNameDifferentDimensionAllowed(t *testing.T) {
	variants := []models.VariantDefinition{
		{Name: "free", Dimension: "tier"},
		{Name: "free", Dimension: "store"},
	}

	got, err := New(nil, nil).Resolve(nil, variants)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestResolve_MissingRequiredKey(t *testing.T) {
	defaults := map[string]string{models.KeyApplicationID: "pro.modernwizard.environmentPlusExample"}

	got, err := New(DefaultRequiredKeys, nil).Resolve(defaults, flavorVariants())

	assert.Nil(t, got)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingRequiredKey)

	ves := collectVariantErrors(t, err)
	require.Len(t, ves, 2)
	for _, ve := range ves {
		assert.Equal(t, models.KeyAppName, ve.Key)
	}
	assert.Contains(t, err.Error(), `"app_name"`)
}

func TestResolve_RequiredKeyInheritedFromDefaults(t *testing.T) {
	got, err := New([]string{models.KeyApplicationID}, nil).Resolve(flavorDefaults(), flavorVariants())

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestResolve_InvalidDimension(t *testing.T) {
	tests := []struct {
		name       string
		dimensions []string
		dimension  string
	}{
		{name: "empty", dimension: ""},
		{name: "blank", dimension: "   "},
		{name: "undeclared", dimensions: []string{"flavor-type"}, dimension: "store"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			variants := []models.VariantDefinition{{Name: "dev", Dimension: tt.dimension}}

			got, err := New(nil, tt.dimensions).Resolve(nil, variants)

			assert.Nil(t, got)
			assert.ErrorIs(t, err, ErrInvalidDimension)
		})
	}
}

func TestResolve_EmptyVariantName(t *testing.T) {
	got, err := New(nil, nil).Resolve(nil, []models.VariantDefinition{{Name: " ", Dimension: "d"}})

	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrEmptyVariantName)
}

func TestResolve_AllOrNothing(t *testing.T) {
	variants := []models.VariantDefinition{
		{Name: "good", Dimension: "d", Overrides: map[string]string{"k": "v"}},
		{Name: "bad", Dimension: ""},
	}

	got, err := New([]string{"k"}, nil).Resolve(nil, variants)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrInvalidDimension)
	assert.ErrorIs(t, err, ErrMissingRequiredKey)
}

func TestResolve_Idempotent(t *testing.T) {
	r := New(DefaultRequiredKeys, nil)

	first, err := r.Resolve(flavorDefaults(), flavorVariants())
	require.NoError(t, err)
	second, err := r.Resolve(flavorDefaults(), flavorVariants())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestResolve_ConcurrentCallers(t *testing.T) {
	r := New(DefaultRequiredKeys, []string{"flavor-type"})
	want, err := r.Resolve(flavorDefaults(), flavorVariants())
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([][]models.ResolvedConfig, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = r.Resolve(flavorDefaults(), flavorVariants())
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestNew_CopiesRequiredKeys(t *testing.T) {
	keys := []string{"a"}
	r := New(keys, nil)
	keys[0] = "b"

	assert.Equal(t, []string{"a"}, r.RequiredKeys())
}

// ─────────────────────────────────────────────
// ResolveDeclaration
// ─────────────────────────────────────────────

func TestResolveDeclaration_UsesDeclaredRequiredKeys(t *testing.T) {
	decl := models.Declaration{
		Dimensions:   []string{"flavor-type"},
		RequiredKeys: []string{"only_this"},
		Variants:     []models.VariantDefinition{{Name: "dev", Dimension: "flavor-type"}},
	}

	_, err := New(DefaultRequiredKeys, nil).ResolveDeclaration(decl)

	require.Error(t, err)
	ves := collectVariantErrors(t, err)
	require.Len(t, ves, 1)
	assert.Equal(t, "only_this", ves[0].Key)
}

func TestResolveDeclaration_FallsBackToResolverKeys(t *testing.T) {
	decl := models.Declaration{
		Dimensions: []string{"flavor-type"},
		Defaults:   flavorDefaults(),
		Variants:   flavorVariants(),
	}

	got, err := New(DefaultRequiredKeys, nil).ResolveDeclaration(decl)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestResolveDeclaration_UndeclaredDimension(t *testing.T) {
	decl := models.Declaration{
		Dimensions: []string{"flavor-type"},
		Variants:   []models.VariantDefinition{{Name: "dev", Dimension: "other"}},
	}

	_, err := New(nil, nil).ResolveDeclaration(decl)

	assert.ErrorIs(t, err, ErrInvalidDimension)
}

// ─────────────────────────────────────────────
// RedundantOverrides
// ─────────────────────────────────────────────

func TestRedundantOverrides(t *testing.T) {
	variant := models.VariantDefinition{
		Name:          "development",
		Dimension:     "flavor-type",
		ApplicationID: "pro.modernwizard.environmentPlusExample",
		ResValues: []models.ResValue{
			{Type: models.ResValueString, Name: "app_name", Value: "env+"},
			{Type: models.ResValueString, Name: "flutter_flavor", Value: "development"},
		},
	}

	got := RedundantOverrides(flavorDefaults(), variant)

	assert.Equal(t, []string{models.KeyAppName, models.KeyApplicationID}, got)
}

func TestRedundantOverrides_None(t *testing.T) {
	assert.Empty(t, RedundantOverrides(flavorDefaults(), flavorVariants()[0]))
}
