package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVariantDefinition_Values_Precedence(t *testing.T) {
	v := VariantDefinition{
		Name:          "development",
		Dimension:     "flavor-type",
		ApplicationID: "pro.modernwizard.environmentPlusExample",
		ResValues: []ResValue{
			{Type: ResValueString, Name: "app_name", Value: "env+"},
			{Type: ResValueString, Name: "flutter_flavor", Value: "development"},
		},
		Overrides: map[string]string{
			"app_name": "env+ dev",
		},
	}

	got := v.Values()

	assert.Equal(t, map[string]string{
		KeyApplicationID: "pro.modernwizard.environmentPlusExample",
		KeyAppName:       "env+ dev",
		KeyFlavor:        "development",
	}, got)
}

func TestVariantDefinition_Values_LaterResValueWins(t *testing.T) {
	v := VariantDefinition{
		ResValues: []ResValue{
			{Type: ResValueString, Name: "app_name", Value: "first"},
			{Type: ResValueString, Name: "app_name", Value: "second"},
		},
	}

	assert.Equal(t, "second", v.Values()["app_name"])
}

func TestVariantDefinition_Values_EmptyApplicationIDNotSet(t *testing.T) {
	v := VariantDefinition{Overrides: map[string]string{"k": "v"}}

	got := v.Values()

	_, ok := got[KeyApplicationID]
	assert.False(t, ok)
	assert.Equal(t, map[string]string{"k": "v"}, got)
}

func TestVariantDefinition_Values_ReturnsCopy(t *testing.T) {
	v := VariantDefinition{Overrides: map[string]string{"k": "v"}}

	got := v.Values()
	got["k"] = "changed"

	assert.Equal(t, "v", v.Overrides["k"])
}

func TestResolvedConfig_KeysSorted(t *testing.T) {
	c := ResolvedConfig{Values: map[string]string{"b": "2", "a": "1", "c": "3"}}

	assert.Equal(t, []string{"a", "b", "c"}, c.Keys())
}

func TestResolvedConfig_Get(t *testing.T) {
	c := ResolvedConfig{Values: map[string]string{"a": "1"}}

	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "1", v)

	_, ok = c.Get("missing")
	assert.False(t, ok)
}

func TestNewResolveResponse_NilBecomesEmpty(t *testing.T) {
	resp := NewResolveResponse(nil)

	assert.NotNil(t, resp.Variants)
	assert.Equal(t, 0, resp.Length)
}

func TestNewAppBuildInfo_DefaultsToNotAvailable(t *testing.T) {
	info := NewAppBuildInfo("", "2026-01-01", "")

	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "2026-01-01", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
	assert.Equal(t, "Build version: N/A\nBuild date: 2026-01-01\nBuild commit: N/A\n", info.String())
}
