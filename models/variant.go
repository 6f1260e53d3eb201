// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Well-known keys of the configuration contract handed to the packaging step.
const (
	// KeyApplicationID holds the package identifier of the produced artifact.
	KeyApplicationID = "applicationId"

	// KeyAppName holds the display-name resource override.
	KeyAppName = "app_name"

	// KeyFlavor holds the flavor identifier exposed to the running app.
	KeyFlavor = "flutter_flavor"
)

// ResValueType names the resource type of a [ResValue].
type ResValueType string

const (
	ResValueString  ResValueType = "string"
	ResValueBool    ResValueType = "bool"
	ResValueInteger ResValueType = "integer"
	ResValueColor   ResValueType = "color"
	ResValueDimen   ResValueType = "dimen"
)

// ResValue is a typed resource value declared by a variant.
// Its Name becomes the override key and Value the override value.
type ResValue struct {
	// Type is the resource type, e.g. "string".
	Type ResValueType `json:"type" yaml:"type"`

	// Name is the resource name, e.g. "app_name".
	Name string `json:"name" yaml:"name"`

	// Value is the literal resource value.
	Value string `json:"value" yaml:"value"`
}

// VariantDefinition is one named build variant as declared by the author.
//
// A definition is created once when the declaration is loaded and is not
// modified afterwards. The effective override set is produced by [VariantDefinition.Values].
type VariantDefinition struct {
	// Name uniquely identifies the variant within its Dimension
	// (e.g. "development").
	Name string `json:"name" yaml:"name"`

	// Dimension is the axis the variant belongs to (e.g. "flavor-type").
	Dimension string `json:"dimension" yaml:"dimension"`

	// ApplicationID, when set, overrides [KeyApplicationID].
	ApplicationID string `json:"application_id,omitempty" yaml:"application_id,omitempty"`

	// ResValues are typed resource overrides keyed by their Name.
	ResValues []ResValue `json:"res_values,omitempty" yaml:"res_values,omitempty"`

	// Overrides are free-form key/value overrides. They take precedence over
	// ApplicationID and ResValues when keys collide.
	Overrides map[string]string `json:"overrides,omitempty" yaml:"overrides,omitempty"`
}

// Values flattens the definition into a single override mapping.
//
// Precedence (lowest to highest): ApplicationID, ResValues in declaration
// order, Overrides. The returned map is always a fresh copy.
func (v VariantDefinition) Values() map[string]string {
	values := make(map[string]string, len(v.ResValues)+len(v.Overrides)+1)

	if v.ApplicationID != "" {
		values[KeyApplicationID] = v.ApplicationID
	}
	for _, rv := range v.ResValues {
		values[rv.Name] = rv.Value
	}
	for key, value := range v.Overrides {
		values[key] = value
	}

	return values
}
