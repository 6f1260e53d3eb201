package validators

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-flavor-resolver/models"
)

// Field name constants accepted by [DeclarationValidator.Validate].
const (
	// FieldVariants requires at least one variant and validates each of them.
	FieldVariants = "variants"

	// FieldDimensions requires declared dimensions to be non-blank and unique.
	FieldDimensions = "dimensions"

	// FieldRequiredKeys requires declared required keys to be non-blank.
	FieldRequiredKeys = "required_keys"

	// FieldDefaults requires default keys to be non-blank.
	FieldDefaults = "defaults"

	// FieldApplicationID checks the variant application ID syntax, when set.
	FieldApplicationID = "application_id"

	// FieldResValues validates every res value of a variant.
	FieldResValues = "res_values"

	// FieldOverrides requires override keys to be non-blank.
	FieldOverrides = "overrides"

	// FieldResValueName requires a non-blank res value name.
	FieldResValueName = "name"

	// FieldResValueType requires a supported res value type.
	FieldResValueType = "type"
)

var allowedResValueTypes = []models.ResValueType{
	models.ResValueString,
	models.ResValueBool,
	models.ResValueInteger,
	models.ResValueColor,
	models.ResValueDimen,
}

// applicationIDPattern matches dotted package names with at least two
// segments, each starting with a letter.
var applicationIDPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*(\.[A-Za-z][A-Za-z0-9_]*)+$`)

// DeclarationValidator validates [models.Declaration],
// [models.VariantDefinition] and [models.ResValue] values (and pointers to them).
type DeclarationValidator struct {
}

func NewDeclarationValidator() Validator {
	return &DeclarationValidator{}
}

func (v *DeclarationValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Declaration:
		return v.validateDeclaration(ctx, value, fields...)
	case *models.Declaration:
		return v.validateDeclaration(ctx, *value, fields...)

	case models.VariantDefinition:
		return v.validateVariant(ctx, value, fields...)
	case *models.VariantDefinition:
		return v.validateVariant(ctx, *value, fields...)

	case models.ResValue:
		return v.validateResValue(ctx, value, fields...)
	case *models.ResValue:
		return v.validateResValue(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *DeclarationValidator) validateDeclaration(ctx context.Context, decl models.Declaration, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDimensions, FieldRequiredKeys, FieldDefaults, FieldVariants}
	}

	for _, f := range fields {
		switch f {
		case FieldVariants:
			if len(decl.Variants) == 0 {
				return ErrNoVariants
			}
			for i, variant := range decl.Variants {
				if err := v.validateVariant(ctx, variant); err != nil {
					return fmt.Errorf("variant %q at index %d: %w", variant.Name, i, err)
				}
			}
		case FieldDimensions:
			seen := make(map[string]struct{}, len(decl.Dimensions))
			for _, d := range decl.Dimensions {
				if isBlank(d) {
					return ErrBlankDimension
				}
				if _, dup := seen[d]; dup {
					return fmt.Errorf("%w: %q", ErrDuplicateDimension, d)
				}
				seen[d] = struct{}{}
			}
		case FieldRequiredKeys:
			for _, key := range decl.RequiredKeys {
				if isBlank(key) {
					return ErrBlankRequiredKey
				}
			}
		case FieldDefaults:
			for key := range decl.Defaults {
				if isBlank(key) {
					return ErrBlankDefaultKey
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DeclarationValidator) validateVariant(ctx context.Context, variant models.VariantDefinition, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldApplicationID, FieldResValues, FieldOverrides}
	}

	for _, f := range fields {
		switch f {
		case FieldApplicationID:
			if variant.ApplicationID != "" && !applicationIDPattern.MatchString(variant.ApplicationID) {
				return fmt.Errorf("%w: %q", ErrInvalidApplicationID, variant.ApplicationID)
			}
		case FieldResValues:
			for i, rv := range variant.ResValues {
				if err := v.validateResValue(ctx, rv); err != nil {
					return fmt.Errorf("res value at index %d: %w", i, err)
				}
			}
		case FieldOverrides:
			for key := range variant.Overrides {
				if isBlank(key) {
					return ErrBlankOverrideKey
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DeclarationValidator) validateResValue(ctx context.Context, rv models.ResValue, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldResValueName, FieldResValueType}
	}

	for _, f := range fields {
		switch f {
		case FieldResValueName:
			if isBlank(rv.Name) {
				return ErrBlankResValueName
			}
		case FieldResValueType:
			if !isAllowedResValueType(rv.Type) {
				return fmt.Errorf("%w: %q", ErrUnsupportedResValueType, rv.Type)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isAllowedResValueType(t models.ResValueType) bool {
	for _, allowed := range allowedResValueTypes {
		if t == allowed {
			return true
		}
	}
	return false
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
