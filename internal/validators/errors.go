package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrNoVariants              = errors.New("declaration has no variants")
	ErrBlankDimension          = errors.New("declared dimension is blank")
	ErrDuplicateDimension      = errors.New("dimension declared twice")
	ErrBlankRequiredKey        = errors.New("required key is blank")
	ErrBlankDefaultKey         = errors.New("default key is blank")
	ErrInvalidApplicationID    = errors.New("invalid application ID")
	ErrBlankOverrideKey        = errors.New("override key is blank")
	ErrBlankResValueName       = errors.New("res value name is blank")
	ErrUnsupportedResValueType = errors.New("unsupported res value type")
)
