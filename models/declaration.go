package models

// Declaration is the full static description of a variant set: the
// declared dimensions, the keys every variant must end up with, the shared
// defaults and the variants themselves in declaration order.
type Declaration struct {
	// Dimensions lists the declared dimension names. When empty, any
	// non-blank dimension is accepted.
	Dimensions []string `json:"dimensions,omitempty" yaml:"dimensions,omitempty"`

	// RequiredKeys lists keys every resolved variant must carry.
	// When empty the resolver falls back to its configured default set.
	RequiredKeys []string `json:"required_keys,omitempty" yaml:"required_keys,omitempty"`

	// Defaults is the shared mapping every variant is merged over.
	Defaults map[string]string `json:"defaults,omitempty" yaml:"defaults,omitempty"`

	// Variants in declaration order.
	Variants []VariantDefinition `json:"variants" yaml:"variants"`
}
