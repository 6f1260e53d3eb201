// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resolver

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateVariantName = errors.New("duplicate variant name")
	ErrMissingRequiredKey   = errors.New("missing required key")
	ErrInvalidDimension     = errors.New("invalid dimension")
	ErrEmptyVariantName     = errors.New("empty variant name")
)

// VariantError ties a resolution failure to the variant (and key, if any)
// that caused it. It unwraps to one of the sentinel errors above.
type VariantError struct {
	// Index is the position of the variant in the input list.
	Index     int
	Variant   string
	Dimension string
	Key       string
	Err       error
}

func (e *VariantError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("variant %q (dimension %q, index %d): %v %q", e.Variant, e.Dimension, e.Index, e.Err, e.Key)
	}
	return fmt.Sprintf("variant %q (dimension %q, index %d): %v", e.Variant, e.Dimension, e.Index, e.Err)
}

func (e *VariantError) Unwrap() error {
	return e.Err
}
