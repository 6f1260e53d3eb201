// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks variant declarations for authoring mistakes
// before they reach the resolver.
//
// The resolver already enforces the resolution invariants (unique names,
// required keys, known dimensions). Validators here look at the shape of
// the input instead, for example a malformed application identifier or a
// resource value of an unknown type.
//
// Every validator accepts an optional list of field names; when given,
// only those fields are checked.
package validators

import "context"

// Validator validates an arbitrary input value, optionally restricted to
// the named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
