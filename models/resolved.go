// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "sort"

// ResolvedConfig is the final merged key/value set of one variant, ready to
// be consumed by a packaging step. It is produced by the resolver and never
// stored.
type ResolvedConfig struct {
	Name      string            `json:"name" yaml:"name"`
	Dimension string            `json:"dimension" yaml:"dimension"`
	Values    map[string]string `json:"values" yaml:"values"`
}

// Get returns the resolved value of key and whether it is present.
func (c ResolvedConfig) Get(key string) (string, bool) {
	value, ok := c.Values[key]
	return value, ok
}

// Keys returns the resolved keys in lexical order.
func (c ResolvedConfig) Keys() []string {
	keys := make([]string, 0, len(c.Values))
	for key := range c.Values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return keys
}
