// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"
	"strings"
)

// OutputFormats lists the accepted values of [Output.Format].
var OutputFormats = []string{"json", "yaml", "env"}

// validate checks the merged server configuration before start-up.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return fmt.Errorf("%w: address and a positive request timeout are required", ErrInvalidServerConfigs)
	}

	if cfg.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: shutdown timeout must be positive", ErrInvalidServerConfigs)
	}

	if cfg.Workers.ReloadInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Workers.ReloadInterval > 0 && cfg.Storage.Declaration.Path == "" {
		return fmt.Errorf("%w: periodic reload needs a declaration path", ErrInvalidStorageConfigs)
	}

	return validateApp(cfg.App)
}

func (cfg *ClientConfig) validate() error {
	if err := cfg.validateQuery(); err != nil {
		return err
	}

	if !cfg.Query.Enabled() && cfg.Storage.Declaration.Path == "" {
		return fmt.Errorf("%w: declaration path is required", ErrInvalidStorageConfigs)
	}

	if !slices.Contains(OutputFormats, cfg.Storage.Output.Format) {
		return fmt.Errorf("%w: unsupported output format %q", ErrInvalidStorageConfigs, cfg.Storage.Output.Format)
	}

	if cfg.Adapter.HTTPAddress != "" && cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return validateApp(cfg.App)
}

func (cfg *ClientConfig) validateQuery() error {
	q := cfg.Query
	switch {
	case q.List && q.Variant != "":
		return fmt.Errorf("%w: -list and -variant are exclusive", ErrInvalidQueryConfigs)
	case q.Dimension != "" && q.Variant == "":
		return fmt.Errorf("%w: -dimension needs -variant", ErrInvalidQueryConfigs)
	case q.Enabled() && cfg.Adapter.HTTPAddress == "":
		return fmt.Errorf("%w: snapshot lookups need a remote server address", ErrInvalidAdapterConfigs)
	}
	return nil
}

func validateApp(app App) error {
	for _, key := range app.RequiredKeys {
		if strings.TrimSpace(key) == "" {
			return fmt.Errorf("%w: blank required key", ErrInvalidAppConfigs)
		}
	}

	return nil
}
