// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container. It is
// populated by merging environment variables, command-line flags and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix : prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       : direct environment variable name for scalar fields.
//   - envDefault: value used when the variable is unset.
type StructuredConfig struct {
	// App holds version, logging and resolution defaults.
	App App `envPrefix:"APP_"`

	// Storage holds the declaration source and the output destination.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the HTTP listener settings.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the address of a remote resolver server used by the
	// CLI in remote mode.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds background reload settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// Query selects a lookup in the remote server's resolved snapshot
	// instead of resolving a local declaration. Used by the CLI only.
	Query Query `envPrefix:"QUERY_"`

	// JSONFilePath is the optional path to a JSON configuration file,
	// merged on top of env and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// Version is exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION" envDefault:"0.0.0-dev"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// RequiredKeys is the default set of keys every resolved variant must
	// carry when the declaration does not list its own.
	// Env: APP_REQUIRED_KEYS (comma separated)
	RequiredKeys []string `env:"REQUIRED_KEYS" envSeparator:"," envDefault:"applicationId,app_name,flutter_flavor"`
}

// Storage groups the declaration source and output settings.
type Storage struct {
	Declaration Declaration `envPrefix:"DECLARATION_"`
	Output      Output      `envPrefix:"OUTPUT_"`
}

// Declaration locates the variant declaration file.
type Declaration struct {
	// Path to a .json, .jsonc, .yaml or .yml declaration.
	// Env: STORAGE_DECLARATION_PATH
	Path string `env:"PATH"`
}

// Output controls where and how the CLI writes resolved configurations.
type Output struct {
	// Dir, when set, receives one file per variant. Otherwise the CLI
	// writes the whole list to stdout.
	// Env: STORAGE_OUTPUT_DIR
	Dir string `env:"DIR"`

	// Format is one of "json", "yaml" or "env".
	// Env: STORAGE_OUTPUT_FORMAT
	Format string `env:"FORMAT" envDefault:"json"`
}

// Server holds network and timeout settings for the HTTP listener.
type Server struct {
	// HTTPAddress is the "host:port" the server listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Adapter holds outbound settings for talking to a remote resolver server.
type Adapter struct {
	// HTTPAddress is the base address of the remote server
	// (e.g. "http://localhost:8080"). Empty means local resolution.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds each outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
}

// Query describes a read-only lookup against a remote resolver server.
type Query struct {
	// List prints every variant of the server snapshot.
	// Env: QUERY_LIST
	List bool `env:"LIST"`

	// Variant prints one variant of the server snapshot by name.
	// Env: QUERY_VARIANT
	Variant string `env:"VARIANT"`

	// Dimension narrows Variant when the name exists in several dimensions.
	// Env: QUERY_DIMENSION
	Dimension string `env:"DIMENSION"`
}

// Enabled reports whether a snapshot lookup was requested.
func (q Query) Enabled() bool {
	return q.List || q.Variant != ""
}

// Workers holds configuration for background workers.
type Workers struct {
	// ReloadInterval is how often the server re-reads and re-resolves the
	// declaration file. Zero disables periodic reloads.
	// Env: WORKERS_RELOAD_INTERVAL
	ReloadInterval time.Duration `env:"RELOAD_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from env, the process command line and the optional JSON file.
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := loadStructuredConfig(os.Args[1:])
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}

func loadStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
