package config

import (
	"fmt"
	"os"
)

// ClientConfig is the command line tool's view of [StructuredConfig].
type ClientConfig struct {
	// App contains logging and default required keys.
	App App
	// Adapter is set when resolution is delegated to a remote server.
	Adapter Adapter
	// Storage contains the declaration path and output settings.
	Storage Storage
	// Query, when enabled, replaces resolution with a remote lookup.
	Query Query
}

// GetClientConfig builds and validates the CLI config view from env, the
// process command line and the optional JSON file.
func GetClientConfig() (*ClientConfig, error) {
	return getClientConfig(os.Args[1:])
}

func getClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := loadStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App:     cfg.App,
		Adapter: cfg.Adapter,
		Storage: cfg.Storage,
		Query:   cfg.Query,
	}

	return clientCfg, clientCfg.validate()
}
