package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses args into a [StructuredConfig]. Unset flags leave the
// corresponding fields zero so they do not override other sources.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-remote remote resolver server base address
//	-f declaration file path
//	-o output directory (one file per variant)
//	-format output format: json, yaml or env
//	-required-keys comma separated required keys, also sent with remote
//	               declarations that do not list their own
//	-list print the remote server's resolved variants
//	-variant print one remote variant by name
//	-dimension dimension of the -variant lookup
//	-log-level log level
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-reload-interval declaration reload interval (e.g., "1m")
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)

	var serverAddress NetAddress
	var remoteAddress string
	var declarationPath string
	var outputDir string
	var outputFormat string
	var requiredKeys string
	var logLevel string
	var requestTimeout time.Duration
	var reloadInterval time.Duration
	var jsonConfigPath string
	var query Query

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&remoteAddress, "remote", "", "Remote resolver server address")
	fs.StringVar(&declarationPath, "f", "", "Variant declaration file path")
	fs.StringVar(&outputDir, "o", "", "Output directory")
	fs.StringVar(&outputDir, "out", "", "Output directory (alias)")
	fs.StringVar(&outputFormat, "format", "", "Output format: json, yaml or env")
	fs.StringVar(&requiredKeys, "required-keys", "", "Comma separated required keys (sent to -remote when the declaration has none)")
	fs.BoolVar(&query.List, "list", false, "List the variants resolved by the -remote server")
	fs.StringVar(&query.Variant, "variant", "", "Print one variant resolved by the -remote server")
	fs.StringVar(&query.Dimension, "dimension", "", "Dimension of the -variant lookup")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&reloadInterval, "reload-interval", 0, "Declaration reload interval (e.g., 1m)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			LogLevel:     logLevel,
			RequiredKeys: splitList(requiredKeys),
		},
		Storage: Storage{
			Declaration: Declaration{Path: declarationPath},
			Output:      Output{Dir: outputDir, Format: outputFormat},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    remoteAddress,
			RequestTimeout: requestTimeout,
		},
		Workers:      Workers{ReloadInterval: reloadInterval},
		Query:        query,
		JSONFilePath: jsonConfigPath,
	}, nil
}

// splitList splits a comma separated list, dropping blank items.
// It returns nil for an empty input.
func splitList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when neither Host nor Port are set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// Hosts other than "localhost" must be IP addresses.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
