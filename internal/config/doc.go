// Package config loads, merges and validates the settings of the resolver
// server and the resolver CLI.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables (with defaults)
//  2. Command-line flags
//  3. JSON config file
//
// The entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the command line tool.
package config
