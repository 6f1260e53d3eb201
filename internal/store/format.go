package store

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format names a serialization format.
type Format string

const (
	FormatJSON  Format = "json"
	FormatJSONC Format = "jsonc"
	FormatYAML  Format = "yaml"
	FormatEnv   Format = "env"
)

// ParseFormat maps a user supplied name to a Format.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatJSON, FormatJSONC, FormatYAML, FormatEnv:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// FormatFromPath picks a declaration format from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" || Format(ext) == FormatEnv {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Base(path))
	}

	return ParseFormat(ext)
}

// Extension returns the file extension written for f, without the dot.
func (f Format) Extension() string {
	if f == FormatJSONC {
		return string(FormatJSON)
	}
	return string(f)
}
