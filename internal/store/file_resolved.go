package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-flavor-resolver/internal/logger"
	"github.com/MKhiriev/go-flavor-resolver/models"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type resolvedFileStorage struct {
	logger *logger.Logger
}

// NewResolvedFileStorage constructs a [ResolvedStorage] writing to the local
// file system.
func NewResolvedFileStorage(logger *logger.Logger) ResolvedStorage {
	return &resolvedFileStorage{logger: logger}
}

func (s *resolvedFileStorage) SaveResolved(ctx context.Context, dir string, format Format, configs ...models.ResolvedConfig) ([]string, error) {
	if format == FormatJSONC {
		format = FormatJSON
	}

	paths := make([]string, 0, len(configs))
	for _, cfg := range configs {
		if err := ctx.Err(); err != nil {
			return paths, err
		}

		path, err := outputPath(dir, cfg, format)
		if err != nil {
			return paths, err
		}

		var buf bytes.Buffer
		if err = encodeOne(&buf, format, cfg); err != nil {
			return paths, err
		}

		if err = os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return paths, fmt.Errorf("%w: %v", ErrWritingOutput, err)
		}
		if err = os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			return paths, fmt.Errorf("%w: %v", ErrWritingOutput, err)
		}

		s.logger.Debug().Str("variant", cfg.Name).Str("path", path).Msg("resolved config written")
		paths = append(paths, path)
	}

	return paths, nil
}

func (s *resolvedFileStorage) EncodeResolved(ctx context.Context, w io.Writer, format Format, configs ...models.ResolvedConfig) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if configs == nil {
		configs = []models.ResolvedConfig{}
	}

	switch format {
	case FormatJSON, FormatJSONC:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return wrapWrite(enc.Encode(configs))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(configs); err != nil {
			return wrapWrite(err)
		}
		return wrapWrite(enc.Close())
	case FormatEnv:
		for i, cfg := range configs {
			if i > 0 {
				if _, err := io.WriteString(w, "\n"); err != nil {
					return wrapWrite(err)
				}
			}
			if _, err := fmt.Fprintf(w, "# %s (%s)\n", cfg.Name, cfg.Dimension); err != nil {
				return wrapWrite(err)
			}
			if err := writeEnv(w, cfg); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func encodeOne(w io.Writer, format Format, cfg models.ResolvedConfig) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return wrapWrite(enc.Encode(cfg))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return wrapWrite(err)
		}
		return wrapWrite(enc.Close())
	case FormatEnv:
		return writeEnv(w, cfg)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// writeEnv writes cfg as a dotenv document, one sorted KEY=value line per
// key, escaped so that dotenv readers get the exact values back.
func writeEnv(w io.Writer, cfg models.ResolvedConfig) error {
	if len(cfg.Values) == 0 {
		return nil
	}

	doc, err := godotenv.Marshal(cfg.Values)
	if err != nil {
		return wrapWrite(err)
	}

	_, err = io.WriteString(w, doc+"\n")
	return wrapWrite(err)
}

func outputPath(dir string, cfg models.ResolvedConfig, format Format) (string, error) {
	for _, element := range []string{cfg.Dimension, cfg.Name} {
		if element == "" || element == "." || element == ".." || strings.ContainsAny(element, `/\`) {
			return "", fmt.Errorf("%w: %q", ErrInvalidFileName, element)
		}
	}

	return filepath.Join(dir, cfg.Dimension, cfg.Name+"."+format.Extension()), nil
}

func wrapWrite(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrWritingOutput, err)
}
