package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/MKhiriev/go-flavor-resolver/internal/logger"
	"github.com/MKhiriev/go-flavor-resolver/models"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

type declarationFileStorage struct {
	logger *logger.Logger
}

// NewDeclarationFileStorage constructs a [DeclarationStorage] reading from
// the local file system.
func NewDeclarationFileStorage(logger *logger.Logger) DeclarationStorage {
	return &declarationFileStorage{logger: logger}
}

func (s *declarationFileStorage) LoadDeclaration(ctx context.Context, path string) (models.Declaration, error) {
	if err := ctx.Err(); err != nil {
		return models.Declaration{}, err
	}

	format, err := FormatFromPath(path)
	if err != nil {
		return models.Declaration{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return models.Declaration{}, fmt.Errorf("%w: %s", ErrDeclarationNotFound, path)
		}
		return models.Declaration{}, fmt.Errorf("reading %s: %w", path, err)
	}

	decl, err := ParseDeclaration(data, format)
	if err != nil {
		return models.Declaration{}, fmt.Errorf("%s: %w", path, err)
	}

	s.logger.Debug().
		Str("path", path).
		Str("format", string(format)).
		Int("variants", len(decl.Variants)).
		Msg("declaration loaded")

	return decl, nil
}

// ParseDeclaration decodes data in the given format. Unknown fields are
// rejected in every format.
func ParseDeclaration(data []byte, format Format) (models.Declaration, error) {
	var decl models.Declaration

	switch format {
	case FormatJSON, FormatJSONC:
		dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&decl); err != nil {
			return models.Declaration{}, fmt.Errorf("%w: %v", ErrMalformedDeclaration, err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&decl); err != nil {
			return models.Declaration{}, fmt.Errorf("%w: %v", ErrMalformedDeclaration, err)
		}
	default:
		return models.Declaration{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	return decl, nil
}
