package store

import "errors"

// Sentinel errors returned by the storages. Callers should use [errors.Is].
var (
	// ErrUnsupportedFormat is returned for unknown declaration extensions
	// and unknown output formats.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrDeclarationNotFound is returned when the declaration file does not exist.
	ErrDeclarationNotFound = errors.New("declaration file not found")

	// ErrMalformedDeclaration is returned when the declaration cannot be decoded.
	ErrMalformedDeclaration = errors.New("malformed declaration")

	// ErrInvalidFileName is returned when a variant name or dimension cannot
	// be used as a path element.
	ErrInvalidFileName = errors.New("invalid output file name")

	// ErrWritingOutput is returned when a resolved configuration cannot be written.
	ErrWritingOutput = errors.New("error writing resolved output")
)
