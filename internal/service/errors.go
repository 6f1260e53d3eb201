package service

import "errors"

var (
	ErrInvalidDeclaration    = errors.New("invalid declaration")
	ErrNoDeclarationPath     = errors.New("no declaration path configured")
	ErrNoSnapshot            = errors.New("no resolved declaration loaded yet")
	ErrVariantNotFound       = errors.New("variant not found")
	ErrAmbiguousVariant      = errors.New("variant name exists in several dimensions")
	ErrVersionIsNotSpecified = errors.New("version is not specified")
)
