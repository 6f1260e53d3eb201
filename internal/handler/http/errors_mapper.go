package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-flavor-resolver/internal/resolver"
	"github.com/MKhiriev/go-flavor-resolver/internal/service"
	"github.com/MKhiriev/go-flavor-resolver/internal/store"
)

var errorStatusMap = map[error]int{
	ErrMalformedBody: http.StatusBadRequest,
	ErrBodyTooLarge:  http.StatusRequestEntityTooLarge,

	resolver.ErrDuplicateVariantName: http.StatusBadRequest,
	resolver.ErrMissingRequiredKey:   http.StatusBadRequest,
	resolver.ErrInvalidDimension:     http.StatusBadRequest,
	resolver.ErrEmptyVariantName:     http.StatusBadRequest,

	service.ErrInvalidDeclaration: http.StatusBadRequest,
	service.ErrAmbiguousVariant:   http.StatusBadRequest,
	service.ErrVariantNotFound:    http.StatusNotFound,
	service.ErrNoSnapshot:         http.StatusNotFound,
	service.ErrNoDeclarationPath:  http.StatusNotFound,

	store.ErrMalformedDeclaration: http.StatusBadRequest,
	store.ErrUnsupportedFormat:    http.StatusBadRequest,
	store.ErrDeclarationNotFound:  http.StatusNotFound,
}

// statusFromError maps an error to an HTTP status code; unknown errors are
// reported as 500.
func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
