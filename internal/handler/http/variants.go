package http

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/MKhiriev/go-flavor-resolver/internal/logger"
	"github.com/MKhiriev/go-flavor-resolver/internal/store"
	"github.com/MKhiriev/go-flavor-resolver/internal/utils"
	"github.com/MKhiriev/go-flavor-resolver/models"
	"github.com/go-chi/chi/v5"
)

const maxDeclarationSize = 1 << 20

// resolve resolves the declaration in the request body. The body is parsed
// as JSON with comments allowed, or as YAML when the request says so.
func (h *Handler) resolve(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	decl, err := decodeDeclaration(w, r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.resolve").Msg("invalid declaration body")
		h.writeError(w, r, err)
		return
	}

	resolved, err := h.services.VariantService.Resolve(r.Context(), decl)
	if err != nil {
		log.Err(err).Str("func", "*Handler.resolve").Msg("error resolving variants")
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, models.NewResolveResponse(resolved), http.StatusOK)
}

func (h *Handler) listVariants(w http.ResponseWriter, r *http.Request) {
	resolved, err := h.services.VariantService.Snapshot(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.listVariants").Msg("no resolved variants available")
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, models.NewResolveResponse(resolved), http.StatusOK)
}

// getVariant returns one variant of the current snapshot. The optional
// dimension query parameter disambiguates names shared across dimensions.
func (h *Handler) getVariant(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	dimension := r.URL.Query().Get("dimension")

	variant, err := h.services.VariantService.Variant(r.Context(), dimension, name)
	if err != nil {
		logger.FromRequest(r).Err(err).
			Str("func", "*Handler.getVariant").
			Str("variant", name).
			Str("dimension", dimension).
			Msg("error getting variant")
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, variant, http.StatusOK)
}

func decodeDeclaration(w http.ResponseWriter, r *http.Request) (models.Declaration, error) {
	format := store.FormatJSONC
	if mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type")); mediaType == "application/yaml" || mediaType == "application/x-yaml" {
		format = store.FormatYAML
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxDeclarationSize))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return models.Declaration{}, fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, tooLarge.Limit)
		}
		return models.Declaration{}, fmt.Errorf("%w: %w", ErrMalformedBody, err)
	}

	decl, err := store.ParseDeclaration(body, format)
	if err != nil {
		return models.Declaration{}, fmt.Errorf("%w: %w", ErrMalformedBody, err)
	}

	return decl, nil
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	h.writeJSON(w, r, models.ErrorResponse{Error: err.Error()}, statusFromError(err))
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
