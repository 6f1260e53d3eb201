// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-flavor-resolver/internal/config"
	"github.com/MKhiriev/go-flavor-resolver/internal/logger"
	"github.com/MKhiriev/go-flavor-resolver/internal/utils"
	"github.com/MKhiriev/go-flavor-resolver/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, handler http.HandlerFunc) ResolverAdapter {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	a, err := NewHTTPResolverAdapter(
		config.Adapter{HTTPAddress: srv.URL, RequestTimeout: time.Second},
		config.App{Version: "1.0.0"},
		logger.Nop(),
	)
	require.NoError(t, err)
	return a
}

var flavors = []models.ResolvedConfig{
	{Name: "development", Dimension: "flavor-type", Values: map[string]string{models.KeyFlavor: "development"}},
	{Name: "production", Dimension: "flavor-type", Values: map[string]string{models.KeyFlavor: "production"}},
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:8080", want: "http://localhost:8080"},
		{raw: "https://resolver.example.com/", want: "https://resolver.example.com"},
		{raw: "  http://127.0.0.1:9000  ", want: "http://127.0.0.1:9000"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPResolverAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPResolverAdapter(config.Adapter{}, config.App{}, logger.Nop())
	require.Error(t, err)
}

func TestResolve_Success(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/variants/resolve", r.URL.Path)
		assert.Equal(t, "flavor-resolver/1.0.0", r.Header.Get("User-Agent"))

		var decl models.Declaration
		require.NoError(t, json.NewDecoder(r.Body).Decode(&decl))
		assert.Len(t, decl.Variants, 2)

		_, _ = utils.WriteJSON(w, models.NewResolveResponse(flavors), http.StatusOK)
	})

	got, err := a.Resolve(context.Background(), models.Declaration{
		Variants: []models.VariantDefinition{{Name: "development"}, {Name: "production"}},
	})

	require.NoError(t, err)
	assert.Equal(t, flavors, got)
}

func TestResolve_Errors(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantErr     error
		wantMessage string
	}{
		{
			name:        "rejected declaration",
			status:      http.StatusBadRequest,
			body:        `{"error":"duplicate variant name"}`,
			wantErr:     ErrInvalidDeclaration,
			wantMessage: "duplicate variant name",
		},
		{
			name:        "plain text body",
			status:      http.StatusNotFound,
			body:        "404 page not found",
			wantErr:     ErrNotFound,
			wantMessage: "404 page not found",
		},
		{
			name:        "server failure",
			status:      http.StatusInternalServerError,
			wantErr:     ErrInternalServerError,
			wantMessage: "Internal Server Error",
		},
		{
			name:        "unexpected status",
			status:      http.StatusTeapot,
			wantErr:     ErrUnexpectedResponse,
			wantMessage: "http 418",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			got, err := a.Resolve(context.Background(), models.Declaration{})

			require.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.wantMessage)
			assert.Nil(t, got)
		})
	}
}

func TestVariants(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/variants/", r.URL.Path)
		_, _ = utils.WriteJSON(w, models.NewResolveResponse(flavors), http.StatusOK)
	})

	got, err := a.Variants(context.Background())

	require.NoError(t, err)
	assert.Equal(t, flavors, got)
}

func TestVariant(t *testing.T) {
	t.Run("with dimension", func(t *testing.T) {
		a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/variants/production", r.URL.Path)
			assert.Equal(t, "flavor-type", r.URL.Query().Get("dimension"))
			_, _ = utils.WriteJSON(w, flavors[1], http.StatusOK)
		})

		got, err := a.Variant(context.Background(), "flavor-type", "production")

		require.NoError(t, err)
		assert.Equal(t, flavors[1], got)
	})

	t.Run("without dimension", func(t *testing.T) {
		a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
			assert.False(t, r.URL.Query().Has("dimension"))
			_, _ = utils.WriteJSON(w, flavors[0], http.StatusOK)
		})

		got, err := a.Variant(context.Background(), "", "development")

		require.NoError(t, err)
		assert.Equal(t, "development", got.Name)
	})

	t.Run("unknown variant", func(t *testing.T) {
		a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: `variant not found: "staging"`}, http.StatusNotFound)
		})

		_, err := a.Variant(context.Background(), "", "staging")

		require.ErrorIs(t, err, ErrNotFound)
		assert.Contains(t, err.Error(), "staging")
	})
}

func TestVersion(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version/", r.URL.Path)
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("2.1.0\n"))
	})

	got, err := a.Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "2.1.0", got)
}

func TestResolve_ContextCancelled(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = utils.WriteJSON(w, models.NewResolveResponse(nil), http.StatusOK)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.Resolve(ctx, models.Declaration{})

	require.ErrorIs(t, err, context.Canceled)
}
