package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-flavor-resolver/internal/config"
	"github.com/MKhiriev/go-flavor-resolver/internal/logger"
	"github.com/MKhiriev/go-flavor-resolver/internal/utils"
	"github.com/MKhiriev/go-flavor-resolver/models"
)

type httpResolverAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPResolverAdapter builds a REST [ResolverAdapter] for the server at
// adapterCfg.HTTPAddress. A missing scheme defaults to http.
func NewHTTPResolverAdapter(adapterCfg config.Adapter, appCfg config.App, logger *logger.Logger) (ResolverAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient("flavor-resolver/"+appCfg.Version, adapterCfg.RequestTimeout)
	client.SetBaseURL(baseURL)

	return &httpResolverAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Resolve implements [ResolverAdapter] via POST /api/variants/resolve.
func (h *httpResolverAdapter) Resolve(ctx context.Context, decl models.Declaration) ([]models.ResolvedConfig, error) {
	var result models.ResolveResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(decl).
		SetResult(&result).
		Post("/api/variants/resolve")
	if err != nil {
		return nil, fmt.Errorf("resolve request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	h.logger.Debug().Int("variants", result.Length).Msg("declaration resolved remotely")
	return result.Variants, nil
}

// Variants implements [ResolverAdapter] via GET /api/variants/.
func (h *httpResolverAdapter) Variants(ctx context.Context) ([]models.ResolvedConfig, error) {
	var result models.ResolveResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get("/api/variants/")
	if err != nil {
		return nil, fmt.Errorf("variants request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return result.Variants, nil
}

// Variant implements [ResolverAdapter] via GET /api/variants/{name}.
func (h *httpResolverAdapter) Variant(ctx context.Context, dimension, name string) (models.ResolvedConfig, error) {
	var result models.ResolvedConfig

	req := h.client.R().
		SetContext(ctx).
		SetPathParam("name", name).
		SetResult(&result)
	if dimension != "" {
		req.SetQueryParam("dimension", dimension)
	}

	resp, err := req.Get("/api/variants/{name}")
	if err != nil {
		return models.ResolvedConfig{}, fmt.Errorf("variant request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ResolvedConfig{}, err
	}

	return result, nil
}

// Version implements [ResolverAdapter] via GET /api/version/.
func (h *httpResolverAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}
