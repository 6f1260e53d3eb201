package client

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-flavor-resolver/internal/adapter"
	"github.com/MKhiriev/go-flavor-resolver/internal/config"
	"github.com/MKhiriev/go-flavor-resolver/internal/logger"
	"github.com/MKhiriev/go-flavor-resolver/internal/service"
	"github.com/MKhiriev/go-flavor-resolver/internal/store"
	"github.com/MKhiriev/go-flavor-resolver/models"
)

type App struct {
	services *service.Services
	resolved store.ResolvedStorage
	remote   adapter.ResolverAdapter

	declarationPath string
	requiredKeys    []string
	query           config.Query
	outputDir       string
	format          store.Format
	stdout          io.Writer

	logger *logger.Logger
}

// NewApp builds the command line application. remote may be nil, in which
// case the declaration is resolved in process.
func NewApp(cfg *config.ClientConfig, services *service.Services, storages *store.Storages, remote adapter.ResolverAdapter, stdout io.Writer, logger *logger.Logger) (Client, error) {
	format, err := store.ParseFormat(cfg.Storage.Output.Format)
	if err != nil {
		return nil, fmt.Errorf("invalid output format: %w", err)
	}

	return &App{
		services:        services,
		resolved:        storages.ResolvedStorage,
		remote:          remote,
		declarationPath: cfg.Storage.Declaration.Path,
		requiredKeys:    cfg.App.RequiredKeys,
		query:           cfg.Query,
		outputDir:       cfg.Storage.Output.Dir,
		format:          format,
		stdout:          stdout,
		logger:          logger,
	}, nil
}

// Run resolves the declaration, or looks up the remote snapshot when a
// query is configured, and writes the result.
func (a *App) Run(ctx context.Context) error {
	if a.remote != nil {
		if err := a.handshake(ctx); err != nil {
			return err
		}
	}

	var (
		resolved []models.ResolvedConfig
		err      error
	)
	if a.query.Enabled() {
		resolved, err = a.lookup(ctx)
	} else {
		resolved, err = a.resolve(ctx)
	}
	if err != nil {
		return err
	}

	if a.outputDir == "" {
		if err = a.resolved.EncodeResolved(ctx, a.stdout, a.format, resolved...); err != nil {
			return fmt.Errorf("error writing resolved variants: %w", err)
		}
		return nil
	}

	paths, err := a.resolved.SaveResolved(ctx, a.outputDir, a.format, resolved...)
	if err != nil {
		return fmt.Errorf("error saving resolved variants: %w", err)
	}

	for i, path := range paths {
		event := a.logger.Info().Str("path", path).Str("variant", resolved[i].Name)
		if id, ok := resolved[i].Get(models.KeyApplicationID); ok {
			event = event.Str("application_id", id)
		}
		event.Msg("variant written")
	}

	return nil
}

// resolve loads the declaration locally in both modes, so a malformed or
// invalid file is reported before any request is sent.
func (a *App) resolve(ctx context.Context) ([]models.ResolvedConfig, error) {
	if a.remote == nil {
		return a.services.VariantService.ResolveFile(ctx, a.declarationPath)
	}

	decl, err := a.services.DeclarationService.LoadDeclaration(ctx, a.declarationPath)
	if err != nil {
		return nil, err
	}
	if len(decl.RequiredKeys) == 0 {
		decl.RequiredKeys = a.requiredKeys
	}

	resolved, err := a.remote.Resolve(ctx, decl)
	if err != nil {
		return nil, fmt.Errorf("error resolving remotely: %w", err)
	}

	a.logger.Info().Int("variants", len(resolved)).Msg("variants resolved by server")
	return resolved, nil
}

func (a *App) handshake(ctx context.Context) error {
	version, err := a.remote.Version(ctx)
	if err != nil {
		return fmt.Errorf("error contacting resolver server: %w", err)
	}

	a.logger.Info().Str("server_version", version).Msg("connected to resolver server")
	return nil
}

// lookup reads the server's resolved snapshot. A query is only valid in
// remote mode.
func (a *App) lookup(ctx context.Context) ([]models.ResolvedConfig, error) {
	if a.remote == nil {
		return nil, ErrQueryNeedsRemote
	}

	if a.query.List {
		variants, err := a.remote.Variants(ctx)
		if err != nil {
			return nil, fmt.Errorf("error listing remote variants: %w", err)
		}
		return variants, nil
	}

	variant, err := a.remote.Variant(ctx, a.query.Dimension, a.query.Variant)
	if err != nil {
		return nil, fmt.Errorf("error getting remote variant %q: %w", a.query.Variant, err)
	}
	return []models.ResolvedConfig{variant}, nil
}
