package service

import (
	"fmt"

	"github.com/MKhiriev/go-flavor-resolver/internal/config"
	"github.com/MKhiriev/go-flavor-resolver/internal/logger"
	"github.com/MKhiriev/go-flavor-resolver/internal/store"
)

type Services struct {
	AppInfoService     AppInfoService
	DeclarationService DeclarationService
	VariantService     VariantService
}

func NewServices(storages *store.Storages, app config.App, storage config.Storage, logger *logger.Logger) (*Services, error) {
	logger.Info().Msg("creating new services...")

	appInfoService, err := NewAppInfoService(app, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	declarationService := NewDeclarationValidationService().
		Wrap(NewDeclarationService(storages.DeclarationStorage, logger))

	variantService := NewVariantValidationService().
		Wrap(NewVariantService(declarationService, app.RequiredKeys, storage.Declaration.Path, logger))

	return &Services{
		AppInfoService:     appInfoService,
		DeclarationService: declarationService,
		VariantService:     variantService,
	}, nil
}
