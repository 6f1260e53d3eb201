package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-flavor-resolver/internal/logger"
	"github.com/MKhiriev/go-flavor-resolver/internal/store"
	"github.com/MKhiriev/go-flavor-resolver/models"
)

type declarationService struct {
	storage store.DeclarationStorage

	logger *logger.Logger
}

func NewDeclarationService(storage store.DeclarationStorage, logger *logger.Logger) DeclarationService {
	return &declarationService{
		storage: storage,
		logger:  logger,
	}
}

func (s *declarationService) LoadDeclaration(ctx context.Context, path string) (models.Declaration, error) {
	if path == "" {
		return models.Declaration{}, ErrNoDeclarationPath
	}

	decl, err := s.storage.LoadDeclaration(ctx, path)
	if err != nil {
		return models.Declaration{}, fmt.Errorf("error loading declaration: %w", err)
	}

	return decl, nil
}
