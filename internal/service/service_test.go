package service

import (
	"context"

	"github.com/MKhiriev/go-flavor-resolver/models"
)

// mockDeclarationStorage implements store.DeclarationStorage.
type mockDeclarationStorage struct {
	loadFn func(ctx context.Context, path string) (models.Declaration, error)
	calls  int
}

func (m *mockDeclarationStorage) LoadDeclaration(ctx context.Context, path string) (models.Declaration, error) {
	m.calls++
	if m.loadFn != nil {
		return m.loadFn(ctx, path)
	}
	return models.Declaration{}, nil
}

// mockDeclarationService implements DeclarationService.
type mockDeclarationService struct {
	loadFn func(ctx context.Context, path string) (models.Declaration, error)
}

func (m *mockDeclarationService) LoadDeclaration(ctx context.Context, path string) (models.Declaration, error) {
	if m.loadFn != nil {
		return m.loadFn(ctx, path)
	}
	return models.Declaration{}, nil
}

// flavorTypeDeclaration is the development/production declaration used
// across service tests.
func flavorTypeDeclaration() models.Declaration {
	return models.Declaration{
		Dimensions: []string{"flavor-type"},
		Defaults: map[string]string{
			models.KeyApplicationID: "pro.modernwizard.environmentPlusExample",
			models.KeyAppName:       "env+",
		},
		Variants: []models.VariantDefinition{
			{
				Name:      "development",
				Dimension: "flavor-type",
				Overrides: map[string]string{models.KeyFlavor: "development"},
			},
			{
				Name:      "production",
				Dimension: "flavor-type",
				Overrides: map[string]string{models.KeyFlavor: "production"},
			},
		},
	}
}

func declarationReturning(decl models.Declaration, err error) *mockDeclarationService {
	return &mockDeclarationService{
		loadFn: func(context.Context, string) (models.Declaration, error) {
			return decl, err
		},
	}
}
