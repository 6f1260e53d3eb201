package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-flavor-resolver/internal/validators"
	"github.com/MKhiriev/go-flavor-resolver/models"
)

// VariantValidationService validates ad-hoc declarations passed to Resolve.
// File based methods are delegated unchanged: their declarations are
// validated by [DeclarationValidationService] when loaded.
type VariantValidationService struct {
	inner     VariantService
	validator validators.Validator
}

func NewVariantValidationService() VariantServiceWrapper {
	return &VariantValidationService{
		validator: validators.NewDeclarationValidator(),
	}
}

func (v *VariantValidationService) Resolve(ctx context.Context, decl models.Declaration) ([]models.ResolvedConfig, error) {
	if err := v.validator.Validate(ctx, decl); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDeclaration, err)
	}

	return v.inner.Resolve(ctx, decl)
}

func (v *VariantValidationService) ResolveFile(ctx context.Context, path string) ([]models.ResolvedConfig, error) {
	return v.inner.ResolveFile(ctx, path)
}

func (v *VariantValidationService) Reload(ctx context.Context) ([]models.ResolvedConfig, error) {
	return v.inner.Reload(ctx)
}

func (v *VariantValidationService) Snapshot(ctx context.Context) ([]models.ResolvedConfig, error) {
	return v.inner.Snapshot(ctx)
}

func (v *VariantValidationService) Variant(ctx context.Context, dimension, name string) (models.ResolvedConfig, error) {
	return v.inner.Variant(ctx, dimension, name)
}

func (v *VariantValidationService) Wrap(wrapped VariantService) VariantService {
	v.inner = wrapped
	return v
}
