package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-flavor-resolver/internal/validators"
	"github.com/MKhiriev/go-flavor-resolver/models"
)

// DeclarationValidationService validates every loaded declaration before
// handing it to the caller.
type DeclarationValidationService struct {
	inner     DeclarationService
	validator validators.Validator
}

func NewDeclarationValidationService() DeclarationServiceWrapper {
	return &DeclarationValidationService{
		validator: validators.NewDeclarationValidator(),
	}
}

func (v *DeclarationValidationService) LoadDeclaration(ctx context.Context, path string) (models.Declaration, error) {
	decl, err := v.inner.LoadDeclaration(ctx, path)
	if err != nil {
		return models.Declaration{}, err
	}

	if err = v.validator.Validate(ctx, decl); err != nil {
		return models.Declaration{}, fmt.Errorf("%w: %s: %w", ErrInvalidDeclaration, path, err)
	}

	return decl, nil
}

func (v *DeclarationValidationService) Wrap(wrapped DeclarationService) DeclarationService {
	v.inner = wrapped
	return v
}
