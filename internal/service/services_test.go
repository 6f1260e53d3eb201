package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-flavor-resolver/internal/config"
	"github.com/MKhiriev/go-flavor-resolver/internal/logger"
	"github.com/MKhiriev/go-flavor-resolver/internal/resolver"
	"github.com/MKhiriev/go-flavor-resolver/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const badDeclaration = `{
  // application id without a package separator
  "defaults": {"applicationId": "nodots", "app_name": "x", "flutter_flavor": "y"},
  "variants": [{"name": "dev", "dimension": "flavor-type", "application_id": "nodots"}],
}`

func TestNewServices(t *testing.T) {
	log := logger.Nop()
	storages := store.NewStorages(log)

	t.Run("missing version", func(t *testing.T) {
		_, err := NewServices(storages, config.App{}, config.Storage{}, log)
		require.ErrorIs(t, err, ErrVersionIsNotSpecified)
	})

	t.Run("reload validates the configured file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "flavors.jsonc")
		require.NoError(t, os.WriteFile(path, []byte(badDeclaration), 0o600))

		storage := config.Storage{}
		storage.Declaration.Path = path

		services, err := NewServices(storages, config.App{Version: "1.0.0", RequiredKeys: resolver.DefaultRequiredKeys}, storage, log)
		require.NoError(t, err)

		_, err = services.VariantService.Reload(context.Background())
		require.ErrorIs(t, err, ErrInvalidDeclaration)
	})

	t.Run("reload resolves the configured file", func(t *testing.T) {
		storage := config.Storage{}
		storage.Declaration.Path = filepath.Join("..", "store", "testdata", "flavors.yaml")

		services, err := NewServices(storages, config.App{Version: "1.0.0", RequiredKeys: resolver.DefaultRequiredKeys}, storage, log)
		require.NoError(t, err)

		resolved, err := services.VariantService.Reload(context.Background())
		require.NoError(t, err)
		require.Len(t, resolved, 2)
		assert.Equal(t, "development", resolved[0].Name)
		assert.Equal(t, "1.0.0", services.AppInfoService.GetAppVersion(context.Background()))
	})
}
