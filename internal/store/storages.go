package store

import "github.com/MKhiriev/go-flavor-resolver/internal/logger"

// Storages groups the file-backed storages used by services.
type Storages struct {
	DeclarationStorage DeclarationStorage
	ResolvedStorage    ResolvedStorage
}

func NewStorages(logger *logger.Logger) *Storages {
	logger.Info().Msg("creating new storages...")

	return &Storages{
		DeclarationStorage: NewDeclarationFileStorage(logger),
		ResolvedStorage:    NewResolvedFileStorage(logger),
	}
}
